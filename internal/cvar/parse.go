package cvar

import (
    "math"
    "strconv"
    "strings"
)

// Atof converts the longest numeric prefix of s to a float64, the way C's atof does:
// leading whitespace is skipped, trailing garbage is ignored, and text without a
// numeric prefix yields 0.
func Atof(s string) float64 {
    p := floatPrefix(s)
    if p == "" {
        return 0
    }
    f, err := strconv.ParseFloat(p, 64)
    if err != nil {
        // out of range: ParseFloat already returned ±Inf
        if math.IsInf(f, 0) {
            return f
        }
        return 0
    }
    return f
}

// Atoi converts the longest integer prefix of s to an int, saturating at the
// 32-bit range like the engine's int cvars.
func Atoi(s string) int {
    p := intPrefix(s)
    if p == "" {
        return 0
    }
    n, err := strconv.ParseInt(p, 10, 32)
    if err != nil {
        if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
            return int(n)
        }
        return 0
    }
    return int(n)
}

// FormatFloat renders f the way "%f" does.
func FormatFloat(f float64) string {
    return strconv.FormatFloat(f, 'f', 6, 64)
}

func intPrefix(s string) string {
    s = strings.TrimLeft(s, " \t\n\v\f\r")
    i := 0
    if i < len(s) && (s[i] == '+' || s[i] == '-') {
        i++
    }
    start := i
    for i < len(s) && isDigit(s[i]) {
        i++
    }
    if i == start {
        return ""
    }
    return s[:i]
}

func floatPrefix(s string) string {
    s = strings.TrimLeft(s, " \t\n\v\f\r")
    i := 0
    if i < len(s) && (s[i] == '+' || s[i] == '-') {
        i++
    }
    digits := 0
    for i < len(s) && isDigit(s[i]) {
        i++
        digits++
    }
    if i < len(s) && s[i] == '.' {
        i++
        for i < len(s) && isDigit(s[i]) {
            i++
            digits++
        }
    }
    if digits == 0 {
        return ""
    }
    // exponent only counts when followed by at least one digit
    if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
        j := i + 1
        if j < len(s) && (s[j] == '+' || s[j] == '-') {
            j++
        }
        if j < len(s) && isDigit(s[j]) {
            for j < len(s) && isDigit(s[j]) {
                j++
            }
            i = j
        }
    }
    return s[:i]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
