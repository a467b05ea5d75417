// internal/client/listview/sort.go
package listview

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

func sortSlice[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

// NumericIDLess orders membership-number style strings by the value of
// their first digit run, so "PAK-2" sorts before "PAK-10". Strings with
// no digits sort after every numbered one; equal numbers and digitless
// pairs fall back to a plain string compare to keep the order stable.
func NumericIDLess(a, b string) bool {
	an, aok := firstNumber(a)
	bn, bok := firstNumber(b)
	switch {
	case aok && !bok:
		return true
	case !aok && bok:
		return false
	case aok && bok && an != bn:
		return an < bn
	default:
		return a < b
	}
}

// firstNumber returns the value of the first digit run in s.
func firstNumber(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, false
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	// Cap absurdly long runs so Atoi cannot overflow.
	digits := strings.TrimLeft(s[start:end], "0")
	if len(digits) > 18 {
		digits = digits[:18]
	}
	if digits == "" {
		return 0, true
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
