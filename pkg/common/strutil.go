package common

import "strings"

// ToUpper returns s with all Unicode letters mapped to upper case.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// Max returns the larger of a and b.
func Max(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
