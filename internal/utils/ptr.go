package utils

import "strings"

func Ptr[T any](v T) *T {
	return &v
}

// Returns nil on a nil, empty or all whitespace string, the trimmed value otherwise
func TrimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
