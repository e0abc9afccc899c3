package helpers

// NullableString maps "" to nil for columns that store NULL instead of an
// empty string.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences s, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
