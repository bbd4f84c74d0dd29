package ptr

// Of returns a pointer to a copy of value, for filling optional patch
// fields from constants and expressions.
func Of[T any](value T) *T {
	return &value
}

// String return a pointer to the input value
func String(value string) *string {
	return &value
}
