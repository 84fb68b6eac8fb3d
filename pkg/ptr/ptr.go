package ptr

// Ptr returns a pointer to v. Shorthand for optional struct fields.
func Ptr[T any](v T) *T {
	return &v
}
