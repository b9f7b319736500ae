package guard

// Must panics with err if it is non-nil. It turns any guard into an
// assertion for code paths where a violation is a programming error:
//
//	guard.Must(guard.NotNil(cfg))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// MustValue returns v, or panics if err is non-nil.
func MustValue[T any](v T, err error) T {
	Must(err)
	return v
}
