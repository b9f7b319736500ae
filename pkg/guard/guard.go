package guard

// NotNil fails when value is nil.
func NotNil(value any) error {
	return NotNilMsg(value, "")
}

// NotNilMsg fails with message when value is nil.
func NotNilMsg(value any, message string) error {
	if IsNil(value) {
		return invalid(message)
	}
	return nil
}

// AllNotNil fails when no values are given or when any of them is nil.
// Passing zero arguments is a violation, not a vacuous success.
func AllNotNil(values ...any) error {
	if err := NotEmpty(values); err != nil {
		return err
	}
	for _, v := range values {
		if err := NotNil(v); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty fails when the slice is nil or has no elements.
func NotEmpty[T any](s []T) error {
	return NotEmptyMsg(s, "")
}

func NotEmptyMsg[T any](s []T, message string) error {
	if IsEmpty(s) {
		return invalid(message)
	}
	return nil
}

// NotEmptyMap fails when the map is nil or has no entries.
func NotEmptyMap[K comparable, V any](m map[K]V) error {
	return NotEmptyMapMsg(m, "")
}

func NotEmptyMapMsg[K comparable, V any](m map[K]V, message string) error {
	if IsEmptyMap(m) {
		return invalid(message)
	}
	return nil
}

// NotBlank fails when s is empty or whitespace only.
func NotBlank(s string) error {
	return NotBlankMsg(s, "")
}

func NotBlankMsg(s, message string) error {
	if IsBlank(s) {
		return invalid(message)
	}
	return nil
}

// NotBlankPtr fails when s is nil, empty or whitespace only.
func NotBlankPtr(s *string) error {
	return NotBlankPtrMsg(s, "")
}

func NotBlankPtrMsg(s *string, message string) error {
	if IsBlankPtr(s) {
		return invalid(message)
	}
	return nil
}

// IsTrue fails when cond is false.
func IsTrue(cond bool) error {
	return IsTrueMsg(cond, "")
}

func IsTrueMsg(cond bool, message string) error {
	if !cond {
		return invalid(message)
	}
	return nil
}
