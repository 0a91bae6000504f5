package domain

// CoalesceIntPtr returns a copy of the first non-nil *int, or nil.
func CoalesceIntPtr(ptrs ...*int) *int {
	for _, p := range ptrs {
		if p != nil {
			v := *p
			return &v
		}
	}
	return nil
}

// IntFromPtrWithDefault returns the first non-nil *int value, or the fallback.
func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
