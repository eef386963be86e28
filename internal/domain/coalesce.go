package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// OrDash returns s, or "-" when s is empty.
func OrDash(s string) string {
	return CoalesceStr(s, "-")
}
