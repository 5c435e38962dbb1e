package github

// ValidUsername reports whether s is a well-formed GitHub username:
// at most 39 characters, alphanumerics and hyphens only, no leading,
// trailing, or consecutive hyphens.
func ValidUsername(s string) bool {
	if s == "" || len(s) > 39 {
		return false
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	prevHyphen := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '-':
			if prevHyphen {
				return false
			}
			prevHyphen = true
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			prevHyphen = false
		default:
			return false
		}
	}
	return true
}
