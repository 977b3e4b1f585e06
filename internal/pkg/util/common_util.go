package util

// DerefString nil 视为空串
func DerefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
