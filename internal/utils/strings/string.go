package strings

// Pluralize picks singular or plural form for count.
func Pluralize(singular, plural string, count int) string {
	if count == 1 {
		return singular
	}
	return plural
}
