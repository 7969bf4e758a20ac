package schema

// ClampScore forces a score into the [0, 100] range. Every score crossing a
// component boundary passes through here, regardless of what the judgment
// service returned.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ShortHash returns the 8-character abbreviation of a commit hash, or the
// hash unchanged when it is already shorter.
func ShortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

// Truncate hard-caps a string at limit characters. Limits of zero or less
// mean "no content allowed" and return the empty string.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
