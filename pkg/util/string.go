package util

import "strings"

// MaskKey keeps the first 5 characters of key, keys shorter than 8 characters are
// masked entirely.
func MaskKey(key string) string {
	if len(key) < 8 {
		return strings.Repeat("*", len(key))
	}

	return key[0:5] + strings.Repeat("*", len(key)-5)
}
