package utils

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"strings"
)

func ToNullString(str string) sql.NullString {
	if str == "" {
		return sql.NullString{
			String: str,
			Valid:  false,
		}
	}
	return sql.NullString{
		String: str,
		Valid:  true,
	}
}

func GetValidStrings(nullStrings []sql.NullString) []string {
	var validStrings []string

	for _, ns := range nullStrings {
		if ns.Valid {
			validStrings = append(validStrings, ns.String)
		}
	}

	return validStrings
}

// GenerateRandomString returns a random hex string of the requested length.
func GenerateRandomString(length int) string {
	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		return strings.Repeat("0", length)
	}
	return hex.EncodeToString(bytes)[:length]
}

// TrimmedOrDefault returns value trimmed of surrounding whitespace when the
// trimmed result is non-empty, otherwise existing. Whitespace-only input
// never clears a stored value.
func TrimmedOrDefault(value, existing string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return existing
}
