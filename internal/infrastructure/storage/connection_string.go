package storage

import (
	"fmt"
	"strings"

	"github.com/devillabs/cms-api/internal/core/domain/media"
)

// PlaceholderConnectionString ships in sample env files and means "not configured".
const PlaceholderConnectionString = "your_azure_connection_string_here"

// IsConfigured reports whether conn looks like a real connection string.
func IsConfigured(conn string) bool {
	conn = strings.TrimSpace(conn)
	return conn != "" && conn != PlaceholderConnectionString
}

// ParseConnectionString splits "Key=Value;Key=Value" pairs. Values may contain '='.
func ParseConnectionString(conn string) map[string]string {
	out := make(map[string]string)
	for _, part := range strings.Split(conn, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// AccountCredentials extracts the account name and signing key. SharedAccessKey is accepted
// in place of AccountKey.
func AccountCredentials(conn string) (account, key string, err error) {
	parts := ParseConnectionString(conn)
	account = parts["AccountName"]
	key = parts["AccountKey"]
	if key == "" {
		key = parts["SharedAccessKey"]
	}
	if account == "" || key == "" {
		return "", "", fmt.Errorf("%w: connection string needs AccountName and AccountKey", media.ErrStorageConfig)
	}
	return account, key, nil
}
