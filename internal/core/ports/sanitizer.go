package ports

// Sanitizer cleans untrusted free text before it is forwarded or emailed.
type Sanitizer interface {
	Sanitize(s string) string
}
