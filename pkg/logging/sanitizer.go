// Package logging provides redaction of credentials before log output.
package logging

import "regexp"

// RedactedText is the replacement text for sensitive data.
const RedactedText = "[REDACTED]"

var (
	// Pattern to match API keys as N2YO carries them (apiKey=XXX appended
	// to the path) and in conventional query parameters.
	apiKeyPattern = regexp.MustCompile(`(?i)(api[_-]?key|apikey|key)=[A-Za-z0-9-_]+`)

	// Pattern to match connection string credentials (user:pass@host format).
	connStringPattern = regexp.MustCompile(`://[^:/?#]+:[^@]+@[^/\s]+`)
)

// RedactURL removes credential material from a URL before logging.
// Use this on every upstream URL that reaches a log field.
func RedactURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	sanitized := apiKeyPattern.ReplaceAllString(rawURL, "${1}="+RedactedText)
	sanitized = connStringPattern.ReplaceAllString(sanitized, "://"+RedactedText+"@"+RedactedText)

	return sanitized
}

// RedactError sanitizes an error message that might echo a request URL.
func RedactError(err error) string {
	if err == nil {
		return ""
	}
	return RedactURL(err.Error())
}
