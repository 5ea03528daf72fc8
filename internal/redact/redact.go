// Package redact removes credentials from strings before they are logged or
// returned in error responses. Outbound API calls in this service carry their
// API keys in the query string, so URLs and transport errors that embed them
// must pass through here first.
package redact

import (
	"net/url"
	"regexp"
	"strings"
)

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
)

// sensitiveParams are query parameter names whose values are always redacted.
var sensitiveParams = map[string]bool{
	"key":          true,
	"appid":        true,
	"api_key":      true,
	"apikey":       true,
	"token":        true,
	"access_token": true,
}

// Precompiled regex patterns
var (
	// key=..., appid=... inside free text such as *url.Error messages.
	queryParamRegex = regexp.MustCompile(`(?i)\b(key|appid|api_key|apikey|token|access_token)=([^&\s"']+)`)

	// Google API keys have a fixed prefix and length.
	googleKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`)

	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]+=*`)
)

// String redacts credentials from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := queryParamRegex.ReplaceAllString(input, "${1}="+RedactedKeyPlaceholder)
	result = googleKeyRegex.ReplaceAllString(result, RedactedKeyPlaceholder)
	result = bearerRegex.ReplaceAllString(result, "Bearer "+RedactedCredentialPlaceholder)

	return result
}

// Error redacts credentials from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// URL returns u as a string with sensitive query parameter values replaced.
// The input is not modified.
func URL(u *url.URL) string {
	if u == nil {
		return ""
	}

	clone := *u
	q := clone.Query()
	changed := false
	for name := range q {
		if sensitiveParams[strings.ToLower(name)] {
			q.Set(name, RedactedKeyPlaceholder)
			changed = true
		}
	}
	if changed {
		// Encode would escape the brackets; keep the placeholder readable.
		clone.RawQuery = strings.NewReplacer(
			"%5B", "[", "%5D", "]",
		).Replace(q.Encode())
	}
	clone.User = nil

	return clone.String()
}
