package gemini

import (
	"encoding/json"
	"errors"

	"github.com/phrazzld/travel-guide/internal/domain"
)

// ExtractText returns candidates[0].content.parts[0].text from a generateContent
// response body. Invalid JSON, a wrong type, a missing key or an empty
// sequence at any depth yields a *domain.ParseError carrying the raw body.
func ExtractText(body []byte) (string, error) {
	var resp generateContentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &domain.ParseError{Body: string(body), Err: err}
	}

	switch {
	case len(resp.Candidates) == 0:
		return "", parseError(body, "no candidates")
	case resp.Candidates[0].Content == nil:
		return "", parseError(body, "candidate has no content")
	case len(resp.Candidates[0].Content.Parts) == 0:
		return "", parseError(body, "content has no parts")
	case resp.Candidates[0].Content.Parts[0].Text == nil:
		return "", parseError(body, "part has no text")
	}

	return *resp.Candidates[0].Content.Parts[0].Text, nil
}

func parseError(body []byte, reason string) error {
	return &domain.ParseError{Body: string(body), Err: errors.New(reason)}
}
