package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MissingFieldsMessage is the caller-facing message for an incomplete itinerary request.
const MissingFieldsMessage = "Missing required fields"

var validate = validator.New()

// ItineraryRequest is the body of POST /generate-itinerary.
type ItineraryRequest struct {
	Destination string    `json:"destination" validate:"required"`
	Days        DayCount  `json:"days"        validate:"required"`
	Interests   Interests `json:"interests"   validate:"required"`
}

// Validate trims the free-text fields and checks that all of them are present.
// A failure is always a *ClientInputError naming the first missing field.
func (r *ItineraryRequest) Validate() error {
	r.Destination = strings.TrimSpace(r.Destination)

	if err := validate.Struct(r); err != nil {
		field := "request"
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field = strings.ToLower(verrs[0].Field())
		}
		return NewClientInputError(field, MissingFieldsMessage)
	}
	return nil
}

// DayCount is the trip length as it will appear in the prompt.
// It decodes from a JSON number or a string; zero, null and blank decode to "".
type DayCount string

// UnmarshalJSON implements json.Unmarshaler.
func (d *DayCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DayCount(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("days must be a number or a string: %w", err)
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		*d = ""
		return nil
	}
	*d = DayCount(n.String())
	return nil
}

// Interests is the traveler's interest list as it will appear in the prompt.
// It decodes from a string or an array of strings, which are joined with ", ".
type Interests string

// UnmarshalJSON implements json.Unmarshaler.
func (i *Interests) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = ""
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("interests must be a string or a list of strings: %w", err)
		}
		kept := make([]string, 0, len(items))
		for _, item := range items {
			if item = strings.TrimSpace(item); item != "" {
				kept = append(kept, item)
			}
		}
		*i = Interests(strings.Join(kept, ", "))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("interests must be a string or a list of strings: %w", err)
	}
	*i = Interests(strings.TrimSpace(s))
	return nil
}
