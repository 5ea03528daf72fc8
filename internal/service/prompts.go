package service

import "fmt"

const (
	itineraryPromptFormat = "Create a detailed, day-by-day travel itinerary for a trip to %s for %s days. " +
		"The traveler is interested in %s. Format the output in clean Markdown."

	suggestionsPrompt = "Suggest 5 interesting and diverse travel destinations. For each destination, provide: " +
		"the name, a one-sentence highlight, and the best time to travel. Format as a Markdown list."
)

// ItineraryPrompt returns the generation prompt for a trip. The output is a
// pure function of its inputs.
func ItineraryPrompt(destination, days, interests string) string {
	return fmt.Sprintf(itineraryPromptFormat, destination, days, interests)
}

// SuggestionsPrompt returns the fixed prompt for destination suggestions.
func SuggestionsPrompt() string {
	return suggestionsPrompt
}
