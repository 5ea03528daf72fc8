// Package generation defines the boundary between the travel service and the
// generative-language API. It abstracts the details of the LLM integration
// (Gemini) so prompts can be turned into text without coupling callers to a
// specific external service.
package generation
