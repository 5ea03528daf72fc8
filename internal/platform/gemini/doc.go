// Package gemini provides an implementation of the generation.Generator interface
// that talks to Google's generative-language REST API.
//
// This package is an infrastructure adapter: it translates a prompt into a
// generateContent request, sends it with bounded retries, and pulls the
// generated text out of a response whose shape is only partially trusted.
//
// Key components:
//
// 1. Client:
//   - Implements generation.Generator
//   - POSTs {base}/{model}:generateContent?key={apiKey} with a 120s per-attempt timeout
//   - Never logs the API key (URLs pass through the redact package)
//
// 2. Retry policy:
//   - Exponential backoff (1s, 2s, 4s, ...) plus up to 0.5s of random jitter
//   - Network failures, timeouts and malformed bodies are retried
//   - A well-formed non-2xx response is returned immediately
//
// 3. Response processing:
//   - Extracts candidates[0].content.parts[0].text
//   - Any missing key or index is a *domain.ParseError carrying the raw body
//
// ListModels is an operator diagnostic built on the google.golang.org/genai SDK.
package gemini
