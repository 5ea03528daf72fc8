// Package testutils provides HTTP helpers shared by handler and client tests:
// upstream fakes that count their calls and assertions on the JSON error
// envelope.
package testutils
