// Package service contains the application use cases behind the HTTP
// handlers: building prompts for the generator, validating requests before
// any outbound call is made, and delegating weather lookups.
//
// Services receive their dependencies through constructor injection and
// return the tagged errors from the domain package unchanged, so the API
// layer can map them to status codes and caller-facing messages.
package service
