// Package openweather looks up current weather conditions for a city.
//
// The client is a thin passthrough: it issues one GET per lookup with a
// fixed timeout, never retries, and hands the upstream JSON back unmodified
// so the front end can read whichever fields it needs.
package openweather
