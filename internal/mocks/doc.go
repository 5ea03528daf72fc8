// Package mocks provides centralized mock implementations for testing.
//
// The mocks record every call so tests can assert that validation failures
// never reach an outbound client, and they let each test script the result
// through a function field or fixed default values.
//
// Usage:
//
//	gen := mocks.NewMockGeneratorWithText("# Day 1")
//	svc, _ := service.NewTravelService(gen, &mocks.MockWeatherFetcher{}, logger)
//	...
//	assert.Equal(t, 1, gen.Calls())
package mocks
