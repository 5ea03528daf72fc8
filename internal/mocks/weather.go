package mocks

import (
	"context"
	"encoding/json"
	"sync"
)

// MockWeatherFetcher implements service.WeatherFetcher for testing.
type MockWeatherFetcher struct {
	// CurrentWeatherFn allows test cases to mock the CurrentWeather behavior
	CurrentWeatherFn func(ctx context.Context, city string) (json.RawMessage, error)

	// Default response values
	Body json.RawMessage
	Err  error

	mu     sync.Mutex
	cities []string
}

// CurrentWeather records city and returns the scripted result.
func (m *MockWeatherFetcher) CurrentWeather(ctx context.Context, city string) (json.RawMessage, error) {
	m.mu.Lock()
	m.cities = append(m.cities, city)
	m.mu.Unlock()

	if m.CurrentWeatherFn != nil {
		return m.CurrentWeatherFn(ctx, city)
	}
	return m.Body, m.Err
}

// Calls returns how many times CurrentWeather was called.
func (m *MockWeatherFetcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cities)
}

// Cities returns a copy of every city passed to CurrentWeather, in call order.
func (m *MockWeatherFetcher) Cities() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.cities...)
}
