// Package domain contains the request types and the error taxonomy shared by
// the HTTP layer, the travel service and the outbound API clients. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
