// Package api handles incoming HTTP requests, request decoding and response
// formatting. It adapts browser requests to the travel service and maps the
// service's tagged errors to status codes and caller-facing messages.
package api
