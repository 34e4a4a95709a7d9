// Package models provides the core data structures for handling message requests and responses.
package models

// Request represents an incoming client request containing the authorizer-resolved caller and a body.
type Request struct {
	CallerID string
	Body     string
}

// Response defines the structure for an HTTP response containing a body, headers, and a status code.
type Response struct {
	Body       string
	Headers    map[string]string
	StatusCode int
}
