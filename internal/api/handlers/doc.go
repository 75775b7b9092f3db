// Package handlers implements HTTP handlers for the carmatch API.
//
// Probe endpoints are plain Echo handlers; everything under /api/v1 is a
// Huma operation so it appears in the generated OpenAPI document.
package handlers

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
