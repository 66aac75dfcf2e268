// Package types holds the wire envelopes shared by every API handler.
package types

// SuccessEnvelope wraps every successful JSON response under a data key so
// dashboard clients can unmarshal uniformly across endpoints.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error body. Code is a stable machine string
// and Details carries per-field validation messages when present.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
