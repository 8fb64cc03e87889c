// Package api holds the response shapes and error mapping shared by every
// HTTP handler.
package api

// MessageAccessDenied is the fixed payload returned for any missing or
// invalid bearer token.
const MessageAccessDenied = "Access denied, invalid token"

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse carries a freshly signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
