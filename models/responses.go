package models

// MessageResponse is the body returned by register and by failed
// register/login calls.
type MessageResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

// LoginResult is the payload nested in a successful login response.
type LoginResult struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

// LoginResponse wraps LoginResult under "message".
type LoginResponse struct {
	Message LoginResult `json:"message"`
}

// ErrorResponse is the body returned when a collection operation is rejected.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
