package models

// Identity is the verified caller extracted from a credential token.
// It lives only for the duration of a single request.
type Identity struct {
	UserID   string
	UserName string
}
