package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by every credential token.
//
// UserID and UserName are serialized as "_id" and "userName" so tokens stay
// readable by existing web clients. The registered claims carry "sub"
// (equal to UserID), "iat" and, when a token duration is configured, "exp".
type Claims struct {
	UserID   string `json:"_id"`
	UserName string `json:"userName"`

	jwt.RegisteredClaims
}

// Identity returns the request identity described by the claims.
func (c *Claims) Identity() Identity {
	return Identity{UserID: c.UserID, UserName: c.UserName}
}

// Token wraps a signed JWT together with the claims it was built from.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded payload.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact serialized token.
func (t *Token) String() string {
	return t.SignedString
}
