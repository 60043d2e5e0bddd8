package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a signed token: the identity of the
// subject plus the standard registered claim set (exp, iat).
//
// SubjectID is carried as a custom "subject_id" claim rather than the
// standard "sub" claim; this is the wire format every issued token uses
// and the one verification expects.
type Claims struct {
	// SubjectID is the ID of the user the token was issued for.
	SubjectID int64 `json:"subject_id"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [Claims] for claim access (subject identity, expiry).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded token payload.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
