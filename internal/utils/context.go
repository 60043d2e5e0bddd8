// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-user-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthClaimsCtxKey is the key under which the auth middleware stores the
// validated token claims of the current request. Its presence in a context
// is the marker that the request passed authentication; handlers do not use
// the subject for per-resource scoping — any valid token permits any
// protected operation.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AuthClaimsCtxKey, claims)
var AuthClaimsCtxKey = contextKey("authClaims")

// GetAuthClaimsFromContext retrieves the validated token claims from the context.
//
// Returns the claims and an ok flag:
//   - ok == true  — the request was authenticated and claims are available
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	claims, ok := utils.GetAuthClaimsFromContext(ctx)
//	if !ok {
//	    // request did not pass the auth middleware
//	}
func GetAuthClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(AuthClaimsCtxKey).(models.Claims)
	return claims, ok
}
