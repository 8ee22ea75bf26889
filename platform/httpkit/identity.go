// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity represents the caller's identity. It abstracts identity extraction
// from the web framework so services can decide persistence behavior without
// depending on Gin. An unauthenticated identity is valid input everywhere:
// the report pipeline runs for anonymous callers, it just skips persistence.
type Identity interface {
	// UserID returns the authenticated user's ID.
	UserID() uuid.UUID
	// IsAuthenticated returns true if the user is authenticated.
	IsAuthenticated() bool
}

type identity struct {
	userID        uuid.UUID
	authenticated bool
}

func (i *identity) UserID() uuid.UUID {
	return i.userID
}

func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

// Anonymous returns an unauthenticated identity.
func Anonymous() Identity {
	return &identity{authenticated: false}
}

// Authenticated returns an identity for the given user ID. Intended for tests
// and internal callers that already hold a verified ID.
func Authenticated(userID uuid.UUID) Identity {
	return &identity{userID: userID, authenticated: true}
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	userID, ok := c.Get(ContextUserIDKey)
	if !ok {
		return &identity{authenticated: false}
	}

	uid, ok := userID.(uuid.UUID)
	if !ok {
		return &identity{authenticated: false}
	}

	return &identity{userID: uid, authenticated: true}
}
