package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owned is any resource with a single owning user.
type Owned interface {
	OwnerID() uuid.UUID
}

// authorizeOwner compares a resource's owner to the acting user. It is
// applied before every recipe or comment mutation. Callers must resolve
// the resource first so that a missing id surfaces as ErrNotFound before
// any ownership decision is made.
func authorizeOwner(actingUser uuid.UUID, resource Owned) error {
	if resource.OwnerID() != actingUser {
		return ErrForbidden
	}
	return nil
}

// translateRecordError maps gorm's not-found to the domain error so
// handlers never have to import gorm.
func translateRecordError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
