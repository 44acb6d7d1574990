package services

import (
	"github.com/google/uuid"
)

// ensureOwner is the single ownership predicate: the caller must be the
// recorded owner of the resource. Ids are compared in their canonical string
// form so reference-typed and plain ids compare equal.
func ensureOwner(ownerID, callerID uuid.UUID, action string) error {
	if ownerID == uuid.Nil || ownerID.String() != callerID.String() {
		return Forbidden("you are not authorized to %s", action)
	}
	return nil
}
