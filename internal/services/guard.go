package services

import "github.com/google/uuid"

// isOwner is the single ownership check applied at every read, update, and
// delete entry point. Callers surface a failed check as the resource's
// not-found error, never as forbidden, so a tenant cannot learn whether a
// foreign record exists.
func isOwner(ownerID, callerID uuid.UUID) bool {
	return ownerID == callerID
}
