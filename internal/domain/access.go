package domain

import "github.com/google/uuid"

// Owned is implemented by resources that belong to a single user
type Owned interface {
	GetOwnerID() uuid.UUID
}

// CanAccess reports whether userID may view or modify resource.
// uuid.Nil stands for an anonymous visitor and never has access.
func CanAccess(userID uuid.UUID, resource Owned) bool {
	if userID == uuid.Nil || resource == nil {
		return false
	}
	return resource.GetOwnerID() == userID
}
