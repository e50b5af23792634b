package service

import (
	"errors"

	"github.com/chocolog/chocolog-backend/internal/app/model"
)

// ErrForbidden is returned when a caller is neither the owner of the
// target entity nor an admin.
var ErrForbidden = errors.New("permission denied")

// authorizeMutation is the single ownership gate for every mutable entity.
// ownerID is the user id recorded on the entity at creation time; it is
// never updated afterwards, so this check is the whole authorization story:
// the caller may mutate iff they created the row or carry the admin role.
func authorizeMutation(ownerID, callerID uint, callerRole model.UserRole) error {
	if ownerID == callerID || callerRole == model.RoleAdmin {
		return nil
	}
	return ErrForbidden
}
