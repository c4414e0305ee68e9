package policy

import (
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/constvars"
)

// CanEdit decides whether the actor may change the target employee's
// schedule. Owners, admins and the superadmin API key edit anyone; a master
// edits only their own schedule; every other role is denied. Read paths are
// not gated here.
func CanEdit(actor *models.Session, targetEmployeeID string) bool {
	if actor == nil {
		return false
	}
	switch actor.Role {
	case constvars.RoleOwner, constvars.RoleAdmin, constvars.RoleSuperadmin:
		return true
	case constvars.RoleMaster:
		return actor.EmployeeID != "" && actor.EmployeeID == targetEmployeeID
	default:
		return false
	}
}
