package policy

import (
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanEdit(t *testing.T) {
	t.Run("owner edits anyone", func(t *testing.T) {
		owner := &models.Session{Role: constvars.RoleOwner, UserID: "u1"}
		assert.True(t, CanEdit(owner, "emp-1"))
		assert.True(t, CanEdit(owner, "emp-2"))
	})

	t.Run("admin edits anyone", func(t *testing.T) {
		admin := &models.Session{Role: constvars.RoleAdmin, UserID: "u2"}
		assert.True(t, CanEdit(admin, "emp-1"))
	})

	t.Run("superadmin API key edits anyone", func(t *testing.T) {
		superadmin := &models.Session{Role: constvars.RoleSuperadmin, UserID: "api-key-superadmin"}
		assert.True(t, CanEdit(superadmin, "emp-1"))
	})

	t.Run("master edits only their own schedule", func(t *testing.T) {
		master := &models.Session{Role: constvars.RoleMaster, UserID: "u3", EmployeeID: "emp-1"}
		assert.True(t, CanEdit(master, "emp-1"))
		assert.False(t, CanEdit(master, "emp-2"))
	})

	t.Run("master without an employee binding edits nothing", func(t *testing.T) {
		master := &models.Session{Role: constvars.RoleMaster, UserID: "u4"}
		assert.False(t, CanEdit(master, ""))
		assert.False(t, CanEdit(master, "emp-1"))
	})

	t.Run("receptionist and unknown roles are denied", func(t *testing.T) {
		receptionist := &models.Session{Role: constvars.RoleReceptionist, UserID: "u5", EmployeeID: "emp-1"}
		assert.False(t, CanEdit(receptionist, "emp-1"))

		stranger := &models.Session{Role: "intern", UserID: "u6"}
		assert.False(t, CanEdit(stranger, "emp-1"))
	})

	t.Run("nil session is denied", func(t *testing.T) {
		assert.False(t, CanEdit(nil, "emp-1"))
	})
}
