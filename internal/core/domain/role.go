package domain

// Roles carried in the bearer token's "role" claim.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// ReadRoles may query reports; WriteRoles may also export and schedule.
var (
	ReadRoles  = []string{RoleAdmin, RoleManager, RoleViewer}
	WriteRoles = []string{RoleAdmin, RoleManager}
)
