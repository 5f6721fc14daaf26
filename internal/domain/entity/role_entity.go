package entity

// Role is a closed enumeration of permission labels. Gates declare an
// explicit allow-list of roles, so adding a role means revisiting every gate
// rather than silently inheriting access.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// ParseRole maps a stored or claimed string onto the enumeration.
// Unknown values resolve to the lowest privilege.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleEditor:
		return RoleEditor
	default:
		return RoleViewer
	}
}

// Valid reports whether s names a member of the enumeration.
func Valid(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// In reports membership of r in the given allow-list.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }
