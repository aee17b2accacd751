package constants

// Global roles carried in the JWT `role` claim.
const (
	RoleOwner   = "owner"   // cross-school operator
	RoleAdmin   = "admin"   // school administrator
	RoleTeacher = "teacher" // staff member
	RoleUser    = "user"
)

var AllowedRoles = map[string]struct{}{
	RoleOwner:   {},
	RoleAdmin:   {},
	RoleTeacher: {},
	RoleUser:    {},
}
