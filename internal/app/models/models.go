package models

// UserType defines the role of a platform account.
type UserType string

const (
	// TypeAlumni is a regular alumnus account with an employment history.
	TypeAlumni UserType = "alumni"
	// TypeAdmin is a platform administrator.
	TypeAdmin UserType = "admin"
)

// Valid reports whether the user type is one of the known roles.
func (t UserType) Valid() bool {
	return t == TypeAlumni || t == TypeAdmin
}
