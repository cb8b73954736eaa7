package entities

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// Identity is the authenticated requester.
type Identity struct {
	ID   string
	Role Role
}

type User struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// Contact is the display part of a user attached to orders on reads.
type Contact struct {
	ID    string
	Name  string
	Email string
}
