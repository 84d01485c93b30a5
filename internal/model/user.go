package model

type UserRole string

const (
	RoleChiefLogistician UserRole = "chief_logistician"
	RoleLogistician      UserRole = "logistician"
)

func (r UserRole) Valid() bool {
	return r == RoleChiefLogistician || r == RoleLogistician
}

func (r UserRole) Label() string {
	switch r {
	case RoleChiefLogistician:
		return "Главный логист"
	case RoleLogistician:
		return "Логист"
	}
	return "Неизвестно"
}

// User is an account in the operations team. One chief logistician is
// expected per deployment; this is a convention, not an enforced invariant.
type User struct {
	ID    string
	Name  string
	Role  UserRole
	Email string
}

func (u User) IsChief() bool {
	return u.Role == RoleChiefLogistician
}
