package domain

// Role classifies an account and selects which dashboard it may access.
// The constants mirror the values stored in users.tipo.
type Role string

const (
	RoleAdministrator Role = "Administrador"
	RoleDriver        Role = "Piloto"
	RoleTeam          Role = "Escuderia"
)

// ParseRole maps the stored role text onto the closed Role set. Unknown
// values are rejected rather than passed through.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdministrator:
		return RoleAdministrator, nil
	case RoleDriver:
		return RoleDriver, nil
	case RoleTeam:
		return RoleTeam, nil
	default:
		return "", WrapError(ErrCodeInvalid, "unknown role", ErrUnknownRole)
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleDriver, RoleTeam:
		return true
	}
	return false
}
