package auth

import "strings"

// Role es el rol del usuario dentro del portal escolar.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleNurse   Role = "nurse"
	RoleParent  Role = "parent"
	RoleStudent Role = "student"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleManager:
		return RoleManager, true
	case RoleNurse:
		return RoleNurse, true
	case RoleParent:
		return RoleParent, true
	case RoleStudent:
		return RoleStudent, true
	default:
		return "", false
	}
}

// CanRecord: crear y editar registros médicos, alumnos y campañas.
func (r Role) CanRecord() bool {
	return r == RoleNurse || r == RoleManager || r == RoleAdmin
}

// CanManage: operaciones destructivas (borrar registros).
func (r Role) CanManage() bool {
	return r == RoleManager || r == RoleAdmin
}

// Claims representa la información extraída del token (o de los headers
// de debug en modo dev).
type Claims struct {
	UserID string
	Email  string
	Role   Role
}
