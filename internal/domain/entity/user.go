package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User representa una cuenta de acceso al portal.
// Un usuario con rol client siempre apunta a un Client mediante ClientID.
type User struct {
	ID           string
	Username     string // identificador libre (ej. "admin"); los clientes entran con cédula, email o teléfono
	Name         string
	PasswordHash string // bcrypt
	Role         string // admin, client
	ClientID     string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session es la vista del usuario autenticado que reciben los casos de uso.
// Se pasa por valor; no existe estado de sesión global.
type Session struct {
	UserID   string
	Name     string
	Role     string
	ClientID string
}

// IsAdmin indica si la sesión tiene rol admin.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// IsClient indica si la sesión tiene rol client.
func (s Session) IsClient() bool { return s.Role == RoleClient }
