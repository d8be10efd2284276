package dto

// CreateClientRequest body para POST /api/admin/clients.
// Si Password viene informado se crea también el acceso al portal (rol client).
type CreateClientRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	IDNumber string `json:"id_number" validate:"omitempty,numeric,len=13"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// UpdateClientRequest body para PUT /api/admin/clients/:id.
type UpdateClientRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	IDNumber string `json:"id_number" validate:"omitempty,numeric,len=13"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IDNumber  string `json:"id_number,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at"`
	JoinedAt  string `json:"joined_label"` // fecha formateada según idioma
}
