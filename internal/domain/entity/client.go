package entity

import "time"

// Client representa un cliente del taller de perfumes.
type Client struct {
	ID        string
	Name      string
	IDNumber  string // cédula tailandesa (13 dígitos), opcional
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientRef es el contrato mínimo de un registro que pertenece a un cliente.
type ClientRef interface {
	OwnerID() string
}
