// Package seed datos de demostración del taller: tres clientes, sus cobros, pedidos y accesos.
// Los usan el comando cmd/seed (PostgreSQL) y el modo APP_DATA_SOURCE=memory.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/perfume-portal/internal/domain/entity"
)

// Data snapshot completo a cargar.
type Data struct {
	Clients  []entity.Client
	Payments []entity.Payment
	Orders   []entity.Order
	Users    []entity.User
}

// Credential usuario de demostración con su contraseña en claro.
type Credential struct {
	User     entity.User
	Password string
}

// Credentials accesos de demostración: admin/admin, 1234567890123/client1, john@email.com/client2.
func Credentials() []Credential {
	return []Credential{
		{User: entity.User{ID: "1", Username: "admin", Name: "Admin User", Role: entity.RoleAdmin, Status: "active"}, Password: "admin"},
		{User: entity.User{ID: "2", Name: "สมชาย ใจดี", Role: entity.RoleClient, ClientID: "client1", Status: "active"}, Password: "client1"},
		{User: entity.User{ID: "3", Name: "John Smith", Role: entity.RoleClient, ClientID: "client2", Status: "active"}, Password: "client2"},
	}
}

// Demo arma el snapshot de demostración. hash convierte las contraseñas en claro (bcrypt).
func Demo(hash func(string) (string, error)) (Data, error) {
	now := time.Now()
	d := Data{
		Clients: []entity.Client{
			{ID: "client1", Name: "สมชาย ใจดี", IDNumber: "1234567890123", Email: "somchai@email.com", Phone: "081-234-5678", CreatedAt: day("2024-01-15")},
			{ID: "client2", Name: "John Smith", Email: "john@email.com", Phone: "+66-87-654-3210", CreatedAt: day("2024-02-20")},
			{ID: "client3", Name: "นิดา สวยงาม", IDNumber: "9876543210987", Phone: "089-876-5432", CreatedAt: day("2024-03-10")},
		},
		Payments: []entity.Payment{
			{ID: "pay1", ClientID: "client1", Amount: baht(2500), DueDate: day("2024-12-15"), Status: entity.PaymentOverdue, Description: "Custom Rose & Sandalwood Perfume"},
			{ID: "pay2", ClientID: "client1", Amount: baht(1800), DueDate: day("2024-12-25"), Status: entity.PaymentPending, Description: "Jasmine Night Fragrance"},
			{ID: "pay3", ClientID: "client1", Amount: baht(3200), DueDate: day("2024-11-30"), PaidDate: dayPtr("2024-11-28"), Status: entity.PaymentPaid, Description: "Citrus Fresh Collection"},
			{ID: "pay4", ClientID: "client2", Amount: baht(4500), DueDate: day("2024-12-20"), Status: entity.PaymentPending, Description: "Signature Woody Blend"},
			{ID: "pay5", ClientID: "client2", Amount: baht(2800), DueDate: day("2024-11-15"), PaidDate: dayPtr("2024-11-14"), Status: entity.PaymentPaid, Description: "Tropical Paradise Set"},
		},
		Orders: []entity.Order{
			{ID: "ord1", ClientID: "client1", Description: "Custom Rose & Sandalwood Perfume - 50ml", Amount: baht(2500), Status: entity.OrderCompleted, CreatedAt: day("2024-11-01"), CompletedAt: dayPtr("2024-11-15"), Notes: "Extra rose essence, medium sandalwood base"},
			{ID: "ord2", ClientID: "client1", Description: "Jasmine Night Fragrance - 30ml", Amount: baht(1800), Status: entity.OrderInProgress, CreatedAt: day("2024-12-01"), Notes: "Evening wear, subtle jasmine"},
			{ID: "ord3", ClientID: "client2", Description: "Signature Woody Blend - 100ml", Amount: baht(4500), Status: entity.OrderPending, CreatedAt: day("2024-12-10"), Notes: "Corporate signature scent"},
			{ID: "ord4", ClientID: "client2", Description: "Tropical Paradise Set - 3x30ml", Amount: baht(2800), Status: entity.OrderCompleted, CreatedAt: day("2024-10-15"), CompletedAt: dayPtr("2024-11-01"), Notes: "Mango, coconut, frangipani blend"},
		},
	}
	for i := range d.Clients {
		d.Clients[i].UpdatedAt = now
	}
	for i := range d.Payments {
		d.Payments[i].CreatedAt = now
		d.Payments[i].UpdatedAt = now
	}
	for i := range d.Orders {
		d.Orders[i].UpdatedAt = now
	}
	for _, c := range Credentials() {
		h, err := hash(c.Password)
		if err != nil {
			return Data{}, fmt.Errorf("seed: hash de %s: %w", c.User.ID, err)
		}
		u := c.User
		u.PasswordHash = h
		u.CreatedAt = now
		u.UpdatedAt = now
		d.Users = append(d.Users, u)
	}
	return d, nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func baht(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
