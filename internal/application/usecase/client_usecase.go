package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/perfume-portal/internal/application/auth"
	"github.com/jhoicas/perfume-portal/internal/application/dto"
	"github.com/jhoicas/perfume-portal/internal/application/presenter"
	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/internal/domain/repository"
	"github.com/jhoicas/perfume-portal/pkg/i18n"
)

// ClientUseCase casos de uso de gestión de clientes (solo admin).
type ClientUseCase struct {
	tx   ClientTxRunner
	repo repository.ClientRepository
	now  func() time.Time
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(tx ClientTxRunner, repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{tx: tx, repo: repo, now: time.Now}
}

// Create da de alta un cliente. Si viene Password, crea también su acceso (rol client)
// en la misma transacción; el cliente debe tener cédula, email o teléfono para poder entrar.
func (uc *ClientUseCase) Create(ctx context.Context, lang i18n.Lang, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	idNumber, email, phone := strings.TrimSpace(in.IDNumber), strings.TrimSpace(in.Email), strings.TrimSpace(in.Phone)
	if in.Password != "" && idNumber == "" && email == "" && phone == "" {
		return nil, fmt.Errorf("%w: el acceso requiere cédula, email o teléfono", domain.ErrInvalidInput)
	}

	now := uc.now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      name,
		IDNumber:  idNumber,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var hash string
	if in.Password != "" {
		h, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	err := uc.tx.RunClient(ctx, func(clientRepo repository.ClientRepository, userRepo repository.UserRepository) error {
		if err := clientRepo.Create(ctx, client); err != nil {
			return err
		}
		if hash == "" {
			return nil
		}
		return userRepo.Create(ctx, &entity.User{
			ID:           uuid.New().String(),
			Name:         client.Name,
			PasswordHash: hash,
			Role:         entity.RoleClient,
			ClientID:     client.ID,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	out := presenter.Client(lang, *client)
	return &out, nil
}

// List lista todos los clientes, más recientes primero.
func (uc *ClientUseCase) List(ctx context.Context, lang i18n.Lang) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return presenter.Clients(lang, list), nil
}

// GetByID obtiene un cliente; ErrNotFound si no existe.
func (uc *ClientUseCase) GetByID(ctx context.Context, lang i18n.Lang, id string) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := presenter.Client(lang, *c)
	return &out, nil
}

// Update actualiza los datos de contacto de un cliente.
func (uc *ClientUseCase) Update(ctx context.Context, lang i18n.Lang, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = name
	c.IDNumber = strings.TrimSpace(in.IDNumber)
	c.Email = strings.TrimSpace(in.Email)
	c.Phone = strings.TrimSpace(in.Phone)
	c.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := presenter.Client(lang, *c)
	return &out, nil
}
