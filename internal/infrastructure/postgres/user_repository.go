package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `u.id, u.username, u.name, u.password_hash, u.role, u.client_id, u.status, u.created_at, u.updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, username, name, password_hash, role, client_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		u.ID, nullString(u.Username), u.Name, u.PasswordHash, u.Role, nullString(u.ClientID), u.Status,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`
	return r.findOne(ctx, "get user", query, id)
}

// FindByIdentifier busca por username; si no hay, por cédula, email o teléfono del cliente asociado.
func (r *UserRepo) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE lower(u.username) = lower($1)`
	u, err := r.findOne(ctx, "find user by username", query, identifier)
	if err != nil || u != nil {
		return u, err
	}
	query = `
		SELECT ` + userColumns + `
		FROM users u
		JOIN clients c ON c.id = u.client_id
		WHERE u.role = 'client'
		  AND (c.id_number = $1 OR lower(c.email) = lower($1) OR c.phone = $1)
		ORDER BY u.created_at
		LIMIT 1`
	return r.findOne(ctx, "find user by client identifier", query, identifier)
}

func (r *UserRepo) findOne(ctx context.Context, op, query string, args ...any) (*entity.User, error) {
	var (
		u                  entity.User
		username, clientID *string
	)
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &username, &u.Name, &u.PasswordHash, &u.Role, &clientID, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Username, u.ClientID = derefString(username), derefString(clientID)
	return &u, nil
}
