package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuvault/gen/ent"
	"github.com/joseph-ayodele/docuvault/gen/ent/user"
	"github.com/joseph-ayodele/docuvault/internal/common"
)

const RoleAdmin = "admin"

type UserRepository interface {
	CreateUser(ctx context.Context, name, email, role string) (*ent.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*ent.User, error)
	GetByEmail(ctx context.Context, email string) (*ent.User, error)
	ListUsers(ctx context.Context) ([]*ent.User, error)
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, name, email, role string) (*ent.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if role == "" {
		role = "user"
	}
	u, err := r.client.User.Create().
		SetName(name).
		SetEmail(email).
		SetRole(role).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, common.NewAppError("USER_EXISTS", "a user with this email already exists", common.ErrInvalidInput)
	}
	if err != nil {
		r.logger.Error("failed to create user", "email", email, "error", err)
		return nil, common.WrapError(err, "create user")
	}
	return u, nil
}

func (r *userRepository) GetUser(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	u, err := r.client.User.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("USER_NOT_FOUND", "user not found", common.ErrNotFound)
	}
	if err != nil {
		return nil, common.WrapError(err, "get user")
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	u, err := r.client.User.Query().
		Where(user.Email(strings.ToLower(strings.TrimSpace(email)))).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("USER_NOT_FOUND", "user not found", common.ErrNotFound)
	}
	if err != nil {
		return nil, common.WrapError(err, "get user by email")
	}
	return u, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*ent.User, error) {
	us, err := r.client.User.Query().
		Order(user.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list users", "error", err)
		return nil, common.WrapError(err, "list users")
	}
	return us, nil
}

func (r *userRepository) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	u, err := r.GetUser(ctx, id)
	if err != nil {
		return false, err
	}
	return u.Role == RoleAdmin, nil
}
