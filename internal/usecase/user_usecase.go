package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"freightmarket/internal/domain/entities"
	"freightmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserInput = errors.New("invalid user payload")
	ErrUserExists       = errors.New("profile already registered for this subject")
)

// RegisterUserInput binds a profile to the verified auth subject.
type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	BirthDate *time.Time
}

type IUserUseCase interface {
	Register(ctx context.Context, authUID string, in RegisterUserInput) (entities.User, error)
	Me(ctx context.Context, authUID string) (entities.User, error)
}

type UserUseCase struct {
	users interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(users interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

func (u *UserUseCase) Register(ctx context.Context, authUID string, in RegisterUserInput) (entities.User, error) {
	authUID = strings.TrimSpace(authUID)
	if authUID == "" {
		return entities.User{}, ErrInvalidUserInput
	}
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return entities.User{}, ErrInvalidUserInput
	}

	if existing, err := u.users.GetByAuthUID(ctx, authUID); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrUserExists
	}

	user := entities.User{
		ID:           uuid.NewString(),
		AuthUID:      authUID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        strings.TrimSpace(in.Phone),
		BirthDate:    in.BirthDate,
		RegisteredAt: time.Now().UTC(),
	}
	return u.users.Create(ctx, user)
}

func (u *UserUseCase) Me(ctx context.Context, authUID string) (entities.User, error) {
	authUID = strings.TrimSpace(authUID)
	if authUID == "" {
		return entities.User{}, ErrInvalidUserInput
	}
	user, err := u.users.GetByAuthUID(ctx, authUID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
