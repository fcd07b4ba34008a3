package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/service/ports"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Create registers a user once per email. The bool reports whether a new
// record was inserted; a repeated registration is not an error.
func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, bool, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, false, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, fmt.Errorf("check user: %w", err)
	}

	user := &domain.User{
		ID:             primitive.NewObjectID(),
		Email:          email,
		Name:           input.Name,
		PhotoURL:       input.PhotoURL,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err = s.repo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration of the same email
		if errors.Is(err, domain.ErrUserExists) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	return user, true, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}

// Promote is what PATCH /users/admin/:id does. Despite the route name it
// always grants the decorator role, never admin.
// TODO: confirm with product whether this route should grant admin instead.
func (s *UserService) Promote(ctx context.Context, id primitive.ObjectID) (domain.UpdateResult, error) {
	return s.repo.SetRole(ctx, id, domain.RoleDecorator)
}

// HasRole reports whether email holds role. Callers may only ask about
// themselves: for anyone else the answer is false and the store is not read.
func (s *UserService) HasRole(ctx context.Context, caller, email string, role domain.Role) (bool, error) {
	if caller != email {
		return false, nil
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get user: %w", err)
	}

	return user.Role == role, nil
}
