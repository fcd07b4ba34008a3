package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/service/ports"
)

// RoleAuthorizer checks a verified caller against the role stored on their
// user record. Every call reads the store.
type RoleAuthorizer struct {
	users ports.UserRepo
}

func NewRoleAuthorizer(users ports.UserRepo) *RoleAuthorizer {
	return &RoleAuthorizer{users: users}
}

func (a *RoleAuthorizer) Authorize(ctx context.Context, email string, role domain.Role) error {
	if email == "" {
		return domain.ErrForbidden
	}

	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrForbidden
		}
		return fmt.Errorf("lookup caller: %w", err)
	}

	if user.Role != role {
		return domain.ErrForbidden
	}

	return nil
}
