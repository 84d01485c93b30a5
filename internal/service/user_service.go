package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/freightops/internal/model"
	"github.com/nurpe/freightops/internal/policy"
	"github.com/nurpe/freightops/internal/repository"
)

// CredentialStore is where account passwords live. Credentials are kept
// next to the mock authentication provider, outside the user entity.
type CredentialStore interface {
	SetCredential(email, password string)
	RemoveCredential(email string)
}

// UserService manages accounts. Every operation is gated on the chief
// logistician role.
type UserService struct {
	repo  *repository.UserRepository
	creds CredentialStore
	log   zerolog.Logger
}

func NewUserService(repo *repository.UserRepository, creds CredentialStore, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, creds: creds, log: log}
}

func (s *UserService) List(actor model.User) ([]model.User, error) {
	if !policy.CanManageUsers(actor) {
		return nil, ErrPermissionDenied
	}
	return s.repo.List(), nil
}

type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     model.UserRole
	Actor    model.User
}

func (s *UserService) Create(cmd CreateUserCommand) (*model.User, error) {
	if !policy.CanManageUsers(cmd.Actor) {
		return nil, ErrPermissionDenied
	}
	switch {
	case cmd.Name == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case cmd.Email == "":
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	case cmd.Password == "":
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	case !cmd.Role.Valid():
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, cmd.Role)
	}
	if _, err := s.repo.GetByEmail(cmd.Email); err == nil {
		return nil, fmt.Errorf("%w: email %q is already taken", ErrInvalidInput, cmd.Email)
	}

	user := model.User{
		ID:    uuid.NewString(),
		Name:  cmd.Name,
		Role:  cmd.Role,
		Email: cmd.Email,
	}
	s.repo.Save(user)
	s.creds.SetCredential(user.Email, cmd.Password)

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user created")
	return &user, nil
}

// Delete removes an account. Self-deletion is refused regardless of role.
func (s *UserService) Delete(targetID string, actor model.User) error {
	target, err := s.repo.Get(targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !policy.CanDeleteUser(target, actor) {
		return ErrPermissionDenied
	}

	if err := s.repo.Delete(targetID); err != nil {
		return err
	}
	s.creds.RemoveCredential(target.Email)

	s.log.Info().Str("user_id", targetID).Msg("user deleted")
	return nil
}
