package user

import (
	"context"
	"fmt"

	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/pkg/model"
)

func NewService(repository *repository) *Service {
	return &Service{repository: repository}
}

type Service struct {
	repository *repository
}

// SignUp registers an account. Administrators are never created through
// sign-up; only the user and company roles are accepted.
func (s Service) SignUp(ctx context.Context, firstName, lastName, email, password string, role model.Role) (*model.User, error) {
	if role != model.RoleUser && role != model.RoleCompany {
		return nil, errdef.NewBadRequest("role must be either %q or %q", model.RoleUser, model.RoleCompany)
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %v", err)
	}

	user := &model.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashedPassword,
		Role:      role,
	}

	err = s.repository.create(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s Service) SignIn(ctx context.Context, email string, password string) (*model.User, error) {
	const unauthorizedError = "invalid email and password combination"

	user, err := s.repository.findByEmail(ctx, email)
	if err != nil {
		if errdef.IsNotFound(err) {
			return nil, errdef.NewUnauthorized(unauthorizedError)
		}
		return nil, err
	}

	match, err := comparePasswords(user.Password, password)
	if err != nil {
		return nil, fmt.Errorf("password comparison failed: %v", err)
	}
	if !match {
		return nil, errdef.NewUnauthorized(unauthorizedError)
	}

	return user, nil
}

func (s Service) FindById(ctx context.Context, id uint) (*model.User, error) {
	return s.repository.findById(ctx, id)
}

func (s Service) FindAll(ctx context.Context) ([]*model.User, error) {
	return s.repository.findAll(ctx)
}

func (s Service) Delete(ctx context.Context, id uint) error {
	return s.repository.delete(ctx, id)
}
