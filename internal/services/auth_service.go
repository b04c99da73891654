package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/devlinks/api/internal/models"
	"github.com/devlinks/api/internal/repository"
	appErr "github.com/devlinks/api/pkg/errors"
	"github.com/devlinks/api/pkg/password"
	"github.com/devlinks/api/pkg/token"
)

// invalidCredentials is returned for both unknown email and wrong password so
// the response does not reveal which check failed.
var invalidCredentials = appErr.New(appErr.CodeInvalid, "Invalid email or password.")

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, string, error)
	SignIn(ctx context.Context, email, pw string) (*models.User, string, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	users  repository.UserRepository
	issuer *token.Issuer
}

func NewAuthService(users repository.UserRepository, issuer *token.Issuer) AuthService {
	return &authService{users: users, issuer: issuer}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	var existing models.User
	err := s.users.GetByEmail(ctx, in.Email, &existing)
	if err == nil {
		return nil, "", appErr.New(appErr.CodeAlreadyExists, "User already exists.")
	}
	if !appErr.IsCode(err, appErr.CodeNotFound) {
		return nil, "", err
	}

	username, err := s.allocateUsername(ctx, in.Email)
	if err != nil {
		return nil, "", err
	}

	ph, err := password.Hash(in.Password)
	if err != nil {
		return nil, "", appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	user := &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: ph,
		UserName:     username,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique index on email is the authoritative duplicate check;
		// the read above only produces a friendlier fast path.
		if appErr.IsCode(err, appErr.CodeAlreadyExists) {
			return nil, "", appErr.New(appErr.CodeAlreadyExists, "User already exists.")
		}
		return nil, "", err
	}

	tok, err := s.issuer.Issue(user.ID.String(), user.Email)
	if err != nil {
		return nil, "", appErr.Wrap(err, appErr.CodeInternal, "issue token failed")
	}
	return user, tok, nil
}

func (s *authService) SignIn(ctx context.Context, email, pw string) (*models.User, string, error) {
	var user models.User
	if err := s.users.GetByEmail(ctx, email, &user); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, "", invalidCredentials
		}
		return nil, "", err
	}

	if !password.Verify(pw, user.PasswordHash) {
		return nil, "", invalidCredentials
	}

	tok, err := s.issuer.Issue(user.ID.String(), user.Email)
	if err != nil {
		return nil, "", appErr.Wrap(err, appErr.CodeInternal, "issue token failed")
	}
	return &user, tok, nil
}

func (s *authService) Profile(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := s.users.GetByID(ctx, userID, &user); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "User not found.")
		}
		return nil, err
	}
	return &user, nil
}

// allocateUsername derives a handle from the email's local part, resolving
// collisions with a numeric suffix: base, base1, base2, ...
func (s *authService) allocateUsername(ctx context.Context, email string) (string, error) {
	base := strings.ToLower(email)
	if i := strings.Index(base, "@"); i >= 0 {
		base = base[:i]
	}

	candidate := base
	for counter := 1; ; counter++ {
		var existing models.User
		err := s.users.GetByUsername(ctx, candidate, &existing)
		if err != nil {
			if appErr.IsCode(err, appErr.CodeNotFound) {
				return candidate, nil
			}
			return "", err
		}
		candidate = base + strconv.Itoa(counter)
	}
}
