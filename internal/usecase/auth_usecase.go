package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"collecte_service/internal/auth"
	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("username already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserInput   = errors.New("invalid user data")
)

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

type CreateVolunteerInput struct {
	Username string
	Password string
	CenterID string
}

type IAuthUseCase interface {
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	CreateVolunteer(ctx context.Context, input CreateVolunteerInput) (entities.User, error)
	GetUser(ctx context.Context, userID string) (entities.User, error)
}

type AuthUseCase struct {
	users   interfaces.IUserRepository
	centers interfaces.ICenterRepository
	tokens  interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, centers interfaces.ICenterRepository, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, centers: centers, tokens: tokens}
}

// Login verifies the password hash and issues a signed token. A volunteer
// without an attached center cannot log in at all.
func (u *AuthUseCase) Login(ctx context.Context, input LoginInput) (LoginOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return LoginOutput{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return LoginOutput{}, err
	}
	if user.ID == "" {
		return LoginOutput{}, ErrInvalidCredentials
	}
	if !auth.CheckPasswordHash(input.Password, user.PasswordHash) {
		return LoginOutput{}, ErrInvalidCredentials
	}
	if err := user.EnsureCanLogin(); err != nil {
		return LoginOutput{}, err
	}

	token, expiresAt, err := u.tokens.IssueToken(user)
	if err != nil {
		return LoginOutput{}, err
	}
	return LoginOutput{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (u *AuthUseCase) CreateVolunteer(ctx context.Context, input CreateVolunteerInput) (entities.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || len(input.Password) < 8 {
		return entities.User{}, ErrInvalidUserInput
	}
	centerID, err := entities.ParseCenterID(input.CenterID)
	if err != nil {
		return entities.User{}, err
	}

	center, err := u.centers.GetByID(ctx, centerID)
	if err != nil {
		return entities.User{}, err
	}
	if center.ID == "" {
		return entities.User{}, ErrCenterNotFound
	}
	if err := center.AssertActive(); err != nil {
		return entities.User{}, err
	}

	existing, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUserExists
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.NewUser(username, hash, entities.UserRoleBenevole, centerID)
	created, err := u.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.User{}, ErrUserExists
		}
		return entities.User{}, err
	}
	return created, nil
}

func (u *AuthUseCase) GetUser(ctx context.Context, userID string) (entities.User, error) {
	id, err := entities.ParseUserID(userID)
	if err != nil {
		return entities.User{}, err
	}
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
