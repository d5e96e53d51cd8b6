package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sportfields/internal/domain/user"
	"sportfields/internal/infra"
	"sportfields/internal/pkg/clock"
	"sportfields/internal/pkg/errs"
	"sportfields/internal/pkg/jwt"
	"sportfields/internal/pkg/password"

	"github.com/google/uuid"
)

// Reset links stay valid this long after they are mailed out.
const resetTokenTTL = 4 * time.Hour

var (
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrResetTokenInvalid    = errs.New("reset token invalid")
	ErrResetTokenExpired    = errs.New("reset token expired")
	ErrUserMissing          = errs.New("user not found")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	FindCredentialsByEmail(ctx context.Context, email string) (*UserCredentials, error)
	FindCredentialsByResetToken(ctx context.Context, token string) (*UserCredentials, time.Time, error)
	SetResetToken(ctx context.Context, email, token string, expires time.Time) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	UpdateFavouriteSports(ctx context.Context, username, sports string) error
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

type LoginResult struct {
	Token           string
	Username        string
	Statut          int
	FavouriteSports string
}

type AuthCommands interface {
	Register(ctx context.Context, input RegisterInput) (string, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	SaveFavouriteSports(ctx context.Context, username, sports string) error
}

type authCommandsImpl struct {
	users       UserRepository
	mailer      Mailer
	jwtService  *jwt.Service
	clock       clock.Clock
	frontendURL string
}

func NewAuthCommands(users UserRepository, mailer Mailer, jwtService *jwt.Service, clk clock.Clock, frontendURL string) AuthCommands {
	return &authCommandsImpl{
		users:       users,
		mailer:      mailer,
		jwtService:  jwtService,
		clock:       clk,
		frontendURL: frontendURL,
	}
}

// Register creates the account and returns its username (the local
// part of the email address).
func (a *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (string, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return "", err
	}
	role, err := user.NewRole(input.Role)
	if err != nil {
		return "", err
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return "", err
	}

	newUser, err := user.NewUser(email, input.FirstName, input.LastName, hash, role)
	if err != nil {
		return "", err
	}

	if _, err := a.users.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", errs.Mark(err, ErrEmailTaken)
		}
		return "", err
	}
	return newUser.Username(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	normalized, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	creds, err := a.users.FindCredentialsByEmail(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(creds.PasswordHash, plainPassword); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	role, err := user.NewRole(creds.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(creds.Username, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token:           token,
		Username:        creds.Username,
		Statut:          role.Statut(),
		FavouriteSports: creds.FavouriteSports,
	}, nil
}

// RequestPasswordReset mails a one-time link. An unknown email returns
// nil so the endpoint cannot be used to probe which addresses exist.
func (a *authCommandsImpl) RequestPasswordReset(ctx context.Context, email string) error {
	normalized, err := user.NewEmail(email)
	if err != nil {
		return nil
	}

	token := uuid.NewString()
	expires := a.clock.Now().Add(resetTokenTTL)

	if err := a.users.SetResetToken(ctx, normalized.String(), token, expires); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", a.frontendURL, token)
	if err := a.mailer.SendPasswordReset(ctx, normalized.String(), link, expires); err != nil {
		slog.Error("failed to send password reset mail", "error", err.Error())
		return err
	}
	return nil
}

func (a *authCommandsImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	creds, expires, err := a.users.FindCredentialsByResetToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrResetTokenInvalid)
		}
		return err
	}
	if a.clock.Now().After(expires) {
		return ErrResetTokenExpired
	}

	hash, err := password.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return a.users.UpdatePassword(ctx, creds.Username, hash)
}

func (a *authCommandsImpl) SaveFavouriteSports(ctx context.Context, username, sports string) error {
	if err := a.users.UpdateFavouriteSports(ctx, username, sports); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUserMissing)
		}
		return err
	}
	return nil
}
