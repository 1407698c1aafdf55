package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tidynest/tidynest-backend/internal/users"
	pkgauth "github.com/tidynest/tidynest-backend/pkg/auth"
	"github.com/tidynest/tidynest-backend/pkg/auth/session"
	"github.com/tidynest/tidynest-backend/pkg/config"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/security"
)

const invalidCredentialsMessage = "invalid credentials"

// Service defines the behavior needed by the auth controller.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*SessionResponse, error)
	Login(ctx context.Context, req LoginRequest) (*SessionResponse, error)
	Refresh(ctx context.Context, accessToken string, req RefreshRequest) (*SessionResponse, error)
	Logout(ctx context.Context, accessToken string) error
	CheckAuth(ctx context.Context, accessToken string) (*AuthenticatedUser, error)
}

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type userCreator interface {
	Create(ctx context.Context, input users.CreateUserInput) (models.User, error)
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
	HasSession(ctx context.Context, accessID string) (bool, error)
}

type service struct {
	finder      userFinder
	creator     userCreator
	session     sessionManager
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserFinder     userFinder
	UserCreator    userCreator
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserFinder == nil {
		return nil, fmt.Errorf("user finder is required")
	}
	if params.UserCreator == nil {
		return nil, fmt.Errorf("user creator is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		finder:      params.UserFinder,
		creator:     params.UserCreator,
		session:     params.SessionManager,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if existing, err := s.finder.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "looking up email")
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.creator.Create(ctx, users.CreateUserInput{
		Email:        email,
		DisplayName:  req.DisplayName,
		PasswordHash: hash,
		Role:         enums.UserRoleUser,
	})
	if err != nil {
		return nil, err
	}

	return s.openSession(ctx, user)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.finder.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "looking up email")
	}

	ok, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	return s.openSession(ctx, *user)
}

// Refresh rotates the refresh token tied to the presented access token
// and issues a fresh pair. The access token may be expired; only its
// identity matters here.
func (s *service) Refresh(ctx context.Context, accessToken string, req RefreshRequest) (*SessionResponse, error) {
	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwtCfg, accessToken)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid access token")
	}

	newAccessID, newRefreshToken, err := s.session.Rotate(ctx, claims.ID, req.RefreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotate session")
	}

	now := time.Now().UTC()
	signed, err := pkgauth.MintAccessToken(s.jwtCfg, now, pkgauth.AccessTokenPayload{
		UserID:        claims.UserID,
		Email:         claims.Email,
		DisplayName:   claims.DisplayName,
		Role:          claims.Role,
		EmailVerified: claims.EmailVerified,
		JTI:           newAccessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &SessionResponse{
		User: AuthenticatedUser{
			ID:            claims.UserID,
			Email:         claims.Email,
			DisplayName:   claims.DisplayName,
			Role:          claims.Role,
			EmailVerified: claims.EmailVerified,
		},
		AccessToken:  signed,
		RefreshToken: newRefreshToken,
		ExpiresAt:    now.Add(time.Duration(s.jwtCfg.ExpirationMinutes) * time.Minute),
	}, nil
}

func (s *service) Logout(ctx context.Context, accessToken string) error {
	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwtCfg, accessToken)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid access token")
	}
	if err := s.session.Revoke(ctx, claims.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

// CheckAuth restores the authenticated user from a presented token,
// verifying both the signature and that the session is still live.
func (s *service) CheckAuth(ctx context.Context, accessToken string) (*AuthenticatedUser, error) {
	claims, err := pkgauth.ParseAccessToken(s.jwtCfg, accessToken)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid access token")
	}

	alive, err := s.session.HasSession(ctx, claims.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check session")
	}
	if !alive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired")
	}

	return &AuthenticatedUser{
		ID:            claims.UserID,
		Email:         claims.Email,
		DisplayName:   claims.DisplayName,
		Role:          claims.Role,
		EmailVerified: claims.EmailVerified,
	}, nil
}

func (s *service) openSession(ctx context.Context, user models.User) (*SessionResponse, error) {
	accessID := session.NewAccessID()
	now := time.Now().UTC()

	signed, err := pkgauth.MintAccessToken(s.jwtCfg, now, pkgauth.AccessTokenPayload{
		UserID:        user.ID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		Role:          user.Role,
		EmailVerified: user.EmailVerified,
		JTI:           accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	refreshToken, err := s.session.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create session")
	}

	return &SessionResponse{
		User: AuthenticatedUser{
			ID:            user.ID,
			Email:         user.Email,
			DisplayName:   user.DisplayName,
			Role:          user.Role,
			EmailVerified: user.EmailVerified,
		},
		AccessToken:  signed,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(time.Duration(s.jwtCfg.ExpirationMinutes) * time.Minute),
	}, nil
}
