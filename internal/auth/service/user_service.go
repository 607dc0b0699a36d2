package service

import (
	"context"
	"strings"
	"time"

	"github.com/Hoff08/barbeariateste/internal/auth/domain"
	"github.com/Hoff08/barbeariateste/internal/auth/dto"
	"github.com/Hoff08/barbeariateste/internal/auth/provider"
	autherror "github.com/Hoff08/barbeariateste/internal/errors"
	"github.com/Hoff08/barbeariateste/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService resolves login events onto canonical users and drives
// the token lifecycle: issue on register/login, re-issue on refresh,
// revoke on logout.
type UserService struct {
	users        domain.UserRepository
	sessions     domain.SessionRepository
	tokenService TokenGenerator
	verifiers    map[domain.Provider]provider.IdentityVerifier
}

func NewUserService(
	users domain.UserRepository,
	sessions domain.SessionRepository,
	tokenService TokenGenerator,
	verifiers map[domain.Provider]provider.IdentityVerifier,
) *UserService {
	return &UserService{
		users:        users,
		sessions:     sessions,
		tokenService: tokenService,
		verifiers:    verifiers,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), constant.BcryptCost)
	if err != nil {
		return nil, err
	}

	// The unique constraint is the real guard: a concurrent register
	// for the same email loses here with ErrEmailAlreadyInUse.
	user, err := s.users.CreateLocal(ctx, input.Name, email, string(hashed))
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user, true)
}

// Login authenticates a local-credential user. Unknown email and wrong
// password are deliberately indistinguishable so the endpoint cannot be
// used to enumerate accounts.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}

	if user == nil || user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user, false)
}

// ExternalLogin verifies a provider token and resolves it to the
// canonical user, creating one on first login or linking the provider
// id onto an existing email-matched account.
func (s *UserService) ExternalLogin(ctx context.Context, p domain.Provider, input dto.ExternalLoginInput) (*dto.AuthResponse, error) {
	verifier, ok := s.verifiers[p]
	if !ok {
		return nil, autherror.ErrIdentityVerificationFailed
	}

	identity, err := verifier.Verify(ctx, input.IDToken)
	if err != nil {
		return nil, err
	}

	user, created, err := s.users.CreateOrLinkExternal(ctx, p,
		identity.Name, normalizeEmail(identity.Email), identity.ExternalID)
	if err != nil {
		return nil, err
	}

	resp, err := s.issueTokens(ctx, user, created)
	if err != nil {
		return nil, err
	}
	resp.Synthetic = identity.Synthetic

	return resp, nil
}

// Refresh exchanges a valid refresh token for a new access/refresh
// pair. The presented session is deliberately left alive until its own
// expiry; single-use rotation is out of scope because it changes how
// clients reconnect after a dropped response.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	claims, err := s.tokenService.Verify(input.RefreshToken, TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	userID, err := s.sessions.ValidateRefreshSession(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if userID != claims.UserID {
		return nil, autherror.ErrTokenInvalid
	}

	accessToken, _, err := s.tokenService.MintAccess(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiresAt, err := s.tokenService.MintRefresh(userID)
	if err != nil {
		return nil, err
	}

	if err := s.recordSession(ctx, userID, refreshToken, refreshExpiresAt); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    constant.DefaultTokenType,
		ExpiresIn:    int(s.tokenService.GetAccessTokenExpiry().Seconds()),
	}, nil
}

// Logout revokes the presented refresh token. Revoking a token that is
// already gone succeeds.
func (s *UserService) Logout(ctx context.Context, input dto.LogoutInput) error {
	if input.RefreshToken == "" {
		return nil
	}
	return s.sessions.RevokeRefreshSession(ctx, input.RefreshToken)
}

func (s *UserService) Profile(ctx context.Context, userID int64) (*dto.UserOutput, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return &dto.UserOutput{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// issueTokens mints an access/refresh pair and records the refresh
// session as one logical unit: if recording fails, the minted pair is
// discarded and the whole operation errors, so a caller never holds
// tokens that cannot be refreshed.
func (s *UserService) issueTokens(ctx context.Context, user *domain.User, created bool) (*dto.AuthResponse, error) {
	accessToken, _, err := s.tokenService.MintAccess(user.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiresAt, err := s.tokenService.MintRefresh(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.recordSession(ctx, user.ID, refreshToken, refreshExpiresAt); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:         dto.UserOutput{ID: user.ID, Name: user.Name, Email: user.Email},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Created:      created,
	}, nil
}

func (s *UserService) recordSession(ctx context.Context, userID int64, refreshToken string, expiresAt time.Time) error {
	return s.sessions.StoreRefreshSession(ctx, &domain.RefreshSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	})
}
