package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hoff08/barbeariateste/internal/auth/domain"
	"github.com/Hoff08/barbeariateste/internal/auth/dto"
	"github.com/Hoff08/barbeariateste/internal/auth/handler"
	"github.com/Hoff08/barbeariateste/internal/auth/provider"
	"github.com/Hoff08/barbeariateste/internal/auth/service"
	autherror "github.com/Hoff08/barbeariateste/internal/errors"
	"github.com/Hoff08/barbeariateste/internal/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type handlerFixture struct {
	app      *fiber.App
	users    *mocks.MockUserRepository
	sessions *mocks.MockSessionRepository
	google   *mocks.MockIdentityVerifier
	tokens   *service.TokenService
}

func newFixture(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &handlerFixture{
		users:    mocks.NewMockUserRepository(ctrl),
		sessions: mocks.NewMockSessionRepository(ctrl),
		google:   mocks.NewMockIdentityVerifier(ctrl),
		tokens:   service.NewTokenService("test-access-secret", "test-refresh-secret", 15, 10080),
	}

	verifiers := map[domain.Provider]provider.IdentityVerifier{
		domain.ProviderGoogle: f.google,
	}
	userService := service.NewUserService(f.users, f.sessions, f.tokens, verifiers)
	authHandler := handler.NewAuthHandler(userService, f.tokens)

	f.app = fiber.New()
	handler.RegisterRoutes(f.app, authHandler)

	return f
}

type testResponse struct {
	Code int
	Body *bytes.Buffer
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, headers map[string]string) testResponse {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	return testResponse{Code: resp.StatusCode, Body: buf}
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(nil, nil)
		f.users.EXPECT().CreateLocal(gomock.Any(), "Test User", "test@example.com", gomock.Any()).
			Return(&domain.User{ID: 1, Name: "Test User", Email: "test@example.com"}, nil)
		f.sessions.EXPECT().StoreRefreshSession(gomock.Any(), gomock.Any()).Return(nil)

		rec := postJSON(t, f.app, "/api/auth/register",
			dto.RegisterInput{Name: "Test User", Email: "test@example.com", Password: "password123"}, nil)

		assert.Equal(t, fiber.StatusCreated, rec.Code)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.User.ID)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)

		// The issued tokens verify with the expected kinds.
		accessClaims, err := f.tokens.Verify(resp.AccessToken, service.TokenKindAccess)
		require.NoError(t, err)
		assert.Equal(t, int64(1), accessClaims.UserID)

		refreshClaims, err := f.tokens.Verify(resp.RefreshToken, service.TokenKindRefresh)
		require.NoError(t, err)
		assert.Equal(t, int64(1), refreshClaims.UserID)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newFixture(t)

		rec := postJSON(t, f.app, "/api/auth/register",
			dto.RegisterInput{Email: "test@example.com"}, nil)
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
	})

	t.Run("short password", func(t *testing.T) {
		f := newFixture(t)

		rec := postJSON(t, f.app, "/api/auth/register",
			dto.RegisterInput{Name: "Test User", Email: "test@example.com", Password: "12345"}, nil)
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").
			Return(&domain.User{ID: 2, Email: "taken@example.com"}, nil)

		rec := postJSON(t, f.app, "/api/auth/register",
			dto.RegisterInput{Name: "Test User", Email: "taken@example.com", Password: "password123"}, nil)
		assert.Equal(t, fiber.StatusConflict, rec.Code)
	})

	t.Run("storage failure is not leaked", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), "test@example.com").
			Return(nil, autherror.ErrStorage)

		rec := postJSON(t, f.app, "/api/auth/register",
			dto.RegisterInput{Name: "Test User", Email: "test@example.com", Password: "password123"}, nil)

		assert.Equal(t, fiber.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "internal server error")
		assert.NotContains(t, rec.Body.String(), "storage")
	})
}

func TestLoginEndpoint(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &domain.User{ID: 1, Name: "Test User", Email: "test@example.com", PasswordHash: string(hashed)}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		f.sessions.EXPECT().StoreRefreshSession(gomock.Any(), gomock.Any()).Return(nil)

		rec := postJSON(t, f.app, "/api/auth/login",
			dto.LoginInput{Email: user.Email, Password: "password123"}, nil)
		assert.Equal(t, fiber.StatusOK, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		rec := postJSON(t, f.app, "/api/auth/login",
			dto.LoginInput{Email: user.Email, Password: "wrong"}, nil)
		assert.Equal(t, fiber.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email gets the same response", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), "unknown@example.com").Return(nil, nil)

		rec := postJSON(t, f.app, "/api/auth/login",
			dto.LoginInput{Email: "unknown@example.com", Password: "password123"}, nil)
		assert.Equal(t, fiber.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid credentials")
	})
}

func TestGoogleLoginEndpoint(t *testing.T) {
	identity := &provider.Identity{Email: "test@example.com", Name: "Test User", ExternalID: "google-123"}

	t.Run("existing account logs in with 200", func(t *testing.T) {
		f := newFixture(t)

		f.google.EXPECT().Verify(gomock.Any(), "id-token").Return(identity, nil)
		f.users.EXPECT().CreateOrLinkExternal(gomock.Any(), domain.ProviderGoogle,
			identity.Name, identity.Email, identity.ExternalID).
			Return(&domain.User{ID: 1, Name: identity.Name, Email: identity.Email}, false, nil)
		f.sessions.EXPECT().StoreRefreshSession(gomock.Any(), gomock.Any()).Return(nil)

		rec := postJSON(t, f.app, "/api/auth/google", dto.ExternalLoginInput{IDToken: "id-token"}, nil)
		assert.Equal(t, fiber.StatusOK, rec.Code)
	})

	t.Run("first login provisions with 201", func(t *testing.T) {
		f := newFixture(t)

		f.google.EXPECT().Verify(gomock.Any(), "id-token").Return(identity, nil)
		f.users.EXPECT().CreateOrLinkExternal(gomock.Any(), domain.ProviderGoogle,
			identity.Name, identity.Email, identity.ExternalID).
			Return(&domain.User{ID: 1, Name: identity.Name, Email: identity.Email}, true, nil)
		f.sessions.EXPECT().StoreRefreshSession(gomock.Any(), gomock.Any()).Return(nil)

		rec := postJSON(t, f.app, "/api/auth/google", dto.ExternalLoginInput{IDToken: "id-token"}, nil)
		assert.Equal(t, fiber.StatusCreated, rec.Code)
	})

	t.Run("verification failure", func(t *testing.T) {
		f := newFixture(t)

		f.google.EXPECT().Verify(gomock.Any(), "bad-token").
			Return(nil, autherror.ErrIdentityVerificationFailed)

		rec := postJSON(t, f.app, "/api/auth/google", dto.ExternalLoginInput{IDToken: "bad-token"}, nil)
		assert.Equal(t, fiber.StatusUnauthorized, rec.Code)
	})

	t.Run("missing id token", func(t *testing.T) {
		f := newFixture(t)

		rec := postJSON(t, f.app, "/api/auth/google", dto.ExternalLoginInput{}, nil)
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
	})

	t.Run("apple provider not configured", func(t *testing.T) {
		f := newFixture(t)

		rec := postJSON(t, f.app, "/api/auth/apple", dto.ExternalLoginInput{IDToken: "id-token"}, nil)
		assert.Equal(t, fiber.StatusUnauthorized, rec.Code)
	})
}

func TestRefreshEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		refreshToken, _, err := f.tokens.MintRefresh(1)
		require.NoError(t, err)

		f.sessions.EXPECT().ValidateRefreshSession(gomock.Any(), refreshToken).Return(int64(1), nil)
		f.sessions.EXPECT().StoreRefreshSession(gomock.Any(), gomock.Any()).Return(nil)

		rec := postJSON(t, f.app, "/api/auth/refresh", dto.RefreshInput{RefreshToken: refreshToken}, nil)
		assert.Equal(t, fiber.StatusOK, rec.Code)

		var tokens dto.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.NotEqual(t, refreshToken, tokens.RefreshToken)
	})

	t.Run("access token presented instead of refresh", func(t *testing.T) {
		f := newFixture(t)

		accessToken, _, err := f.tokens.MintAccess(1)
		require.NoError(t, err)

		rec := postJSON(t, f.app, "/api/auth/refresh", dto.RefreshInput{RefreshToken: accessToken}, nil)
		assert.Equal(t, fiber.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "token kind mismatch")
	})

	t.Run("revoked session", func(t *testing.T) {
		f := newFixture(t)

		refreshToken, _, err := f.tokens.MintRefresh(1)
		require.NoError(t, err)

		f.sessions.EXPECT().ValidateRefreshSession(gomock.Any(), refreshToken).
			Return(int64(0), autherror.ErrSessionNotFound)

		rec := postJSON(t, f.app, "/api/auth/refresh", dto.RefreshInput{RefreshToken: refreshToken}, nil)
		assert.Equal(t, fiber.StatusUnauthorized, rec.Code)
	})

	t.Run("missing body", func(t *testing.T) {
		f := newFixture(t)

		rec := postJSON(t, f.app, "/api/auth/refresh", dto.RefreshInput{}, nil)
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	t.Run("revokes and succeeds", func(t *testing.T) {
		f := newFixture(t)

		accessToken, _, err := f.tokens.MintAccess(1)
		require.NoError(t, err)
		refreshToken, _, err := f.tokens.MintRefresh(1)
		require.NoError(t, err)

		f.sessions.EXPECT().RevokeRefreshSession(gomock.Any(), refreshToken).Return(nil)

		rec := postJSON(t, f.app, "/api/auth/logout", dto.LogoutInput{RefreshToken: refreshToken},
			map[string]string{"Authorization": "Bearer " + accessToken})
		assert.Equal(t, fiber.StatusOK, rec.Code)
	})

	t.Run("already revoked token still succeeds", func(t *testing.T) {
		f := newFixture(t)

		accessToken, _, err := f.tokens.MintAccess(1)
		require.NoError(t, err)

		f.sessions.EXPECT().RevokeRefreshSession(gomock.Any(), "gone-token").Return(nil)

		rec := postJSON(t, f.app, "/api/auth/logout", dto.LogoutInput{RefreshToken: "gone-token"},
			map[string]string{"Authorization": "Bearer " + accessToken})
		assert.Equal(t, fiber.StatusOK, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := newFixture(t)

		rec := postJSON(t, f.app, "/api/auth/logout", dto.LogoutInput{RefreshToken: "x"}, nil)
		assert.Equal(t, fiber.StatusUnauthorized, rec.Code)
	})
}

func TestProfileEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		accessToken, _, err := f.tokens.MintAccess(7)
		require.NoError(t, err)

		f.users.EXPECT().GetByID(gomock.Any(), int64(7)).
			Return(&domain.User{ID: 7, Name: "Test User", Email: "test@example.com"}, nil)

		req := httptest.NewRequest("GET", "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("no token", func(t *testing.T) {
		f := newFixture(t)

		req := httptest.NewRequest("GET", "/api/auth/profile", nil)
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("refresh token rejected on a protected route", func(t *testing.T) {
		f := newFixture(t)

		refreshToken, _, err := f.tokens.MintRefresh(7)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer "+refreshToken)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired access token", func(t *testing.T) {
		f := newFixture(t)

		expired := service.NewTokenService("test-access-secret", "test-refresh-secret", 15, 10080)
		expired.AccessTokenExpiry = -time.Minute
		accessToken, _, err := expired.MintAccess(7)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
