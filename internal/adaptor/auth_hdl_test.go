package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authServiceStub struct {
	registerFn func(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	loginFn    func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	logoutFn   func(ctx context.Context, token string) error
}

func (s *authServiceStub) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	return s.registerFn(ctx, req)
}

func (s *authServiceStub) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *authServiceStub) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func TestRegisterHandler(t *testing.T) {
	stub := &authServiceStub{
		registerFn: func(_ context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
			return &response.UserResponse{ID: 1, Username: req.Username, Email: req.Email}, nil
		},
	}
	h := NewAuthHandler(stub, zap.NewNop())

	body := `{"username":"alice","email":"alice@example.com","password":"secret123","password_confirm":"secret123"}`
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Status)

	var user response.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)

	// Passwords never appear on the wire
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "secret123")
}

func TestRegisterHandlerPasswordMismatch(t *testing.T) {
	called := false
	stub := &authServiceStub{
		registerFn: func(_ context.Context, _ *request.RegisterRequest) (*response.UserResponse, error) {
			called = true
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, zap.NewNop())

	body := `{"username":"alice","email":"alice@example.com","password":"secret123","password_confirm":"different"}`
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called, "mismatched passwords must be rejected before the service runs")

	env := decodeEnvelope(t, rec)
	assert.Contains(t, env.Errors, "PasswordConfirm")
}

func TestRegisterHandlerDuplicate(t *testing.T) {
	stub := &authServiceStub{
		registerFn: func(_ context.Context, _ *request.RegisterRequest) (*response.UserResponse, error) {
			return nil, fmt.Errorf("email already registered")
		},
	}
	h := NewAuthHandler(stub, zap.NewNop())

	body := `{"username":"alice","email":"alice@example.com","password":"secret123","password_confirm":"secret123"}`
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandler(t *testing.T) {
	stub := &authServiceStub{
		loginFn: func(_ context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
			return &response.AuthResponse{
				Token: "11111111-2222-3333-4444-555555555555",
				User:  response.UserResponse{ID: 1, Username: req.Username},
			}, nil
		},
	}
	h := NewAuthHandler(stub, zap.NewNop())

	body := `{"username":"alice","password":"secret123"}`
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var auth response.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	assert.NotEmpty(t, auth.Token)
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	stub := &authServiceStub{
		loginFn: func(_ context.Context, _ *request.LoginRequest) (*response.AuthResponse, error) {
			return nil, fmt.Errorf("invalid credentials")
		},
	}
	h := NewAuthHandler(stub, zap.NewNop())

	body := `{"username":"alice","password":"wrong"}`
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutHandler(t *testing.T) {
	var gotToken string
	stub := &authServiceStub{
		logoutFn: func(_ context.Context, token string) error {
			gotToken = token
			return nil
		},
	}
	h := NewAuthHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	ctx := utils.SetTokenContext(req.Context(), "11111111-2222-3333-4444-555555555555")

	rec := httptest.NewRecorder()
	h.Logout(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", gotToken)
}
