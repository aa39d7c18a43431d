package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sessionRepoStub struct {
	findFn func(ctx context.Context, token string) (*entity.Session, error)
}

func (s *sessionRepoStub) Create(context.Context, *entity.Session) error { return nil }

func (s *sessionRepoStub) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return s.findFn(ctx, token)
}

func (s *sessionRepoStub) Revoke(context.Context, string) error { return nil }

func validSessionFor(userID int64, token string) *entity.Session {
	return &entity.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     uuid.MustParse(token),
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
}

func TestAuthSessionMissingHeader(t *testing.T) {
	mw := AuthSession(&sessionRepoStub{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run without a token")
	}))
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSessionBadFormat(t *testing.T) {
	mw := AuthSession(&sessionRepoStub{}, zap.NewNop())

	for _, header := range []string{
		"justatoken",
		"Basic abc123",
		"Bearer",
	} {
		rec := httptest.NewRecorder()
		handler := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatalf("handler must not run for header %q", header)
		}))

		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		req.Header.Set("Authorization", header)
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthSessionMalformedToken(t *testing.T) {
	repo := &sessionRepoStub{
		findFn: func(context.Context, string) (*entity.Session, error) {
			t.Fatal("token that is not a uuid must be rejected before the lookup")
			return nil, nil
		},
	}
	mw := AuthSession(repo, zap.NewNop())

	rec := httptest.NewRecorder()
	handler := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run with a malformed token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Authorization", "Bearer not-a-uuid")
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSessionUnknownToken(t *testing.T) {
	repo := &sessionRepoStub{
		findFn: func(context.Context, string) (*entity.Session, error) {
			return nil, nil
		},
	}
	mw := AuthSession(repo, zap.NewNop())

	rec := httptest.NewRecorder()
	handler := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run for an unknown token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Authorization", "Bearer "+uuid.NewString())
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSessionLookupError(t *testing.T) {
	repo := &sessionRepoStub{
		findFn: func(context.Context, string) (*entity.Session, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}
	mw := AuthSession(repo, zap.NewNop())

	rec := httptest.NewRecorder()
	handler := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run when the lookup fails")
	}))

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Authorization", "Bearer "+uuid.NewString())
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuthSessionValidToken(t *testing.T) {
	token := uuid.NewString()
	repo := &sessionRepoStub{
		findFn: func(_ context.Context, got string) (*entity.Session, error) {
			require.Equal(t, token, got)
			return validSessionFor(42, token), nil
		},
	}
	mw := AuthSession(repo, zap.NewNop())

	var gotUserID int64
	var gotToken string
	rec := httptest.NewRecorder()
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		gotUserID = userID

		ctxToken, ok := utils.GetTokenFromContext(r.Context())
		require.True(t, ok)
		gotToken = ctxToken

		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotUserID)
	assert.Equal(t, token, gotToken)
}
