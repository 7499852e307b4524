package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTVerifier_RoundTrip(t *testing.T) {
	v := NewJWTVerifier("test-secret")
	token, err := v.IssueToken(Caller{ID: "user-1", Email: "a@b.co", Role: "authenticated"}, time.Hour)
	require.NoError(t, err)

	caller, err := v.GetUser(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", caller.ID)
	assert.Equal(t, "a@b.co", caller.Email)
	assert.Equal(t, "authenticated", caller.Role)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	v := NewJWTVerifier("test-secret")
	other := NewJWTVerifier("other-secret")

	expired, _ := v.IssueToken(Caller{ID: "user-1"}, -time.Minute)
	foreign, _ := other.IssueToken(Caller{ID: "user-1"}, time.Hour)
	noSubject, _ := v.IssueToken(Caller{}, time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"expired", expired},
		{"wrong secret", foreign},
		{"no subject", noSubject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller, err := v.GetUser(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrUnauthorized)
			assert.Nil(t, caller)
		})
	}
}

func TestRemoteProvider_GetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-9","email":"x@y.co","role":"authenticated"}`))
	}))
	defer srv.Close()

	p := NewRemoteProvider(RemoteOptions{BaseURL: srv.URL, ServiceKey: "service-key"})

	caller, err := p.GetUser(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "user-9", caller.ID)

	_, err = p.GetUser(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRemoteProvider_UnreachableIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	p := NewRemoteProvider(RemoteOptions{BaseURL: srv.URL, ServiceKey: "k", Timeout: time.Second})
	_, err := p.GetUser(context.Background(), "any")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRemoteProvider_SendPasswordReset(t *testing.T) {
	var gotEmail, gotRedirect, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/recover", r.URL.Path)
		gotRedirect = r.URL.Query().Get("redirect_to")
		gotKey = r.Header.Get("apikey")
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotEmail = body["email"]
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p := NewRemoteProvider(RemoteOptions{BaseURL: srv.URL, ServiceKey: "service", AnonKey: "anon"})
	err := p.SendPasswordReset(context.Background(), "a@b.co", "https://app.example.com/reset-password")
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", gotEmail)
	assert.Equal(t, "https://app.example.com/reset-password", gotRedirect)
	assert.Equal(t, "anon", gotKey)
}

func TestRemoteProvider_SendPasswordResetFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewRemoteProvider(RemoteOptions{BaseURL: srv.URL, ServiceKey: "service"})
	err := p.SendPasswordReset(context.Background(), "a@b.co", "x")
	assert.Error(t, err)
}
