package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	s := NewService("secret")
	token, user, err := s.Issue("Ada")
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("Expected a valid token, got %v", err)
	}
	if got != user || got.DisplayName != "Ada" {
		t.Errorf("Expected %+v, got %+v", user, got)
	}
}

func TestValidateRejects(t *testing.T) {
	s := NewService("secret")
	token, _, err := s.Issue("Ada")
	if err != nil {
		t.Fatal(err)
	}

	other := NewService("other")
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for a foreign secret, got %v", err)
	}

	s.now = func() time.Time { return time.Now().Add(2 * DefaultTTL) }
	if _, err := s.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for an expired token, got %v", err)
	}

	if _, err := NewService("").ValidateToken(token); !errors.Is(err, ErrDisabled) {
		t.Errorf("Expected ErrDisabled, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	s := NewService("secret")
	token, user, _ := s.Issue("Ada")

	r := httptest.NewRequest(http.MethodGet, "/ws/session/x?token="+token, nil)
	got, err := s.Authenticate(r)
	if err != nil || got.ID != user.ID {
		t.Errorf("Expected %s, got %+v %v", user.ID, got, err)
	}

	r = httptest.NewRequest(http.MethodGet, "/ws/session/x", nil)
	if _, err := s.Authenticate(r); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken without a token, got %v", err)
	}

	anon, err := NewService("").Authenticate(r)
	if err != nil || !strings.HasPrefix(anon.ID, "anon-") {
		t.Errorf("Expected an anonymous user, got %+v %v", anon, err)
	}
}

func TestMiddlewareAndHandler(t *testing.T) {
	s := NewService("secret")
	h := NewHandler(s)
	me := s.AuthMiddleware(http.HandlerFunc(h.Me))

	rec := httptest.NewRecorder()
	h.Token(rec, httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"displayName":"Ada"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}
	var res TokenResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}

	rec = httptest.NewRecorder()
	me.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a header, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+res.Token)
	rec = httptest.NewRecorder()
	me.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var u User
	if err := json.NewDecoder(rec.Body).Decode(&u); err != nil {
		t.Fatal(err)
	}
	if u != res.User {
		t.Errorf("Expected %+v, got %+v", res.User, u)
	}

	rec = httptest.NewRecorder()
	h.Token(rec, httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"displayName":" "}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a blank name, got %d", rec.Code)
	}
}
