package main

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"unicode"

	"docvault/models"
	"docvault/pkg/token"
)

// AuthGuard is the single choke point protected operations pass through:
// bearer header -> token -> live user record.
type AuthGuard struct {
	tokens *token.Service
	users  UserStore
}

func NewAuthGuard(tokens *token.Service, users UserStore) *AuthGuard {
	return &AuthGuard{tokens: tokens, users: users}
}

// Authenticate resolves the request's bearer token to a live user. Each
// failing step short-circuits with its own reason; all of them map to 401.
func (g *AuthGuard) Authenticate(r *http.Request) (*models.User, error) {
	tok := token.FromHeader(r.Header.Get("Authorization"))
	if tok == "" {
		return nil, ErrNoToken
	}
	claims := g.tokens.Verify(tok)
	if claims == nil {
		return nil, ErrInvalidToken
	}
	user, err := g.users.FindByID(r.Context(), claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return len(email) <= 254 && emailRE.MatchString(email)
}

// validPassword enforces the registration policy: at least 8 characters with
// a lowercase letter, an uppercase letter and a digit.
func validPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// registerUser creates an account and issues a session token (auto-login
// after register). A duplicate email surfaces as ErrEmailExists.
func (a *app) registerUser(ctx context.Context, email, pw, fullName string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	fullName = strings.TrimSpace(fullName)
	if !validEmail(email) {
		return nil, "", validationError("Invalid email address")
	}
	if !validPassword(pw) {
		return nil, "", validationError("Password must be at least 8 characters and contain a lowercase letter, an uppercase letter, and a number")
	}
	if len(fullName) < 2 || len(fullName) > 100 {
		return nil, "", validationError("Full name must be between 2 and 100 characters")
	}

	hashed, err := a.hasher.Hash(pw)
	if err != nil {
		return nil, "", err
	}
	user := &models.User{Email: email, HashedPassword: hashed, FullName: fullName}
	if err := a.users.Create(ctx, user); err != nil {
		return nil, "", err
	}
	tok, err := a.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}

// loginUser authenticates credentials. An unknown email and a wrong password
// return the same ErrInvalidCredentials so the two are indistinguishable.
func (a *app) loginUser(ctx context.Context, email, pw string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !a.hasher.Verify(pw, user.HashedPassword) {
		return nil, "", ErrInvalidCredentials
	}
	tok, err := a.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}
