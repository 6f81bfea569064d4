package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/annakovaleva/blogview/internal/client/models"
	"github.com/annakovaleva/blogview/internal/client/store"
	"github.com/annakovaleva/blogview/internal/logging"
)

// There is no identity backend: the token is fabricated client-side and
// never server-verified. Signing it anyway keeps the wire shape of a real
// deployment.
var devTokenSecret = []byte("blogview-dev-secret")

const tokenTTL = 24 * time.Hour

// AuthService orchestrates login, registration and logout against a
// simulated identity endpoint and mirrors outcomes into the session store.
// Credential checks are limited to presence, enforced by the caller's form
// validation, not here.
type AuthService struct {
	sessions *store.SessionStore
	delay    time.Duration
	log      logging.Logger
	now      func() time.Time
}

// NewAuthService constructs the service. delay is the fixed simulated
// round-trip latency applied to login and registration.
func NewAuthService(sessions *store.SessionStore, delay time.Duration, log logging.Logger) *AuthService {
	return &AuthService{
		sessions: sessions,
		delay:    delay,
		log:      log,
		now:      time.Now,
	}
}

// Login fabricates a session for the given email after the simulated delay:
// the display name is the email local part, the token a fresh signed JWT.
func (a *AuthService) Login(ctx context.Context, email, password string) models.Result[models.User] {
	if err := a.simulateRoundTrip(ctx); err != nil {
		return models.Err[models.User]("Login cancelled")
	}

	local := strings.SplitN(email, "@", 2)[0]
	user := models.User{
		ID:       1,
		Name:     local,
		Email:    email,
		Username: local,
	}

	token, err := a.issueToken(user)
	if err != nil {
		a.log.Error(ctx, "token generation failed", "err", err)
		return models.Err[models.User]("Login failed")
	}

	a.sessions.Set(&user, token)
	a.log.Info(ctx, "logged in", "user", user.Username)
	return models.Ok(user)
}

// Register fabricates a new account: the id is wall-clock derived and the
// username is the lower-cased name with whitespace stripped.
func (a *AuthService) Register(ctx context.Context, name, email, password string) models.Result[models.User] {
	if err := a.simulateRoundTrip(ctx); err != nil {
		return models.Err[models.User]("Registration cancelled")
	}

	user := models.User{
		ID:       a.now().UnixMilli(),
		Name:     name,
		Email:    email,
		Username: strings.ToLower(strings.Join(strings.Fields(name), "")),
	}

	token, err := a.issueToken(user)
	if err != nil {
		a.log.Error(ctx, "token generation failed", "err", err)
		return models.Err[models.User]("Registration failed")
	}

	a.sessions.Set(&user, token)
	a.log.Info(ctx, "registered", "user", user.Username)
	return models.Ok(user)
}

// Logout tears the session down; the store clears its durable copy and the
// external mirror.
func (a *AuthService) Logout() {
	a.sessions.Clear()
}

// IsLoggedIn reports whether an authenticated session with a token exists.
func (a *AuthService) IsLoggedIn() bool {
	return a.sessions.Authenticated() && a.sessions.Token() != ""
}

func (a *AuthService) issueToken(user models.User) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(a.now()),
		ExpiresAt: jwt.NewNumericDate(a.now().Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(devTokenSecret)
}

// simulateRoundTrip waits the fixed delay, honoring cancellation.
func (a *AuthService) simulateRoundTrip(ctx context.Context) error {
	if a.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(a.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
