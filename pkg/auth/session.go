package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "farmintel_session"

type Role string

const (
	RoleFarmer Role = "farmer"
	RoleAdmin  Role = "admin"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleFarmer:
		return RoleFarmer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// LoginPath is where a guard sends a caller lacking this role.
func (r Role) LoginPath() string {
	switch r {
	case RoleAdmin:
		return "/admin/login"
	case RoleFarmer:
		return "/farmer/login"
	}
	return "/farmer/login"
}

// HomePath is where a successful login lands.
func (r Role) HomePath() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleFarmer:
		return "/farmer/dashboard"
	}
	return "/"
}

// Session is what a logged-in caller carries between requests.
type Session struct {
	Authenticated bool   `json:"logged_in"`
	Role          Role   `json:"role"`
	UserID        uint   `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
}

type sessionClaims struct {
	Session
	jwt.RegisteredClaims
}

// Sessions signs sessions into an HttpOnly cookie and reads them back.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewSessions(secret string, ttl time.Duration, secure bool) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl, secure: secure, now: time.Now}
}

func (m *Sessions) Encode(s Session) (string, error) {
	now := m.now()
	claims := sessionClaims{
		Session: s,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(s.UserID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Sessions) Decode(token string) (Session, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired(), jwt.WithTimeFunc(m.now))
	if err != nil {
		return Session{}, err
	}
	if _, err := ParseRole(string(claims.Role)); err != nil {
		return Session{}, err
	}
	if !claims.Authenticated || claims.UserID == 0 {
		return Session{}, errors.New("session not authenticated")
	}
	return claims.Session, nil
}

// Issue establishes s as the caller's session.
func (m *Sessions) Issue(w http.ResponseWriter, s Session) error {
	s.Authenticated = true
	token, err := m.Encode(s)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.ttl.Seconds()),
	})
	return nil
}

// Read returns the caller's session; ok is false when absent or invalid.
func (m *Sessions) Read(r *http.Request) (Session, bool) {
	ck, err := r.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return Session{}, false
	}
	s, err := m.Decode(ck.Value)
	if err != nil {
		return Session{}, false
	}
	return s, true
}

// Clear drops the session cookie entirely.
func (m *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
