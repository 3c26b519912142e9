package services

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/camden-git/totenbilder/models"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "totenbilder_session"

const sessionIssuer = "totenbilder"

// ErrNoSession is returned when a request carries no valid session.
var ErrNoSession = errors.New("no valid session")

type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionService issues and verifies administrator sessions as signed
// HS256 tokens stored in an HttpOnly cookie.
type SessionService struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewSessionService(secret []byte, ttl time.Duration, secureCookie bool) *SessionService {
	return &SessionService{secret: secret, ttl: ttl, secure: secureCookie, now: time.Now}
}

// Issue signs a token for user and returns it with its expiry.
func (s *SessionService) Issue(user models.SessionUser) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := sessionClaims{
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies a token and returns the session user it carries.
func (s *SessionService) Parse(tokenString string) (models.SessionUser, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	if !token.Valid || claims.Subject == "" {
		return models.SessionUser{}, ErrNoSession
	}
	return models.SessionUser{ID: claims.Subject, Name: claims.Name, Email: claims.Email}, nil
}

// FromRequest reads and verifies the session cookie of r.
func (s *SessionService) FromRequest(r *http.Request) (models.SessionUser, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return models.SessionUser{}, ErrNoSession
	}
	return s.Parse(cookie.Value)
}

// Start issues a session for user and sets the cookie on w.
func (s *SessionService) Start(w http.ResponseWriter, user models.SessionUser) error {
	token, expiresAt, err := s.Issue(user)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// End clears the session cookie.
func (s *SessionService) End(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
