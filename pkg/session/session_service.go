package session

import (
	"errors"
	"time"

	"recipehub-backend/domain"

	"github.com/golang-jwt/jwt/v4"
)

// CookieName is the key of the signed httpOnly cookie presented on every
// authenticated request.
const CookieName = "session"

type (
	SessionService interface {
		Generate(userID string) (string, error)
		Validate(token string) (string, error)
		// Refresh re-signs a valid token with a fresh expiry, capped at the
		// session's active-duration ceiling. The bool reports whether a new
		// token was issued.
		Refresh(token string) (string, bool, error)
		Duration() time.Duration
	}

	sessionClaims struct {
		UserID       string `json:"user_id"`
		SessionStart int64  `json:"session_start"`
		jwt.RegisteredClaims
	}

	sessionService struct {
		secretKey      string
		issuer         string
		duration       time.Duration
		activeDuration time.Duration
	}
)

func NewSessionService(secretKey string, duration, activeDuration time.Duration) SessionService {
	return &sessionService{
		secretKey:      secretKey,
		issuer:         "RECIPEHUB",
		duration:       duration,
		activeDuration: activeDuration,
	}
}

func (s *sessionService) Duration() time.Duration {
	return s.duration
}

func (s *sessionService) Generate(userID string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID:       userID,
		SessionStart: now.Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.expiry(now, now)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *sessionService) Validate(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

func (s *sessionService) Refresh(token string) (string, bool, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", false, err
	}

	now := time.Now()
	start := time.Unix(claims.SessionStart, 0)
	newExpiry := s.expiry(now, start)
	if !newExpiry.After(claims.ExpiresAt.Time) {
		return token, false, nil
	}

	claims.ExpiresAt = jwt.NewNumericDate(newExpiry)
	claims.IssuedAt = jwt.NewNumericDate(now)
	refreshed := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := refreshed.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", false, err
	}
	return signed, true, nil
}

// expiry is now+duration, never past the active-duration ceiling measured
// from the start of the session.
func (s *sessionService) expiry(now, start time.Time) time.Time {
	expiry := now.Add(s.duration)
	ceiling := start.Add(s.activeDuration)
	if expiry.After(ceiling) {
		return ceiling
	}
	return expiry
}

func (s *sessionService) parse(token string) (*sessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.UserID == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
