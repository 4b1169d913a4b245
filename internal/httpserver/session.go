// internal/httpserver/session.go
//
// Stateless session identity for the host adapter.
//
// Each browser gets a random session ID carried in a signed JWT cookie.
// Nothing is persisted server-side beyond the in-memory round registry;
// the signature only stops clients from forging someone else's session ID.

package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionCookieName = "quintle_session"

type ctxSessionKey struct{}

// sessionID returns the session ID placed in context by withSession.
func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(ctxSessionKey{}).(string)
	return id
}

// withSession resolves the session cookie, minting a new signed session
// when it is absent or invalid, and stores the session ID in context.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := s.verifySessionCookie(r)
		if id == "" {
			id = uuid.NewString()
			if tok, exp, err := s.signSession(id); err == nil {
				setSessionCookie(w, tok, exp)
			}
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) verifySessionCookie(r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(c.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}

func (s *Server) signSession(id string) (string, time.Time, error) {
	exp := time.Now().Add(30 * 24 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	})
	ss, err := token.SignedString([]byte(s.cfg.SessionSecret))
	return ss, exp, err
}

func setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}
