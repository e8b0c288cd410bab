// /internal/handler/session.go
package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	SessionCookieName = "creative-store-session"
	SessionHeader     = "X-Session-ID"

	sessionIDKey = "sessionId"
)

// NewCookieStore builds the cookie store that remembers the cart session of
// clients that do not send the session header.
func NewCookieStore(secret string, maxAge int) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SessionResolver works out which cart a request belongs to.
type SessionResolver struct {
	Store *sessions.CookieStore
}

// SessionRequired resolves the session id and stores it in the gin context.
// The X-Session-ID header wins over the cookie; when neither is present a
// new id is generated and saved to the cookie. The resolved id is always
// echoed back in the X-Session-ID response header.
func (r *SessionResolver) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(SessionHeader))
		if id == "" {
			// a cookie that fails to decode just yields a fresh session
			session, _ := r.Store.Get(c.Request, SessionCookieName)
			id, _ = session.Values[sessionIDKey].(string)
			if id == "" {
				id = uuid.NewString()
				session.Values[sessionIDKey] = id
				if err := session.Save(c.Request, c.Writer); err != nil {
					log.Printf("Could not save session cookie: %v", err)
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not start a session"})
					return
				}
			}
		}

		c.Header(SessionHeader, id)
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
