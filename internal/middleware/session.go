package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"health-assistant-api/internal/config"
	"health-assistant-api/internal/session"
)

const ContextSessionID = "session_id"

// Session resolves the caller's conversation session from a signed cookie,
// minting a fresh session when the cookie is absent, expired, or tampered
// with. The session ID is placed in the request context for handlers.
func Session(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string

		if token, err := c.Cookie(cfg.CookieName); err == nil {
			sessionID, err = session.ParseToken(cfg.Secret, token)
			if err != nil {
				log.Debug().
					Err(err).
					Str("request_id", c.GetString(ContextRequestID)).
					Msg("Discarding invalid session cookie")
				sessionID = ""
			}
		}

		if sessionID == "" {
			sessionID = session.NewSessionID()
			token, err := session.MintToken(cfg.Secret, sessionID, cfg.TTL)
			if err != nil {
				log.Error().
					Err(err).
					Str("request_id", c.GetString(ContextRequestID)).
					Msg("Failed to mint session token")
			} else {
				c.SetCookie(cfg.CookieName, token, int(cfg.TTL.Seconds()), "/", "", false, true)
			}
		}

		c.Set(ContextSessionID, sessionID)
		c.Next()
	}
}
