package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// sessionCookieName holds the signed session token in the browser.
	sessionCookieName = "fitlog_session"

	userIDCtx   = "userId"
	usernameCtx = "username"

	loginPath = "/login"
	homePath  = "/home"
)

// sessionMiddleware gates every protected route. Any request without a live
// session, whatever the reason, gets a redirect to the login page.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	sess, err := h.services.Authenticate(token)
	if err != nil {
		if h.log != nil {
			h.log.Debugw("session_rejected", "err", err)
		}
		clearSessionCookie(c)
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	c.Set(userIDCtx, sess.UserID)
	c.Set(usernameCtx, sess.Username)
	c.Next()
}

// currentUserID reads the user id placed by sessionMiddleware.
func currentUserID(c *gin.Context) (int, bool) {
	v, ok := c.Get(userIDCtx)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
