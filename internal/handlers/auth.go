package handlers

import (
	"errors"
	"net/http"

	"fitlog/internal/service"

	"github.com/gin-gonic/gin"
)

// msgInvalidCredentials is the single message for every failed login.
// It never distinguishes an unknown username from a wrong password.
const (
	msgInvalidCredentials = "Invalid username or password"
	msgServerError        = "server error"
)

const loginPageHTML = `<!DOCTYPE html>
<html>
<head><title>Login</title></head>
<body>
  <h1>Sign in</h1>
  <form method="POST" action="/loginProcess">
    <label>Username <input type="text" name="username" autofocus></label>
    <label>Password <input type="password" name="password"></label>
    <button type="submit">Log in</button>
  </form>
</body>
</html>`

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// @Summary      Landing page
// @Tags         auth
// @Success      302
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	if token, err := c.Cookie(sessionCookieName); err == nil {
		if _, err := h.services.Authenticate(token); err == nil {
			c.Redirect(http.StatusFound, homePath)
			return
		}
	}
	c.Redirect(http.StatusFound, loginPath)
}

// @Summary      Login form
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /login [get]
func (h *Handler) loginPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginPageHTML))
}

// @Summary      Process login credentials
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /loginProcess [post]
func (h *Handler) loginProcess(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgInvalidCredentials})
		return
	}

	token, err := h.services.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("login_rejected", "username", form.Username)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgInvalidCredentials})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgServerError, "login_failed", err)
		return
	}

	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, homePath)
}

// @Summary      Log out and invalidate the session
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookieName); err == nil {
		h.services.Logout(token)
	}
	clearSessionCookie(c)
	c.Redirect(http.StatusFound, loginPath)
}
