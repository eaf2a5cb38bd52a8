package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bloghub/internal/web/dto"
	"bloghub/internal/web/service"
	"bloghub/internal/web/session"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers signup, login and logout
func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/signup", h.SignupForm)
	r.POST("/signup", h.Signup)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}

// SignupForm renders the registration form
// GET /signup
func (h *AuthHandler) SignupForm(c *gin.Context) {
	render(c, "signup.html", nil)
}

// Signup creates an account and immediately authenticates it
// POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var form dto.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		session.Flash(c, "Name, email and password are required.", session.FlashError)
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	user, err := h.authService.Register(form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) {
			session.Flash(c, "This Email is already in use.", session.FlashError)
			c.Redirect(http.StatusFound, "/signup")
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := session.LogIn(c, user); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/blog")
}

// LoginForm renders the login form
// GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	render(c, "login.html", nil)
}

// Login authenticates by email and password. A failed attempt goes back
// to the form without establishing a session.
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.authService.Login(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := session.LogIn(c, user); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/blog")
}

// Logout tears down the whole session and lands on the signup page.
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.LogOut(c); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/signup")
}
