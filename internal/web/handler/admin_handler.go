package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloghub/internal/web/service"
	"bloghub/internal/web/session"
)

type AdminHandler struct {
	userService service.UserService
}

func NewAdminHandler(userService service.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

func (h *AdminHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/admin", h.ListUsers)
}

// ListUsers shows every registered account to the admin. Authentication
// is confirmed before the admin check so an anonymous visit redirects
// cleanly instead of faulting on a missing user.
// GET /admin
func (h *AdminHandler) ListUsers(c *gin.Context) {
	userID, ok := session.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		// session points at an account that no longer resolves
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if !user.IsAdmin() {
		session.Flash(c, "Sorry you must be the admin to access that page", session.FlashWarning)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	users, err := h.userService.ListUsers()
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	render(c, "admin.html", gin.H{"Users": users})
}
