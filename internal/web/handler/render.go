package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloghub/internal/web/session"
)

// render draws a view with the ambient state every page shows: pending
// flash messages and the current visitor.
func render(c *gin.Context, view string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = session.TakeFlashes(c)
	data["UserName"] = session.CurrentUserName(c)
	_, loggedIn := session.CurrentUserID(c)
	data["LoggedIn"] = loggedIn
	c.HTML(http.StatusOK, view, data)
}
