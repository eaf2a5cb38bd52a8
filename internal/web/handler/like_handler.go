package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bloghub/internal/web/middleware"
	"bloghub/internal/web/service"
	"bloghub/internal/web/session"
)

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

func (h *LikeHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/like/:post_id", middleware.AuthRequired(), h.Toggle)
}

// Toggle likes the post when the current user has no like on it and
// unlikes it otherwise. A missing post flashes and mutates nothing.
// GET /like/:post_id
func (h *LikeHandler) Toggle(c *gin.Context) {
	userID := c.GetInt64("userID")

	postID, err := parsePostID(c)
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	if _, err := h.likeService.ToggleLike(userID, postID); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			session.Flash(c, "Post does not exist", session.FlashError)
			c.Redirect(http.StatusFound, "/blog")
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/blog")
}
