package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bloghub/internal/web/dto"
	"bloghub/internal/web/middleware"
	"bloghub/internal/web/service"
	"bloghub/internal/web/session"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/comments/:post_id", middleware.AuthRequired(), h.Create)
}

// Create adds a comment to a post. Empty text and a missing post both
// flash instead of persisting; either way the visitor lands back on the
// list.
// POST /comments/:post_id
func (h *CommentHandler) Create(c *gin.Context) {
	userID := c.GetInt64("userID")

	postID, err := parsePostID(c)
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	var form dto.CommentForm
	_ = c.ShouldBind(&form)

	if form.Text == "" {
		session.Flash(c, "Comment cannot be empty.", session.FlashError)
		c.Redirect(http.StatusFound, "/blog")
		return
	}

	if _, err := h.commentService.CreateComment(userID, postID, form.Text); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			session.Flash(c, "Post does not exist.", session.FlashError)
			c.Redirect(http.StatusFound, "/blog")
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/blog")
}
