package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bloghub/internal/web/dto"
	"bloghub/internal/web/middleware"
	"bloghub/internal/web/service"
	"bloghub/internal/web/session"
)

type BlogHandler struct {
	blogService   service.BlogService
	uploadService service.UploadService
}

func NewBlogHandler(blogService service.BlogService, uploadService service.UploadService) *BlogHandler {
	return &BlogHandler{
		blogService:   blogService,
		uploadService: uploadService,
	}
}

// RegisterRoutes registers the post routes. Only creation requires a
// login; edit and delete are reachable by anyone, including anonymously.
func (h *BlogHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/blog", h.List)
	r.GET("/readmore/:post_id", h.ReadMore)

	r.GET("/create", middleware.AuthRequired(), h.CreateForm)
	r.POST("/create", middleware.AuthRequired(), h.Create)

	r.GET("/edit/:post_id", h.EditForm)
	r.POST("/edit/:post_id", h.Edit)
	r.GET("/delete/:post_id", h.Delete)
	r.POST("/delete/:post_id", h.Delete)
}

// List shows every post, unfiltered and unpaginated
// GET /blog
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.blogService.ListPosts()
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	render(c, "blog.html", gin.H{"Posts": posts})
}

// CreateForm renders the new-post form
// GET /create
func (h *BlogHandler) CreateForm(c *gin.Context) {
	render(c, "create.html", nil)
}

// Create persists a new post owned by the current user. The image is
// optional; one with a disallowed extension is dropped without an error.
// POST /create
func (h *BlogHandler) Create(c *gin.Context) {
	userID := c.GetInt64("userID")

	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		session.Flash(c, "Title and content are required.", session.FlashError)
		c.Redirect(http.StatusFound, "/create")
		return
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = h.uploadService.SaveImage(file)
		if err != nil {
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	post, err := h.blogService.CreatePost(userID, form.Title, form.Content, imageURL)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// the list view ignores the parameter; kept for the address bar
	c.Redirect(http.StatusFound, fmt.Sprintf("/blog?post_id=%d", post.ID))
}

// EditForm renders the edit form for a post
// GET /edit/:post_id
func (h *BlogHandler) EditForm(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/blog")
		return
	}

	post, err := h.blogService.GetPost(postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.Redirect(http.StatusFound, "/blog")
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	render(c, "edit.html", gin.H{"Post": post})
}

// Edit updates title and content in place. There is no ownership check.
// POST /edit/:post_id
func (h *BlogHandler) Edit(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/blog")
		return
	}

	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		session.Flash(c, "Title and content are required.", session.FlashError)
		c.Redirect(http.StatusFound, fmt.Sprintf("/edit/%d", postID))
		return
	}

	if _, err := h.blogService.UpdatePost(postID, form.Title, form.Content); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.Redirect(http.StatusFound, "/blog")
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/blog")
}

// Delete removes a post unconditionally; a missing id is a quiet no-op.
// GET|POST /delete/:post_id
func (h *BlogHandler) Delete(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/blog")
		return
	}

	if err := h.blogService.DeletePost(postID); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/blog")
}

// ReadMore renders the single-post view with its comments. A missing post
// renders the view empty rather than failing.
// GET /readmore/:post_id
func (h *BlogHandler) ReadMore(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		render(c, "readmore.html", nil)
		return
	}

	post, err := h.blogService.GetPost(postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			render(c, "readmore.html", nil)
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	render(c, "readmore.html", gin.H{"Post": post})
}

func parsePostID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("post_id"), 10, 64)
}
