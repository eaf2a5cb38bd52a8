package handler

import (
	"github.com/gin-gonic/gin"
)

// PagesHandler serves the views with no storage behind them.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/reviews", h.Reviews)
}

// GET /
func (h *PagesHandler) Home(c *gin.Context) {
	render(c, "home.html", nil)
}

// GET /reviews
func (h *PagesHandler) Reviews(c *gin.Context) {
	render(c, "reviews.html", nil)
}
