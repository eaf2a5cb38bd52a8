package dto

// Typed form inputs, one per POST endpoint. Bound with c.ShouldBind so
// missing required fields surface as a binding error at the boundary
// instead of silently reading empty strings out of the request.

// SignupForm: payload for user registration
type SignupForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// LoginForm: payload for user login
type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// PostForm: payload for creating or editing a blog post. The image file
// part is read separately from the multipart form.
type PostForm struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
}

// CommentForm: payload for commenting on a post. Text is deliberately not
// marked required: the handler checks it so an empty comment produces a
// flashed message rather than a binding error.
type CommentForm struct {
	Text string `form:"text"`
}
