package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUC domain.BlogUsecase
}

func NewBlogHandler(public *gin.RouterGroup, admin *gin.RouterGroup, blogUC domain.BlogUsecase) {
	handler := &BlogHandler{blogUC: blogUC}

	publicBlogs := public.Group("/blogs")
	{
		publicBlogs.GET("", handler.PublicList)
		publicBlogs.GET("/:slug", handler.PublicGetBySlug)
	}

	adminBlogs := admin.Group("/blogs")
	{
		adminBlogs.GET("", handler.List)
		adminBlogs.POST("", handler.Create)
		adminBlogs.PUT("/:id", handler.Update)
		adminBlogs.DELETE("/:id", handler.Delete)
	}
}

// PublicListBlogs godoc
// @Summary      List published posts
// @Description  Published posts only, newest first, localized
// @Tags         blogs
// @Produce      json
// @Param        lang  query     string  false  "Display language (en or jp)"
// @Success      200   {object}  response.Response
// @Router       /blogs [get]
func (h *BlogHandler) PublicList(c *gin.Context) {
	views, err := h.blogUC.ListPublished(c.Request.Context(), requestLanguage(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog list", views)
}

// PublicGetBlogBySlug godoc
// @Summary      Get a published post by slug
// @Description  Drafts and unknown slugs are both 404
// @Tags         blogs
// @Produce      json
// @Param        slug  path      string  true   "Post slug"
// @Param        lang  query     string  false  "Display language (en or jp)"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /blogs/{slug} [get]
func (h *BlogHandler) PublicGetBySlug(c *gin.Context) {
	view, err := h.blogUC.GetPublishedBySlug(c.Request.Context(), c.Param("slug"), requestLanguage(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog post", view)
}

// ListBlogs godoc
// @Summary      List all posts (admin)
// @Description  Raw rows including drafts, newest first
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/blogs [get]
// @Security     BearerAuth
func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.blogUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog list", blogs)
}

// CreateBlog godoc
// @Summary      Create a post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        blog  body      domain.BlogInput  true  "Blog JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /admin/blogs [post]
// @Security     BearerAuth
func (h *BlogHandler) Create(c *gin.Context) {
	var input domain.BlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	blog, err := h.blogUC.Create(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Blog created", blog)
}

// UpdateBlog godoc
// @Summary      Update a post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Blog ID"
// @Param        blog  body      domain.BlogInput  true  "Blog JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/blogs/{id} [put]
// @Security     BearerAuth
func (h *BlogHandler) Update(c *gin.Context) {
	var input domain.BlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	blog, err := h.blogUC.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog updated", blog)
}

// DeleteBlog godoc
// @Summary      Delete a post
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Blog ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/blogs/{id} [delete]
// @Security     BearerAuth
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog deleted", nil)
}
