package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type HighlightHandler struct {
	highlightUC domain.HighlightUsecase
}

func NewHighlightHandler(public *gin.RouterGroup, admin *gin.RouterGroup, highlightUC domain.HighlightUsecase) {
	handler := &HighlightHandler{highlightUC: highlightUC}

	public.GET("/highlights", handler.PublicList)

	adminHighlights := admin.Group("/highlights")
	{
		adminHighlights.GET("", handler.List)
		adminHighlights.POST("", handler.Create)
		adminHighlights.PUT("/:id", handler.Update)
		adminHighlights.DELETE("/:id", handler.Delete)
	}
}

// PublicListHighlights godoc
// @Summary      List highlights
// @Description  Date descending, localized
// @Tags         highlights
// @Produce      json
// @Param        lang  query     string  false  "Display language (en or jp)"
// @Success      200   {object}  response.Response
// @Router       /highlights [get]
func (h *HighlightHandler) PublicList(c *gin.Context) {
	views, err := h.highlightUC.ListPublic(c.Request.Context(), requestLanguage(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Highlight list", views)
}

// ListHighlights godoc
// @Summary      List highlights (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/highlights [get]
// @Security     BearerAuth
func (h *HighlightHandler) List(c *gin.Context) {
	highlights, err := h.highlightUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Highlight list", highlights)
}

// CreateHighlight godoc
// @Summary      Create a highlight
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        highlight  body      domain.HighlightInput  true  "Highlight JSON"
// @Success      201        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Router       /admin/highlights [post]
// @Security     BearerAuth
func (h *HighlightHandler) Create(c *gin.Context) {
	var input domain.HighlightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	highlight, err := h.highlightUC.Create(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Highlight created", highlight)
}

// UpdateHighlight godoc
// @Summary      Update a highlight
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id         path      string                 true  "Highlight ID"
// @Param        highlight  body      domain.HighlightInput  true  "Highlight JSON"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /admin/highlights/{id} [put]
// @Security     BearerAuth
func (h *HighlightHandler) Update(c *gin.Context) {
	var input domain.HighlightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	highlight, err := h.highlightUC.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Highlight updated", highlight)
}

// DeleteHighlight godoc
// @Summary      Delete a highlight
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Highlight ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/highlights/{id} [delete]
// @Security     BearerAuth
func (h *HighlightHandler) Delete(c *gin.Context) {
	if err := h.highlightUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Highlight deleted", nil)
}
