package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResearchHandler struct {
	researchUC domain.ResearchUsecase
}

func NewResearchHandler(public *gin.RouterGroup, admin *gin.RouterGroup, researchUC domain.ResearchUsecase) {
	handler := &ResearchHandler{researchUC: researchUC}

	public.GET("/research", handler.PublicList)

	adminResearch := admin.Group("/research")
	{
		adminResearch.GET("", handler.List)
		adminResearch.POST("", handler.Create)
		adminResearch.PUT("/:id", handler.Update)
		adminResearch.DELETE("/:id", handler.Delete)
	}
}

// PublicListResearch godoc
// @Summary      List research entries
// @Description  Date descending, localized. Paper links stay hidden while a paper is only accepted.
// @Tags         research
// @Produce      json
// @Param        lang  query     string  false  "Display language (en or jp)"
// @Success      200   {object}  response.Response
// @Router       /research [get]
func (h *ResearchHandler) PublicList(c *gin.Context) {
	views, err := h.researchUC.ListPublic(c.Request.Context(), requestLanguage(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Research list", views)
}

// ListResearch godoc
// @Summary      List research entries (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/research [get]
// @Security     BearerAuth
func (h *ResearchHandler) List(c *gin.Context) {
	research, err := h.researchUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Research list", research)
}

// CreateResearch godoc
// @Summary      Create a research entry
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        research  body      domain.ResearchInput  true  "Research JSON"
// @Success      201       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /admin/research [post]
// @Security     BearerAuth
func (h *ResearchHandler) Create(c *gin.Context) {
	var input domain.ResearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	research, err := h.researchUC.Create(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Research created", research)
}

// UpdateResearch godoc
// @Summary      Update a research entry
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id        path      string                true  "Research ID"
// @Param        research  body      domain.ResearchInput  true  "Research JSON"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /admin/research/{id} [put]
// @Security     BearerAuth
func (h *ResearchHandler) Update(c *gin.Context) {
	var input domain.ResearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	research, err := h.researchUC.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Research updated", research)
}

// DeleteResearch godoc
// @Summary      Delete a research entry
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Research ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/research/{id} [delete]
// @Security     BearerAuth
func (h *ResearchHandler) Delete(c *gin.Context) {
	if err := h.researchUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Research deleted", nil)
}
