package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(public *gin.RouterGroup, admin *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	public.GET("/projects", handler.PublicList)

	adminProjects := admin.Group("/projects")
	{
		adminProjects.GET("", handler.List)
		adminProjects.POST("", handler.Create)
		adminProjects.PUT("/:id", handler.Update)
		adminProjects.DELETE("/:id", handler.Delete)
	}
}

// PublicListProjects godoc
// @Summary      List projects
// @Description  Manual order first (order_index asc), then creation order, localized
// @Tags         projects
// @Produce      json
// @Param        lang  query     string  false  "Display language (en or jp)"
// @Success      200   {object}  response.Response
// @Router       /projects [get]
func (h *ProjectHandler) PublicList(c *gin.Context) {
	views, err := h.projectUC.ListPublic(c.Request.Context(), requestLanguage(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project list", views)
}

// ListProjects godoc
// @Summary      List projects (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/projects [get]
// @Security     BearerAuth
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project list", projects)
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        project  body      domain.ProjectInput  true  "Project JSON"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /admin/projects [post]
// @Security     BearerAuth
func (h *ProjectHandler) Create(c *gin.Context) {
	var input domain.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	project, err := h.projectUC.Create(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Project created", project)
}

// UpdateProject godoc
// @Summary      Update a project
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Project ID"
// @Param        project  body      domain.ProjectInput  true  "Project JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /admin/projects/{id} [put]
// @Security     BearerAuth
func (h *ProjectHandler) Update(c *gin.Context) {
	var input domain.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	project, err := h.projectUC.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project updated", project)
}

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/projects/{id} [delete]
// @Security     BearerAuth
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project deleted", nil)
}
