package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(public *gin.RouterGroup, admin *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	public.GET("/skills", handler.PublicList)

	adminSkills := admin.Group("/skills")
	{
		adminSkills.GET("", handler.List)
		adminSkills.POST("", handler.Create)
		adminSkills.PUT("/:id", handler.Update)
		adminSkills.DELETE("/:id", handler.Delete)
	}
}

// PublicListSkills godoc
// @Summary      List skills grouped by category
// @Description  Categories in alphabetical order, skills in manual order within each
// @Tags         skills
// @Produce      json
// @Param        lang  query     string  false  "Display language (en or jp)"
// @Success      200   {object}  response.Response
// @Router       /skills [get]
func (h *SkillHandler) PublicList(c *gin.Context) {
	groups, err := h.skillUC.ListGrouped(c.Request.Context(), requestLanguage(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill list", groups)
}

// ListSkills godoc
// @Summary      List skills (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/skills [get]
// @Security     BearerAuth
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill list", skills)
}

// CreateSkill godoc
// @Summary      Create a skill
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        skill  body      domain.SkillInput  true  "Skill JSON"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /admin/skills [post]
// @Security     BearerAuth
func (h *SkillHandler) Create(c *gin.Context) {
	var input domain.SkillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.skillUC.Create(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill created", skill)
}

// UpdateSkill godoc
// @Summary      Update a skill
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id     path      string             true  "Skill ID"
// @Param        skill  body      domain.SkillInput  true  "Skill JSON"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /admin/skills/{id} [put]
// @Security     BearerAuth
func (h *SkillHandler) Update(c *gin.Context) {
	var input domain.SkillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.skillUC.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill updated", skill)
}

// DeleteSkill godoc
// @Summary      Delete a skill
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/skills/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.skillUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill deleted", nil)
}
