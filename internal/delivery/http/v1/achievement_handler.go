package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	achievementUC domain.AchievementUsecase
}

func NewAchievementHandler(public *gin.RouterGroup, admin *gin.RouterGroup, achievementUC domain.AchievementUsecase) {
	handler := &AchievementHandler{achievementUC: achievementUC}

	public.GET("/achievements", handler.PublicList)

	adminAchievements := admin.Group("/achievements")
	{
		adminAchievements.GET("", handler.List)
		adminAchievements.POST("", handler.Create)
		adminAchievements.PUT("/:id", handler.Update)
		adminAchievements.DELETE("/:id", handler.Delete)
	}
}

// PublicListAchievements godoc
// @Summary      List achievements
// @Description  Date descending, localized
// @Tags         achievements
// @Produce      json
// @Param        lang  query     string  false  "Display language (en or jp)"
// @Success      200   {object}  response.Response
// @Router       /achievements [get]
func (h *AchievementHandler) PublicList(c *gin.Context) {
	views, err := h.achievementUC.ListPublic(c.Request.Context(), requestLanguage(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Achievement list", views)
}

// ListAchievements godoc
// @Summary      List achievements (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/achievements [get]
// @Security     BearerAuth
func (h *AchievementHandler) List(c *gin.Context) {
	achievements, err := h.achievementUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Achievement list", achievements)
}

// CreateAchievement godoc
// @Summary      Create an achievement
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        achievement  body      domain.AchievementInput  true  "Achievement JSON"
// @Success      201          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Router       /admin/achievements [post]
// @Security     BearerAuth
func (h *AchievementHandler) Create(c *gin.Context) {
	var input domain.AchievementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	achievement, err := h.achievementUC.Create(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Achievement created", achievement)
}

// UpdateAchievement godoc
// @Summary      Update an achievement
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id           path      string                   true  "Achievement ID"
// @Param        achievement  body      domain.AchievementInput  true  "Achievement JSON"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /admin/achievements/{id} [put]
// @Security     BearerAuth
func (h *AchievementHandler) Update(c *gin.Context) {
	var input domain.AchievementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	achievement, err := h.achievementUC.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Achievement updated", achievement)
}

// DeleteAchievement godoc
// @Summary      Delete an achievement
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Achievement ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/achievements/{id} [delete]
// @Security     BearerAuth
func (h *AchievementHandler) Delete(c *gin.Context) {
	if err := h.achievementUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Achievement deleted", nil)
}
