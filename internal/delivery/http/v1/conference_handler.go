package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ConferenceHandler struct {
	conferenceUC domain.ConferenceUsecase
}

func NewConferenceHandler(public *gin.RouterGroup, admin *gin.RouterGroup, conferenceUC domain.ConferenceUsecase) {
	handler := &ConferenceHandler{conferenceUC: conferenceUC}

	public.GET("/conferences", handler.PublicList)

	adminConferences := admin.Group("/conferences")
	{
		adminConferences.GET("", handler.List)
		adminConferences.POST("", handler.Create)
		adminConferences.PUT("/:id", handler.Update)
		adminConferences.DELETE("/:id", handler.Delete)
	}
}

// PublicListConferences godoc
// @Summary      List conferences
// @Description  Date descending, localized
// @Tags         conferences
// @Produce      json
// @Param        lang  query     string  false  "Display language (en or jp)"
// @Success      200   {object}  response.Response
// @Router       /conferences [get]
func (h *ConferenceHandler) PublicList(c *gin.Context) {
	views, err := h.conferenceUC.ListPublic(c.Request.Context(), requestLanguage(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Conference list", views)
}

// ListConferences godoc
// @Summary      List conferences (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/conferences [get]
// @Security     BearerAuth
func (h *ConferenceHandler) List(c *gin.Context) {
	conferences, err := h.conferenceUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Conference list", conferences)
}

// CreateConference godoc
// @Summary      Create a conference
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        conference  body      domain.ConferenceInput  true  "Conference JSON"
// @Success      201         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Router       /admin/conferences [post]
// @Security     BearerAuth
func (h *ConferenceHandler) Create(c *gin.Context) {
	var input domain.ConferenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	conference, err := h.conferenceUC.Create(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Conference created", conference)
}

// UpdateConference godoc
// @Summary      Update a conference
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id          path      string                  true  "Conference ID"
// @Param        conference  body      domain.ConferenceInput  true  "Conference JSON"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /admin/conferences/{id} [put]
// @Security     BearerAuth
func (h *ConferenceHandler) Update(c *gin.Context) {
	var input domain.ConferenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	conference, err := h.conferenceUC.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Conference updated", conference)
}

// DeleteConference godoc
// @Summary      Delete a conference
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Conference ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/conferences/{id} [delete]
// @Security     BearerAuth
func (h *ConferenceHandler) Delete(c *gin.Context) {
	if err := h.conferenceUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Conference deleted", nil)
}
