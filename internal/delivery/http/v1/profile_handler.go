package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public *gin.RouterGroup, admin *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	public.GET("/profile", handler.PublicGet)

	admin.GET("/profile", handler.GetForm)
	admin.PUT("/profile", handler.Save)
}

// PublicGetProfile godoc
// @Summary      Get the public profile
// @Description  The localized singleton profile (404 until it is set up)
// @Tags         profile
// @Produce      json
// @Param        lang  query     string  false  "Display language (en or jp)"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /profile [get]
func (h *ProfileHandler) PublicGet(c *gin.Context) {
	view, err := h.profileUC.GetProfile(c.Request.Context(), requestLanguage(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", view)
}

// GetProfileForm godoc
// @Summary      Get the profile edit form
// @Description  Flattened representation: the structured lists as pretty JSON text
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetForm(c *gin.Context) {
	form, err := h.profileUC.GetForm(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile form", form)
}

// SaveProfile godoc
// @Summary      Save the profile
// @Description  Upserts the singleton row; malformed JSON in a list field is a 400
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileForm  true  "Profile form JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /admin/profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) Save(c *gin.Context) {
	var form domain.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.Save(c.Request.Context(), &form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", profile)
}
