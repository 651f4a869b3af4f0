package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// preferenceMaxAge keeps the cookies for one year, matching how long
// the site remembers a visitor's choices.
const preferenceMaxAge = 365 * 24 * 60 * 60

type PreferenceHandler struct{}

func NewPreferenceHandler(public *gin.RouterGroup) {
	handler := &PreferenceHandler{}
	public.GET("/preferences", handler.Get)
	public.PUT("/preferences", handler.Update)
}

type UpdatePreferencesRequest struct {
	Language string `json:"language" binding:"omitempty,oneof=en jp"`
	Theme    string `json:"theme" binding:"omitempty,oneof=light dark"`
}

// GetPreferences godoc
// @Summary      Read stored client preferences
// @Description  Returns the language and theme cookies with defaults applied
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /preferences [get]
func (h *PreferenceHandler) Get(c *gin.Context) {
	lang, err := c.Cookie("lang")
	if err != nil || lang == "" {
		lang = "en"
	}
	theme, err := c.Cookie("theme")
	if err != nil || theme == "" {
		theme = "light"
	}

	response.Success(c, http.StatusOK, "Preferences", gin.H{
		"language": lang,
		"theme":    theme,
	})
}

// UpdatePreferences godoc
// @Summary      Persist client preferences
// @Description  Validates and stores language/theme as one-year cookies
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        preferences  body      UpdatePreferencesRequest  true  "Preferences JSON"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Router       /preferences [put]
func (h *PreferenceHandler) Update(c *gin.Context) {
	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if req.Language != "" {
		c.SetCookie("lang", req.Language, preferenceMaxAge, "/", "", false, false)
	}
	if req.Theme != "" {
		c.SetCookie("theme", req.Theme, preferenceMaxAge, "/", "", false, false)
	}

	response.Success(c, http.StatusOK, "Preferences saved", gin.H{
		"language": req.Language,
		"theme":    req.Theme,
	})
}
