package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	homeUC domain.HomeUsecase
}

func NewHomeHandler(public *gin.RouterGroup, homeUC domain.HomeUsecase) {
	handler := &HomeHandler{homeUC: homeUC}
	public.GET("/home", handler.Get)
}

// GetHome godoc
// @Summary      Landing page aggregate
// @Description  Profile plus the teaser sections the homepage renders, localized
// @Tags         public
// @Produce      json
// @Param        lang  query     string  false  "Display language (en or jp)"
// @Success      200   {object}  response.Response
// @Router       /home [get]
func (h *HomeHandler) Get(c *gin.Context) {
	view, err := h.homeUC.Get(c.Request.Context(), requestLanguage(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Home content", view)
}
