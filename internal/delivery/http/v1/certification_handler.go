package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CertificationHandler struct {
	certificationUC domain.CertificationUsecase
}

func NewCertificationHandler(public *gin.RouterGroup, admin *gin.RouterGroup, certificationUC domain.CertificationUsecase) {
	handler := &CertificationHandler{certificationUC: certificationUC}

	public.GET("/certifications", handler.PublicList)

	adminCertifications := admin.Group("/certifications")
	{
		adminCertifications.GET("", handler.List)
		adminCertifications.POST("", handler.Create)
		adminCertifications.PUT("/:id", handler.Update)
		adminCertifications.DELETE("/:id", handler.Delete)
	}
}

// PublicListCertifications godoc
// @Summary      List certifications
// @Description  Date descending, localized
// @Tags         certifications
// @Produce      json
// @Param        lang  query     string  false  "Display language (en or jp)"
// @Success      200   {object}  response.Response
// @Router       /certifications [get]
func (h *CertificationHandler) PublicList(c *gin.Context) {
	views, err := h.certificationUC.ListPublic(c.Request.Context(), requestLanguage(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certification list", views)
}

// ListCertifications godoc
// @Summary      List certifications (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/certifications [get]
// @Security     BearerAuth
func (h *CertificationHandler) List(c *gin.Context) {
	certifications, err := h.certificationUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certification list", certifications)
}

// CreateCertification godoc
// @Summary      Create a certification
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        certification  body      domain.CertificationInput  true  "Certification JSON"
// @Success      201            {object}  response.Response
// @Failure      400            {object}  response.Response
// @Router       /admin/certifications [post]
// @Security     BearerAuth
func (h *CertificationHandler) Create(c *gin.Context) {
	var input domain.CertificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	certification, err := h.certificationUC.Create(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Certification created", certification)
}

// UpdateCertification godoc
// @Summary      Update a certification
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id             path      string                     true  "Certification ID"
// @Param        certification  body      domain.CertificationInput  true  "Certification JSON"
// @Success      200            {object}  response.Response
// @Failure      400            {object}  response.Response
// @Failure      404            {object}  response.Response
// @Router       /admin/certifications/{id} [put]
// @Security     BearerAuth
func (h *CertificationHandler) Update(c *gin.Context) {
	var input domain.CertificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	certification, err := h.certificationUC.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certification updated", certification)
}

// DeleteCertification godoc
// @Summary      Delete a certification
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Certification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/certifications/{id} [delete]
// @Security     BearerAuth
func (h *CertificationHandler) Delete(c *gin.Context) {
	if err := h.certificationUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certification deleted", nil)
}
