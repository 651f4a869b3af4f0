package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct{}

func NewSessionHandler(admin *gin.RouterGroup) {
	handler := &SessionHandler{}
	admin.GET("/session", handler.Get)
	admin.POST("/signout", handler.SignOut)
}

// GetSession godoc
// @Summary      Current admin session
// @Description  Returns the authenticated subject; the dashboard calls this on entry
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /admin/session [get]
// @Security     BearerAuth
func (h *SessionHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	response.Success(c, http.StatusOK, "Session active", gin.H{
		"user_id": userID,
		"email":   email,
	})
}

// SignOut godoc
// @Summary      Sign out
// @Description  Clears the auth cookie; the token itself stays valid until expiry
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/signout [post]
// @Security     BearerAuth
func (h *SessionHandler) SignOut(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, "Signed out", nil)
}
