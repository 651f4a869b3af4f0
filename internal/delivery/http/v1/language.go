package v1

import (
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// requestLanguage resolves the display language for public reads:
// explicit ?lang= query first, then the lang preference cookie, then
// English.
func requestLanguage(c *gin.Context) domain.Language {
	if q := c.Query("lang"); q != "" {
		return domain.ParseLanguage(q)
	}
	if cookie, err := c.Cookie("lang"); err == nil && cookie != "" {
		return domain.ParseLanguage(cookie)
	}
	return domain.LanguageEnglish
}
