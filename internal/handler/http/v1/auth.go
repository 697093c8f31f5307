package v1

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/waste_complaint_system/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	sessionCookie = "session_token"
	flashCookie   = "flash"
)

// SessionAuthMiddleware - middleware, пускающий на защищённые маршруты только
// аутентифицированного администратора. Проверка сессии выполняется до любых
// обращений к хранилищу жалоб или файлам.
func SessionAuthMiddleware(auth service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			log.Warn("Session cookie missing on protected route")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		ok, err := auth.Check(c.Request.Context(), token)
		if err != nil {
			log.WithError(err).Error("Failed to check session")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if !ok {
			log.Warn("Invalid or expired session on protected route")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

// setFlash сохраняет одноразовое сообщение для следующей страницы.
// Сообщение живёт в короткоживущей куке и снимается при первом рендере.
func setFlash(c *gin.Context, category, message string) {
	value := url.QueryEscape(category + "|" + message)
	c.SetCookie(flashCookie, value, 60, "/", "", false, true)
}

// popFlash читает и сразу очищает флеш-сообщение
func popFlash(c *gin.Context) (message, category string) {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return "", ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", ""
	}

	category, message, found := strings.Cut(decoded, "|")
	if !found {
		return decoded, "info"
	}
	return message, category
}
