package v1

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// RegisterRoutes регистрирует все маршруты приложения.
// Пути исторические: их потребляет уже выпущенный мобильный клиент,
// поэтому версии в URL нет.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	requireAuth := SessionAuthMiddleware(h.authService, h.logger)

	// Публичные страницы и подача жалобы
	router.GET("/", h.index)
	router.POST("/submit_complaint", h.submitComplaint)

	// Вход и выход администратора
	router.GET("/login", h.loginPage)
	router.POST("/login", h.login)
	router.GET("/logout", h.logout)

	// Панель муниципалитета (только для аутентифицированного администратора)
	router.GET("/admin", requireAuth, h.adminDashboard)
	router.POST("/delete_complaint/:id", requireAuth, h.deleteComplaint)

	// Обновление статуса доступно и форме панели, и мобильному клиенту
	router.POST("/update_status", h.updateStatus)

	// JSON API для мобильного клиента
	router.GET("/complaints", h.apiListComplaints)
	router.POST("/api/submit_complaint", h.apiSubmitComplaint)

	// Отдача загруженных изображений
	router.GET("/uploads/:filename", h.serveUpload)

	// Маршрут Health-check
	router.GET("/healthz", h.healthCheck)
}
