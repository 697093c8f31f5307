package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/waste_complaint_system/internal/service"
)

// index отображает форму подачи жалобы для граждан
func (h *Handler) index(c *gin.Context) {
	message, category := popFlash(c)
	c.HTML(http.StatusOK, "report.html", gin.H{
		"FlashMessage":  message,
		"FlashCategory": category,
	})
}

// submitComplaint обрабатывает подачу жалобы из браузерной формы
func (h *Handler) submitComplaint(c *gin.Context) {
	log := h.logger.WithField("method", "submitComplaint")

	imageRef, err := h.saveUploadedImage(c)
	if err != nil {
		log.WithError(err).Error("Failed to save uploaded image")
		setFlash(c, "error", "Error submitting complaint. Please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	complaint := h.complaintFromForm(c, imageRef)
	if err := h.complaintService.SubmitComplaint(c.Request.Context(), complaint); err != nil {
		log.WithError(err).Error("Failed to submit complaint in service")
		setFlash(c, "error", "Error submitting complaint. Please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	setFlash(c, "success", "Complaint submitted successfully!")
	c.Redirect(http.StatusFound, "/")
}

// adminDashboard отображает панель муниципалитета: все жалобы и счётчики
func (h *Handler) adminDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "adminDashboard")
	message, category := popFlash(c)

	complaints, err := h.complaintService.ListComplaints(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list complaints from service")
		c.HTML(http.StatusOK, "admin.html", gin.H{
			"Error": "Database error occurred",
		})
		return
	}

	stats, err := h.complaintService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.HTML(http.StatusOK, "admin.html", gin.H{
			"Error": "Database error occurred",
		})
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Complaints":    ModelsToComplaintResponses(complaints),
		"Stats":         stats,
		"FlashMessage":  message,
		"FlashCategory": category,
	})
}

// deleteComplaint удаляет жалобу вместе с файлом изображения
func (h *Handler) deleteComplaint(c *gin.Context) {
	log := h.logger.WithField("method", "deleteComplaint")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		setFlash(c, "error", "Invalid complaint ID.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	deleted, err := h.complaintService.DeleteComplaint(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to delete complaint in service")
		setFlash(c, "error", "Error deleting complaint.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if !deleted {
		setFlash(c, "error", "Complaint not found.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	setFlash(c, "success", "Complaint deleted successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

// serveUpload отдаёт сохранённое изображение жалобы побайтно
func (h *Handler) serveUpload(c *gin.Context) {
	path, err := h.uploads.Resolve(c.Param("filename"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(path)
}

// loginPage отображает форму входа администратора
func (h *Handler) loginPage(c *gin.Context) {
	message, category := popFlash(c)
	c.HTML(http.StatusOK, "login.html", gin.H{
		"FlashMessage":  message,
		"FlashCategory": category,
	})
}

// login устанавливает сессию администратора.
// JSON-клиенты получают конверт с токеном в куке, браузер - редирект.
func (h *Handler) login(c *gin.Context) {
	log := h.logger.WithField("method", "login")
	isJSON := isJSONRequest(c)

	var input LoginRequest
	if isJSON {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "invalid request body"})
			return
		}
	} else {
		if err := c.ShouldBind(&input); err != nil {
			log.WithError(err).Warn("Failed to bind form")
			setFlash(c, "error", "Invalid username or password.")
			c.Redirect(http.StatusFound, "/login")
			return
		}
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		if isJSON {
			c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: err.Error()})
			return
		}
		setFlash(c, "error", "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := h.authService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Одно и то же сообщение для любого несовпадения,
			// без уточнения поля
			if isJSON {
				c.JSON(http.StatusUnauthorized, StatusResponse{Success: false, Message: "Invalid username or password"})
				return
			}
			setFlash(c, "error", "Invalid username or password.")
			c.Redirect(http.StatusFound, "/login")
			return
		}

		log.WithError(err).Error("Failed to login in service")
		if isJSON {
			c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "internal server error"})
			return
		}
		setFlash(c, "error", "An unexpected error occurred.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.SetCookie(sessionCookie, token, int(h.cfg.SessionTTL.Seconds()), "/", "", h.cfg.SessionSecure, true)

	if isJSON {
		c.JSON(http.StatusOK, StatusResponse{Success: true, Message: "Logged in successfully"})
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// logout безусловно очищает сессию и куку
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")

	token, err := c.Cookie(sessionCookie)
	if err == nil && token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			log.WithError(err).Error("Failed to logout in service")
		}
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", h.cfg.SessionSecure, true)
	setFlash(c, "success", "Logged out successfully.")
	c.Redirect(http.StatusFound, "/login")
}
