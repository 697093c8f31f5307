package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/waste_complaint_system/internal/config"
	"github.com/shenikar/waste_complaint_system/internal/models"
	"github.com/shenikar/waste_complaint_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Uploader определяет контракт хранилища изображений, нужный HTTP-слою
type Uploader interface {
	Save(filename string, r io.Reader) (string, error)
	Resolve(ref string) (string, error)
}

type Handler struct {
	complaintService service.ComplaintService
	authService      service.AuthService
	uploads          Uploader
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(complaintService service.ComplaintService, authService service.AuthService, uploads Uploader, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		complaintService: complaintService,
		authService:      authService,
		uploads:          uploads,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// isJSONRequest различает JSON-клиентов (мобильное приложение) и
// браузерные формы. Ветвление намеренное: оба клиента ходят на одни и те же
// маршруты.
func isJSONRequest(c *gin.Context) bool {
	return c.ContentType() == "application/json"
}

// @Summary Get all complaints
// @Description Get every complaint as JSON, newest first. Used by the mobile app.
// @Tags Complaints
// @Produce json
// @Success 200 {object} ListComplaintsResponse
// @Failure 500 {object} StatusResponse
// @Router /complaints [get]
func (h *Handler) apiListComplaints(c *gin.Context) {
	log := h.logger.WithField("method", "apiListComplaints")

	complaints, err := h.complaintService.ListComplaints(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list complaints from service")
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Database error occurred"})
		return
	}

	c.JSON(http.StatusOK, ListComplaintsResponse{
		Success: true,
		Data:    ModelsToComplaintResponses(complaints),
		Count:   len(complaints),
	})
}

// @Summary Submit a complaint (API)
// @Description Submit a new waste complaint. Accepts a JSON body or multipart form data with an optional image file.
// @Tags Complaints
// @Accept json
// @Accept mpfd
// @Produce json
// @Param complaint body SubmitComplaintRequest true "Complaint submission request"
// @Success 200 {object} SubmitComplaintResponse
// @Failure 400 {object} StatusResponse
// @Failure 500 {object} SubmitComplaintResponse
// @Router /api/submit_complaint [post]
func (h *Handler) apiSubmitComplaint(c *gin.Context) {
	log := h.logger.WithField("method", "apiSubmitComplaint")

	var complaint *models.Complaint

	if isJSONRequest(c) {
		var input SubmitComplaintRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "invalid request body"})
			return
		}

		if err := h.validate.Struct(input); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: err.Error()})
			return
		}

		// Для JSON-клиента изображение должно быть загружено заранее,
		// image_path передаётся как есть
		complaint = DTOToComplaintModel(input)
	} else {
		imageRef, err := h.saveUploadedImage(c)
		if err != nil {
			log.WithError(err).Error("Failed to save uploaded image")
			c.JSON(http.StatusInternalServerError, SubmitComplaintResponse{Success: false, Message: "Failed to save uploaded image"})
			return
		}

		complaint = h.complaintFromForm(c, imageRef)
	}

	if err := h.complaintService.SubmitComplaint(c.Request.Context(), complaint); err != nil {
		log.WithError(err).Error("Failed to submit complaint in service")
		c.JSON(http.StatusInternalServerError, SubmitComplaintResponse{Success: false, Message: "Error submitting complaint"})
		return
	}

	c.JSON(http.StatusOK, SubmitComplaintResponse{
		Success:     true,
		Message:     "Complaint submitted successfully",
		ComplaintID: complaint.ID,
	})
}

// @Summary Update complaint status
// @Description Overwrite the status of a complaint. Accepts a JSON body or form data; browser callers are redirected back to the dashboard.
// @Tags Complaints
// @Accept json
// @Produce json
// @Param request body UpdateStatusRequest true "Status update request"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /update_status [post]
func (h *Handler) updateStatus(c *gin.Context) {
	log := h.logger.WithField("method", "updateStatus")

	if isJSONRequest(c) {
		var input UpdateStatusRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "invalid request body"})
			return
		}

		if err := h.validate.Struct(input); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: err.Error()})
			return
		}

		// Несуществующий id - не ошибка: ноль затронутых строк
		// считается успешным исходом, как и в обновлении через форму
		if _, err := h.complaintService.UpdateStatus(c.Request.Context(), input.ID, input.Status); err != nil {
			log.WithError(err).Error("Failed to update status in service")
			c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Database error occurred"})
			return
		}

		c.JSON(http.StatusOK, StatusResponse{Success: true, Message: "Status updated successfully"})
		return
	}

	var input struct {
		ID     int64  `form:"id"`
		Status string `form:"status"`
	}
	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		setFlash(c, "error", "Error updating status.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if _, err := h.complaintService.UpdateStatus(c.Request.Context(), input.ID, input.Status); err != nil {
		log.WithError(err).Error("Failed to update status in service")
		setFlash(c, "error", "Error updating status.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	setFlash(c, "success", "Status updated successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /healthz [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// saveUploadedImage сохраняет приложенный к multipart-запросу файл, если он
// есть и его расширение допустимо. Отсутствие файла или неподходящее
// расширение - не ошибка, жалоба принимается без изображения.
func (h *Handler) saveUploadedImage(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil || fileHeader.Filename == "" {
		return "", nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return h.uploads.Save(fileHeader.Filename, f)
}

// complaintFromForm собирает модель жалобы из полей формы.
// Пустые необязательные поля становятся NULL.
func (h *Handler) complaintFromForm(c *gin.Context, imageRef string) *models.Complaint {
	complaint := &models.Complaint{
		Name:        c.PostForm("name"),
		Area:        c.PostForm("area"),
		Description: formValue(c, "description"),
		Latitude:    formValue(c, "latitude"),
		Longitude:   formValue(c, "longitude"),
	}
	if imageRef != "" {
		complaint.ImagePath = &imageRef
	}
	return complaint
}

func formValue(c *gin.Context, key string) *string {
	v := c.PostForm(key)
	if v == "" {
		return nil
	}
	return &v
}
