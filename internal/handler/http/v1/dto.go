package v1

// SubmitComplaintRequest DTO для подачи жалобы через JSON API.
// Обязательность name и area не проверяется на этом уровне: отсутствующие
// поля доходят до NOT NULL ограничений базы. Здесь только ограничения длины,
// зеркалящие ширину колонок.
// @Description DTO для подачи жалобы
type SubmitComplaintRequest struct {
	Name        string  `json:"name" validate:"max=100"`
	Area        string  `json:"area" validate:"max=100"`
	Description *string `json:"description"`
	Latitude    *string `json:"latitude" validate:"omitempty,max=50"`
	Longitude   *string `json:"longitude" validate:"omitempty,max=50"`
	ImagePath   *string `json:"image_path" validate:"omitempty,max=255"`
}

// UpdateStatusRequest DTO для обновления статуса жалобы.
// Значение статуса намеренно не проверяется по перечислению.
// @Description DTO для обновления статуса жалобы
type UpdateStatusRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status" validate:"max=50"`
}

// LoginRequest DTO для входа администратора
// @Description DTO для входа администратора
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// ComplaintResponse DTO для ответа с информацией о жалобе
// @Description DTO для ответа с информацией о жалобе
type ComplaintResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Area        string  `json:"area"`
	Description *string `json:"description"`
	Latitude    *string `json:"latitude"`
	Longitude   *string `json:"longitude"`
	ImagePath   *string `json:"image_path"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

// ListComplaintsResponse DTO для ответа со списком всех жалоб
// @Description DTO для ответа со списком всех жалоб
type ListComplaintsResponse struct {
	Success bool                 `json:"success"`
	Data    []*ComplaintResponse `json:"data"`
	Count   int                  `json:"count"`
}

// SubmitComplaintResponse DTO для ответа на подачу жалобы
// @Description DTO для ответа на подачу жалобы
type SubmitComplaintResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ComplaintID int64  `json:"complaint_id,omitempty"`
}

// StatusResponse общий конверт ответа для JSON-клиентов
// @Description Общий конверт ответа
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StatsResponse DTO для ответа со сводными счётчиками
// @Description DTO для ответа со сводными счётчиками
type StatsResponse struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Cleaned int `json:"cleaned"`
}
