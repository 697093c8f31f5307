package models

import (
	"time"
)

// Статусы жалобы. Других состояний жизненного цикла нет.
const (
	StatusPending = "Pending"
	StatusCleaned = "Cleaned"
)

type Complaint struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Area        string    `json:"area"`
	Description *string   `json:"description"`
	Latitude    *string   `json:"latitude"`
	Longitude   *string   `json:"longitude"`
	ImagePath   *string   `json:"image_path"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
