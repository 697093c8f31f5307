package models

// Stats — сводные счётчики для панели муниципалитета
type Stats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Cleaned int `json:"cleaned"`
}
