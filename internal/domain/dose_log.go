package domain

import "time"

// DoseLog 服务端的单次服药记录（可撤销）
type DoseLog struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medicationId"`
	TakenAt      time.Time `json:"takenAt"`
}
