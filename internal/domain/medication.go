package domain

import "time"

// Medication 药品（服务端权威状态的只读副本）
// Stock and next-due only change server-side as a side effect of "take";
// the client never does this arithmetic locally.
type Medication struct {
	ID            string     `json:"id"`
	PatientID     string     `json:"patientId"`
	Name          string     `json:"name"`
	IntervalHours int        `json:"intervalHours"`
	DoseQty       float64    `json:"doseQty"`
	StockQty      float64    `json:"stockQty"`
	LastTakenAt   *time.Time `json:"lastTakenAt,omitempty"`
	NextDueAt     *time.Time `json:"nextDueAt,omitempty"`
	SnoozedUntil  *time.Time `json:"snoozedUntil,omitempty"`
	DaysRemaining int        `json:"daysRemaining"`
	Notes         string     `json:"notes,omitempty"`
}
