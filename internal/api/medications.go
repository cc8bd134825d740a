package api

import (
	"context"
	"net/http"
	"time"

	"github.com/CamiMaidana/FamilyMed/internal/domain"
)

// CreateMedicationRequest 创建药品请求
// FirstDueAt omitted means the server starts the schedule at "now + interval".
type CreateMedicationRequest struct {
	PatientID     string     `json:"patientId"`
	Name          string     `json:"name"`
	IntervalHours int        `json:"intervalHours"`
	DoseQty       float64    `json:"doseQty"`
	StockQty      float64    `json:"stockQty"`
	FirstDueAt    *time.Time `json:"firstDueAt,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// AddStockRequest 补充库存请求
type AddStockRequest struct {
	Qty  float64 `json:"qty"`
	Note string  `json:"note,omitempty"`
}

// CreateMedication 创建药品（POST /medications）
func (c *Client) CreateMedication(ctx context.Context, req CreateMedicationRequest) (*domain.Medication, error) {
	var out domain.Medication
	if err := c.do(ctx, http.MethodPost, "/medications", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMedication 更新药品（PATCH /medications/{id}）
func (c *Client) UpdateMedication(ctx context.Context, id string, patch map[string]any) (*domain.Medication, error) {
	var out domain.Medication
	if err := c.do(ctx, http.MethodPatch, "/medications/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TakeMedication 标记已服药（POST /medications/{id}/take）
// Stock decrement and next-due recomputation happen server-side only.
func (c *Client) TakeMedication(ctx context.Context, id string) (*domain.DoseLog, error) {
	var out domain.DoseLog
	if err := c.do(ctx, http.MethodPost, "/medications/"+id+"/take", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddStock 补充库存（POST /medications/{id}/stock/add）
func (c *Client) AddStock(ctx context.Context, id string, qty float64, note string) (*domain.Medication, error) {
	var out domain.Medication
	if err := c.do(ctx, http.MethodPost, "/medications/"+id+"/stock/add", AddStockRequest{Qty: qty, Note: note}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SnoozeMedication 推迟提醒（POST /medications/{id}/snooze）
// Only moves the due countdown; the underlying interval schedule is untouched.
func (c *Client) SnoozeMedication(ctx context.Context, id string, minutes int) (*domain.Medication, error) {
	body := map[string]int{"minutes": minutes}
	var out domain.Medication
	if err := c.do(ctx, http.MethodPost, "/medications/"+id+"/snooze", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UndoDoseLog 撤销一次服药记录（POST /dose-logs/{id}/undo）
func (c *Client) UndoDoseLog(ctx context.Context, doseLogID string) error {
	return c.do(ctx, http.MethodPost, "/dose-logs/"+doseLogID+"/undo", struct{}{}, nil)
}
