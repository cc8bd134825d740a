package screens

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/CamiMaidana/FamilyMed/internal/api"
	"github.com/CamiMaidana/FamilyMed/internal/domain"
)

// MedicationForm 新建药品表单
// FirstDueAt left nil means the server starts the schedule at "now + interval".
type MedicationForm struct {
	Name          string
	IntervalHours int
	DoseQty       float64
	StockQty      float64
	FirstDueAt    *time.Time
	Notes         string
}

// DashboardController 患者看板页控制器
// The most stateful screen: every mutation is followed by a full dashboard
// reload, so the rendered state never diverges from server truth for longer
// than one round trip. A generation counter stamps each load; a response whose
// generation predates the newest issued load is discarded instead of
// clobbering newer state.
type DashboardController struct {
	api    *api.Client
	logger *zap.Logger

	PatientID string
	Data      *domain.Dashboard
	Err       string
	Loading   bool

	gen uint64
}

func NewDashboardController(client *api.Client, logger *zap.Logger) *DashboardController {
	return &DashboardController{api: client, logger: logger}
}

// SetPatient switches the screen to another patient and drops the stale view
// wholesale (no incremental merge).
func (c *DashboardController) SetPatient(patientID string) {
	if patientID == c.PatientID {
		return
	}
	c.PatientID = patientID
	c.Data = nil
	c.Err = ""
}

// Load 整体替换看板状态
func (c *DashboardController) Load(ctx context.Context) {
	gen := c.beginLoad()
	data, err := c.api.GetDashboard(ctx, c.PatientID)
	c.applyLoad(gen, data, err)
}

func (c *DashboardController) beginLoad() uint64 {
	c.gen++
	c.Err = ""
	c.Loading = true
	return c.gen
}

// applyLoad reconciles a load result. gen must be the value beginLoad returned
// for that request; stale generations are dropped.
func (c *DashboardController) applyLoad(gen uint64, data *domain.Dashboard, err error) {
	if gen != c.gen {
		c.logger.Debug("discarding stale dashboard response",
			zap.Uint64("gen", gen),
			zap.Uint64("latest", c.gen),
		)
		return
	}
	c.Loading = false
	if err != nil {
		c.Err = err.Error()
		return
	}
	c.Data = data
}

// Take 标记已服药，然后重载看板
// Stock decrement and next-due advance are observed via the reload, never
// computed here.
func (c *DashboardController) Take(ctx context.Context, medicationID string) error {
	if _, err := c.api.TakeMedication(ctx, medicationID); err != nil {
		return err
	}
	c.Load(ctx)
	return nil
}

// AddStock 补充库存，然后重载看板
// The quantity is validated before any request is issued.
func (c *DashboardController) AddStock(ctx context.Context, medicationID string, qty float64, note string) error {
	if qty <= 0 {
		return errors.New("quantity must be greater than zero")
	}
	if _, err := c.api.AddStock(ctx, medicationID, qty, note); err != nil {
		return err
	}
	c.Load(ctx)
	return nil
}

// Snooze 推迟提醒，然后重载看板
func (c *DashboardController) Snooze(ctx context.Context, medicationID string, minutes int) error {
	if minutes <= 0 {
		return errors.New("minutes must be greater than zero")
	}
	if _, err := c.api.SnoozeMedication(ctx, medicationID, minutes); err != nil {
		return err
	}
	c.Load(ctx)
	return nil
}

// AddContact 添加告警联系人，然后重载看板
func (c *DashboardController) AddContact(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	if _, err := c.api.AddContact(ctx, c.PatientID, email); err != nil {
		return err
	}
	c.Load(ctx)
	return nil
}

// RemoveContact removes a contact and reloads. The reload runs even when the
// call fails (e.g. the contact was already removed), so the list always ends
// up reflecting the server's current state.
func (c *DashboardController) RemoveContact(ctx context.Context, contactID string) error {
	err := c.api.RemoveContact(ctx, c.PatientID, contactID)
	c.Load(ctx)
	return err
}

// CreateMedication 创建药品，然后重载看板
func (c *DashboardController) CreateMedication(ctx context.Context, form MedicationForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return errors.New("name is required")
	}
	req := api.CreateMedicationRequest{
		PatientID:     c.PatientID,
		Name:          strings.TrimSpace(form.Name),
		IntervalHours: form.IntervalHours,
		DoseQty:       form.DoseQty,
		StockQty:      form.StockQty,
		FirstDueAt:    form.FirstDueAt,
		Notes:         form.Notes,
	}
	if _, err := c.api.CreateMedication(ctx, req); err != nil {
		return err
	}
	c.Load(ctx)
	return nil
}
