package screens

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/CamiMaidana/FamilyMed/internal/api"
	"github.com/CamiMaidana/FamilyMed/internal/domain"
)

// PatientsController 患者列表页控制器
type PatientsController struct {
	api    *api.Client
	logger *zap.Logger

	Patients   []domain.Patient
	CreateName string
	Err        string
}

func NewPatientsController(client *api.Client, logger *zap.Logger) *PatientsController {
	return &PatientsController{api: client, logger: logger}
}

// Load 拉取患者列表（失败 → 内联横幅，保留已渲染内容）
func (c *PatientsController) Load(ctx context.Context) {
	c.Err = ""
	patients, err := c.api.ListPatients(ctx)
	if err != nil {
		c.Err = err.Error()
		return
	}
	c.Patients = patients
}

// Create posts the new patient then refetches the full list; there is no
// optimistic update. A creation failure surfaces in the same inline banner
// without touching the rendered list.
func (c *PatientsController) Create(ctx context.Context) {
	name := strings.TrimSpace(c.CreateName)
	if name == "" {
		return
	}
	created, err := c.api.CreatePatient(ctx, api.CreatePatientRequest{DisplayName: name})
	if err != nil {
		c.Err = err.Error()
		return
	}
	c.logger.Info("patient created", zap.String("patient_id", created.ID))
	c.CreateName = ""
	c.Load(ctx)
}
