package api

import (
	"context"
	"net/http"

	"github.com/CamiMaidana/FamilyMed/internal/domain"
)

// CreatePatientRequest 创建患者请求
type CreatePatientRequest struct {
	DisplayName string `json:"displayName"`
	Timezone    string `json:"timezone,omitempty"`
}

// ListPatients 患者列表（GET /patients）
func (c *Client) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	var out []domain.Patient
	if err := c.do(ctx, http.MethodGet, "/patients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePatient 创建患者（POST /patients）
func (c *Client) CreatePatient(ctx context.Context, req CreatePatientRequest) (*domain.Patient, error) {
	var out domain.Patient
	if err := c.do(ctx, http.MethodPost, "/patients", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPatient 获取单个患者（GET /patients/{id}）
func (c *Client) GetPatient(ctx context.Context, id string) (*domain.Patient, error) {
	var out domain.Patient
	if err := c.do(ctx, http.MethodGet, "/patients/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePatient 更新患者（PATCH /patients/{id}）
// patch carries only the fields to change, e.g. {"displayName": "..."}.
func (c *Client) UpdatePatient(ctx context.Context, id string, patch map[string]any) (*domain.Patient, error) {
	var out domain.Patient
	if err := c.do(ctx, http.MethodPatch, "/patients/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddContact 添加告警联系人（POST /patients/{id}/contacts）
func (c *Client) AddContact(ctx context.Context, patientID, email string) (*domain.Contact, error) {
	body := map[string]string{"email": email}
	var out domain.Contact
	if err := c.do(ctx, http.MethodPost, "/patients/"+patientID+"/contacts", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveContact 删除告警联系人（DELETE /patients/{id}/contacts/{contactId}）
func (c *Client) RemoveContact(ctx context.Context, patientID, contactID string) error {
	return c.do(ctx, http.MethodDelete, "/patients/"+patientID+"/contacts/"+contactID, nil, nil)
}

// GetDashboard 获取看板聚合（GET /patients/{id}/dashboard）
func (c *Client) GetDashboard(ctx context.Context, patientID string) (*domain.Dashboard, error) {
	var out domain.Dashboard
	if err := c.do(ctx, http.MethodGet, "/patients/"+patientID+"/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
