package domain

// Dashboard 看板聚合（患者 + 药品列表，单屏渲染用）
type Dashboard struct {
	Patient     Patient      `json:"patient"`
	Medications []Medication `json:"medications"`
}
