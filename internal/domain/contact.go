package domain

// Contact 告警联系人（邮件）
type Contact struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Enabled bool   `json:"enabled"`
}
