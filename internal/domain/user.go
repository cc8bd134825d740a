package domain

// User 登录用户（服务端返回的只读副本）
// The caregiver account; the group is the family the account administers.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	GroupID   string `json:"groupId,omitempty"`
	GroupName string `json:"groupName,omitempty"`
}
