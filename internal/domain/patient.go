package domain

// Patient 患者（家庭成员）
// Fetched per list/detail request; never cached past the current screen.
type Patient struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Timezone    string    `json:"timezone,omitempty"`
	Contacts    []Contact `json:"contacts,omitempty"`
}
