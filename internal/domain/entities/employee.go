package entities

// Employee checks off workflow steps at a station. Only active employees may
// be assigned to a step.
type Employee struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"isActive"`
}
