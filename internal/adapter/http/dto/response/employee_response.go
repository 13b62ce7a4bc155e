package response

import "garagejobs/internal/domain/entities"

type EmployeeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"isActive"`
}

type EmployeesListResponse struct {
	Data  []EmployeeResponse `json:"data"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Total int                `json:"total"`
}

func FromEmployees(employees []entities.Employee, page, limit, total int) EmployeesListResponse {
	data := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		data = append(data, EmployeeResponse{
			ID:       e.ID,
			Name:     e.Name,
			Role:     e.Role,
			Phone:    e.Phone,
			IsActive: e.IsActive,
		})
	}
	return EmployeesListResponse{Data: data, Page: page, Limit: limit, Total: total}
}
