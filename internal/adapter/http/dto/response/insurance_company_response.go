package response

import "garagejobs/internal/domain/entities"

type InsuranceCompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func FromInsuranceCompanies(companies []entities.InsuranceCompany) []InsuranceCompanyResponse {
	out := make([]InsuranceCompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, InsuranceCompanyResponse{ID: c.ID, Name: c.Name})
	}
	return out
}
