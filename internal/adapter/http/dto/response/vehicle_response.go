package response

import "garagejobs/internal/domain/entities"

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:            v.ID,
		Registration:  v.Registration,
		Brand:         v.Brand,
		Model:         v.Model,
		Type:          v.Type,
		Year:          v.Year,
		Color:         v.Color,
		ChassisNumber: v.ChassisNumber,
	}
}
