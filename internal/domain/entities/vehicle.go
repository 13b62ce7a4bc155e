package entities

import "time"

// Vehicle is the car master record, looked up by registration at intake so a
// returning vehicle is not duplicated.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Lookups by registration scan on the registration attribute.
type Vehicle struct {
	ID            string    `json:"id"`
	Registration  string    `json:"registration"`
	Brand         string    `json:"brand,omitempty"`
	Model         string    `json:"model,omitempty"`
	Type          string    `json:"type,omitempty"`
	Year          string    `json:"year,omitempty"`
	Color         string    `json:"color,omitempty"`
	ChassisNumber string    `json:"chassisNumber,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Customer owns one or more vehicles and pays the excess fee on insurance jobs.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsuranceCompany is referenced by jobs whose payment type is Insurance.
type InsuranceCompany struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
