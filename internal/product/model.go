package product

import "time"

type Product struct {
	ID                string   `json:"id"`
	SellerID          int      `json:"seller_id"`
	SellerName        string   `json:"seller_name"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"`
	Category          string   `json:"category"`
	Image             string   `json:"image"`
	Materials         string   `json:"materials"`
	EcoCertifications []string `json:"eco_certifications"`
	// CarbonFootprint is the seller-declared kg CO2e per unit.
	CarbonFootprint   float64   `json:"carbon_footprint"`
	ProductionProcess *string   `json:"production_process,omitempty"`
	Stock             int       `json:"stock"`
	CreatedAt         time.Time `json:"created_at"`
}

type NewProductInput struct {
	Name              string
	Description       string
	Price             float64
	Category          string
	Image             string
	Materials         string
	EcoCertifications []string
	CarbonFootprint   float64
	ProductionProcess *string
	Stock             int
}
