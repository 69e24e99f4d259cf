// Package masterdata holds the reference records the planning screens pick
// from: customers, vendors, products and workstations.
package masterdata

import "time"

// Customer is a buying organization.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Division  string    `json:"division"`
	CreatedAt time.Time `json:"created_at"`
}

// Vendor is a supplier of base pipe, consumables or services.
type Vendor struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	ContactPerson string    `json:"contactPerson"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
}

// Product is a sellable catalog entry referenced from NMR line items.
type Product struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	UOM       string    `json:"uom"`
	CreatedAt time.Time `json:"created_at"`
}

// Workstation is a shop-floor station.
type Workstation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
