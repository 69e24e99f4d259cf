package project

import "time"

// Project is the top-level planning aggregate. Its identifier is sequential
// (AS-CL-NNN) and counter values are never reused after deletion.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ProjectType string    `json:"projectType"`
	Date        string    `json:"date"`
	Plant       string    `json:"plant"`
	Customer    string    `json:"customer"`
	EndUser     string    `json:"endUser"`
	ClientName  string    `json:"clientName"`
	CreatedAt   time.Time `json:"created_at"`
}

// DeriveClientName builds the display name shown on commercial documents:
// customer and end user joined with a slash.
func DeriveClientName(customer, endUser string) string {
	return customer + " / " + endUser
}
