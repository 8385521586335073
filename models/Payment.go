package models

import "time"

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// Payment snapshots the tenant name and room number at creation time; later
// tenant or room edits do not rewrite existing payment records.
type Payment struct {
	ID                string     `json:"id"`
	TenantID          string     `json:"tenantId"`
	TenantName        string     `json:"tenantName"`
	RoomNumber        int        `json:"roomNumber"`
	Month             string     `json:"month"`
	Year              int        `json:"year"`
	PreviousReading   int        `json:"previousReading"`
	CurrentReading    int        `json:"currentReading"`
	UnitsUsed         int        `json:"unitsUsed"`
	ElectricityRate   float64    `json:"electricityRate"`
	ElectricityAmount float64    `json:"electricityAmount"`
	Rent              float64    `json:"rent"`
	TotalAmount       float64    `json:"totalAmount"`
	Status            string     `json:"status"` // paid, pending
	PaidDate          *time.Time `json:"paidDate,omitempty"`
	ReminderSent      bool       `json:"reminderSent"`
}
