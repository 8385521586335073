package models

import "time"

// TenantHistory is an immutable snapshot written once when a tenant moves out.
type TenantHistory struct {
	ID            string    `json:"id"`
	TenantName    string    `json:"tenantName"`
	RoomNumber    int       `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	IsAC          bool      `json:"isAC"`
	JoinDate      time.Time `json:"joinDate"`
	LeaveDate     time.Time `json:"leaveDate"`
	TotalRentPaid float64   `json:"totalRentPaid"`
	Facilities    []string  `json:"facilities"`
}
