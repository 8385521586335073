package models

import "time"

type Tenant struct {
	ID                string     `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Landmark          string     `json:"landmark"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	Pincode           string     `json:"pincode"`
	AadhaarNumber     string     `json:"aadhaarNumber"`
	TokenMoney        float64    `json:"tokenMoney"`
	RoomNumber        int        `json:"roomNumber"`
	Documents         []Document `json:"documents"`
	DocumentsVerified bool       `json:"documentsVerified"`
	JoinDate          time.Time  `json:"joinDate"`
	IsActive          bool       `json:"isActive"`
}

func (t *Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}
