package services

import (
	"fmt"
	"time"

	"rentease-server/models"

	"github.com/google/uuid"
)

var seedFirstNames = []string{"Rahul", "Priya", "Amit", "Sneha", "Vikram", "Kavita", "Raj", "Meera", "Arjun", "Neha", "Sanjay", "Pooja"}
var seedLastNames = []string{"Sharma", "Patel", "Kumar", "Singh", "Verma", "Gupta", "Yadav", "Joshi", "Mehta", "Reddy", "Das", "Nair"}
var seedMonths = []string{"January", "February", "March", "April", "May", "June"}

// seed fills an empty store with the demo dataset: 20 rooms numbered from
// 101, the first 12 occupied, each occupied room carrying one tenant with two
// documents and six months of payment records. Callers hold the lock via
// NewDataStore before the store is shared.
func (ds *DataStore) seed() {
	roomTypes := []string{models.RoomTypeSingle, models.RoomTypeDouble, models.RoomTypeTriple}

	for i := 1; i <= 20; i++ {
		occupied := i <= 12
		roomType := roomTypes[i%3]
		isAC := i%4 == 0

		room := models.Room{
			ID:         uuid.NewString(),
			RoomNumber: 100 + i,
			Type:       roomType,
			IsAC:       isAC,
			Rent:       ds.settings.RentRates.RateFor(roomType, isAC),
			IsOccupied: occupied,
			Tenants:    []models.Tenant{},
		}

		if occupied {
			tokenMoney := 3000.0
			switch roomType {
			case models.RoomTypeDouble:
				tokenMoney = 5000
			case models.RoomTypeTriple:
				tokenMoney = 7000
			}
			verified := i%2 == 0
			uploadedAt := time.Date(2024, time.January, 15+i, 0, 0, 0, 0, time.UTC)

			tenant := models.Tenant{
				ID:            uuid.NewString(),
				FirstName:     seedFirstNames[i-1],
				LastName:      seedLastNames[i-1],
				Email:         fmt.Sprintf("tenant%d@gmail.com", i),
				Phone:         fmt.Sprintf("98765%05d", i),
				Landmark:      "Near Main Market",
				City:          "Mumbai",
				State:         "Maharashtra",
				Pincode:       "400001",
				AadhaarNumber: fmt.Sprintf("%04d %04d %04d", i, i, i),
				TokenMoney:    tokenMoney,
				RoomNumber:    100 + i,
				Documents: []models.Document{
					{ID: uuid.NewString(), Type: models.DocumentTypeAddressProof, Name: "Electricity Bill.pdf", URL: "#", Verified: verified, UploadedAt: uploadedAt},
					{ID: uuid.NewString(), Type: models.DocumentTypeIDProof, Name: "Aadhaar Card.pdf", URL: "#", Verified: verified, UploadedAt: uploadedAt},
				},
				DocumentsVerified: verified,
				JoinDate:          time.Date(2024, time.Month((i%12)+1), (i%28)+1, 0, 0, 0, 0, time.UTC),
				IsActive:          true,
			}
			ds.tenants = append(ds.tenants, tenant)
			room.Tenants = []models.Tenant{cloneTenant(tenant)}

			for idx, month := range seedMonths {
				prev := 100 + idx*50
				curr := prev + 30 + (i*7+idx*13)%40
				units := curr - prev
				elecAmount := float64(units) * ds.settings.ElectricityRate

				payment := models.Payment{
					ID:                uuid.NewString(),
					TenantID:          tenant.ID,
					TenantName:        tenant.FullName(),
					RoomNumber:        room.RoomNumber,
					Month:             month,
					Year:              2024,
					PreviousReading:   prev,
					CurrentReading:    curr,
					UnitsUsed:         units,
					ElectricityRate:   ds.settings.ElectricityRate,
					ElectricityAmount: elecAmount,
					Rent:              room.Rent,
					TotalAmount:       room.Rent + elecAmount,
					Status:            models.PaymentStatusPending,
				}
				if idx < 4 {
					paidDate := time.Date(2024, time.Month(idx+1), 5, 0, 0, 0, 0, time.UTC)
					payment.Status = models.PaymentStatusPaid
					payment.PaidDate = &paidDate
				}
				ds.payments = append(ds.payments, payment)
			}
		}

		ds.rooms = append(ds.rooms, room)
	}
}
