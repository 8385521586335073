package routes

import (
	"sort"
	"strconv"
	"time"

	"rentease-server/models"
	"rentease-server/storage"
	"rentease-server/utils"

	"github.com/kataras/iris/v12"
)

// GET /api/admin/stats
// The landing-page counters: occupancy, active tenants, the pending payment
// backlog and this month's collection.
func GetDashboardStats(ctx iris.Context) {
	rooms := data.Rooms()
	tenants := data.Tenants()
	payments := data.Payments()
	settings := data.Settings()

	occupied := 0
	for _, r := range rooms {
		if r.IsOccupied {
			occupied++
		}
	}

	activeTenants := 0
	pendingVerifications := 0
	for _, t := range tenants {
		if t.IsActive {
			activeTenants++
			if !t.DocumentsVerified {
				pendingVerifications++
			}
		}
	}

	currentMonth := time.Now().Format("January")
	currentYear := time.Now().Year()
	pendingCount := 0
	var pendingAmount, monthlyCollection float64
	for _, p := range payments {
		switch p.Status {
		case models.PaymentStatusPending:
			pendingCount++
			pendingAmount += p.TotalAmount
		case models.PaymentStatusPaid:
			if p.Month == currentMonth && p.Year == currentYear {
				monthlyCollection += p.TotalAmount
			}
		}
	}

	ctx.JSON(iris.Map{
		"totalRooms":           settings.TotalRooms,
		"occupiedRooms":        occupied,
		"vacantRooms":          len(rooms) - occupied,
		"activeTenants":        activeTenants,
		"pendingPayments":      pendingCount,
		"pendingAmount":        pendingAmount,
		"monthlyCollection":    monthlyCollection,
		"pendingVerifications": pendingVerifications,
	})
}

type monthlyReport struct {
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	Collected   float64 `json:"collected"`
	Pending     float64 `json:"pending"`
	Electricity float64 `json:"electricity"`
	UnitsUsed   int     `json:"unitsUsed"`
	Payments    int     `json:"payments"`
}

// GET /api/admin/reports
// Per-month revenue breakdown plus overall occupancy, sorted by recency.
func GetReports(ctx iris.Context) {
	payments := data.Payments()
	rooms := data.Rooms()
	settings := data.Settings()

	byMonth := make(map[string]*monthlyReport)
	for _, p := range payments {
		key := p.Month + "|" + strconv.Itoa(p.Year)
		report, ok := byMonth[key]
		if !ok {
			report = &monthlyReport{Month: p.Month, Year: p.Year}
			byMonth[key] = report
		}
		report.Payments++
		report.Electricity += p.ElectricityAmount
		report.UnitsUsed += p.UnitsUsed
		if p.Status == models.PaymentStatusPaid {
			report.Collected += p.TotalAmount
		} else {
			report.Pending += p.TotalAmount
		}
	}

	months := make([]monthlyReport, 0, len(byMonth))
	for _, r := range byMonth {
		months = append(months, *r)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year > months[j].Year
		}
		return monthIndex(months[i].Month) > monthIndex(months[j].Month)
	})

	occupied := 0
	for _, r := range rooms {
		if r.IsOccupied {
			occupied++
		}
	}
	occupancyRate := 0.0
	if len(rooms) > 0 {
		occupancyRate = float64(occupied) / float64(len(rooms)) * 100
	}

	ctx.JSON(iris.Map{
		"months":        months,
		"occupancyRate": occupancyRate,
		"totalRooms":    settings.TotalRooms,
		"historyCount":  len(data.History()),
	})
}

// GET /api/admin/activity
// Recent audit entries, newest first. Empty without a database connection.
func GetAdminActivity(ctx iris.Context) {
	if storage.DB == nil {
		ctx.JSON(iris.Map{"data": []models.AuditLog{}, "meta": iris.Map{}, "links": iris.Map{}})
		return
	}

	var entries []models.AuditLog
	result := storage.DB.Order("created_at desc").Limit(100).Find(&entries)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(iris.Map{"data": entries, "meta": iris.Map{}, "links": iris.Map{}})
}

func monthIndex(name string) int {
	months := []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	for i, m := range months {
		if m == name {
			return i
		}
	}
	return -1
}
