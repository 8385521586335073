package routes

import "rentease-server/services"

var (
	data      *services.DataStore
	auth      *services.AuthService
	reminders *services.ReminderService
)

// Initialize wires the shared services into the handler package. Must be
// called before any route is served.
func Initialize(ds *services.DataStore, as *services.AuthService, rs *services.ReminderService) {
	data = ds
	auth = as
	reminders = rs
}
