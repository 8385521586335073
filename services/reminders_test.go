package services

import (
	"strings"
	"testing"
)

func TestBuildWhatsAppReminder(t *testing.T) {
	rs := NewReminderService()

	reminder := rs.BuildWhatsAppReminder("98765 43210", "Asha Iyer", 201, "May", 11240)

	if reminder.Phone != "919876543210" {
		t.Fatalf("expected normalized phone 919876543210, got %q", reminder.Phone)
	}
	if !strings.HasPrefix(reminder.URL, "https://wa.me/919876543210?text=") {
		t.Fatalf("unexpected link %q", reminder.URL)
	}
	for _, want := range []string{"Asha Iyer", "Room #201", "May", "₹11240"} {
		if !strings.Contains(reminder.Message, want) {
			t.Fatalf("message missing %q:\n%s", want, reminder.Message)
		}
	}
}
