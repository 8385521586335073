package services

import (
	"fmt"
	"net/url"

	"rentease-server/utils"
)

// ReminderService composes pre-filled WhatsApp messages for pending
// payments. It only builds the handoff link; nothing is dispatched and no
// delivery is confirmed.
type ReminderService struct{}

func NewReminderService() *ReminderService {
	return &ReminderService{}
}

type WhatsAppReminder struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

func (rs *ReminderService) BuildWhatsAppReminder(phone, tenantName string, roomNumber int, month string, amount float64) WhatsAppReminder {
	message := fmt.Sprintf(
		"Hello %s,\n\nYour rent payment for Room #%d (%s) is pending.\n\nTotal Amount: ₹%.0f\n\nPlease make the payment at the earliest.\nThank you.",
		tenantName, roomNumber, month, amount,
	)

	normalized := utils.NormalizePhoneNumber(phone)
	link := "https://wa.me/" + normalized + "?text=" + url.QueryEscape(message)

	return WhatsAppReminder{Phone: normalized, Message: message, URL: link}
}
