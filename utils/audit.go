package utils

import (
	"encoding/json"
	"net"

	"rentease-server/models"
	"rentease-server/storage"

	"github.com/kataras/iris/v12"
)

// Audit records an admin action. Best effort: without a database connection
// nothing is written.
func Audit(ctx iris.Context, action, resourceType, resourceID string, detail interface{}) {
	if storage.DB == nil {
		return
	}

	var detailStr string
	if detail != nil {
		if d, err := json.Marshal(detail); err == nil {
			detailStr = string(d)
		}
	}

	var actorEmail string
	if at := CurrentUser(ctx); at != nil {
		actorEmail = at.Email
	}

	entry := models.AuditLog{
		ActorEmail:   actorEmail,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		DetailJSON:   detailStr,
		IPAddress:    clientIP(ctx),
	}
	storage.DB.Create(&entry)
}

func clientIP(ctx iris.Context) string {
	if ip := ctx.GetHeader("X-Forwarded-For"); ip != "" {
		return ip
	}
	ip, _, _ := net.SplitHostPort(ctx.RemoteAddr())
	return ip
}
