package handlers

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/hartmannbarbearia/booking-api/internal/models"
)

func writeAudit(
	db *gorm.DB,
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	meta any,
) {

	var payload string
	if meta != nil {
		if b, err := json.Marshal(meta); err == nil {
			payload = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: payload,
	}

	db.Create(&entry)
}
