package services

import (
	"context"
	"encoding/json"

	"spendwise/internal/logger"
	"spendwise/internal/models"

	"gorm.io/gorm"
)

type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log appends an audit entry for userID. Entries without a user are dropped.
// Store failures are logged and swallowed; the request they belong to has
// already succeeded.
func (s *auditService) Log(ctx context.Context, userID, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	log := logger.Named("audit")
	if userID == "" {
		log.Warnw("dropping audit entry without user", "action", action, "resource_type", resourceType)
		return
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      encodeChanges(changes),
	}

	// Written even when the request context is already cancelled.
	if err := s.db.WithContext(context.WithoutCancel(ctx)).Create(entry).Error; err != nil {
		log.Errorw("failed to create audit log entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_id", resourceID,
		)
	}
}

func encodeChanges(changes map[string]any) string {
	if len(changes) == 0 {
		return ""
	}
	data, err := json.Marshal(changes)
	if err != nil {
		logger.Named("audit").Errorw("failed to marshal audit changes", "error", err)
		return "{}"
	}
	return string(data)
}
