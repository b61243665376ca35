package services

import (
	"encoding/json"
	"sync"

	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	auditDB *gorm.DB
	auditMu sync.RWMutex
)

// InitAuditLogger sets the database used for audit records.
func InitAuditLogger(db *gorm.DB) {
	auditMu.Lock()
	defer auditMu.Unlock()
	auditDB = db
}

// LogAudit records an audited operation. Failures are logged and
// swallowed: auditing must never fail the audited request.
func LogAudit(module, action, message string, userID *uint, ip, userAgent string, extra map[string]interface{}) {
	auditMu.RLock()
	db := auditDB
	auditMu.RUnlock()
	if db == nil {
		return
	}

	var extraJSON string
	if len(extra) > 0 {
		if data, err := json.Marshal(extra); err == nil {
			extraJSON = string(data)
		}
	}

	entry := models.AuditLog{
		Module:    module,
		Action:    action,
		Message:   message,
		UserID:    userID,
		IP:        ip,
		UserAgent: userAgent,
		Extra:     extraJSON,
	}

	if err := db.Create(&entry).Error; err != nil {
		logger.Warn().Err(err).Str("module", module).Msg("failed to write audit log")
	}
}
