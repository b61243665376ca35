package services

import (
	"fmt"
	"time"

	"github.com/renohub/backend/internal/config"
	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var maintenanceCron *cron.Cron

// StartMaintenanceScheduler runs the nightly maintenance jobs: expiring
// stale email invites and reminding residents about unactioned SOWs.
func StartMaintenanceScheduler(db *gorm.DB, cfg *config.Config, notifier *NotificationService) {
	if maintenanceCron != nil {
		return
	}

	maintenanceCron = cron.New()

	// 03:00 — drop pending invites past their TTL
	maintenanceCron.AddFunc("0 3 * * *", func() {
		expireStaleInvites(db, cfg.Invite.TTLHours)
	})

	// 09:00 — remind owners of SOWs waiting on a decision
	maintenanceCron.AddFunc("0 9 * * *", func() {
		remindStaleSOWs(db, notifier)
	})

	maintenanceCron.Start()
	logger.Infof("[Scheduler] Maintenance scheduler started (invite TTL: %dh)", cfg.Invite.TTLHours)
}

// StopMaintenanceScheduler stops the maintenance cron.
func StopMaintenanceScheduler() {
	if maintenanceCron != nil {
		maintenanceCron.Stop()
		maintenanceCron = nil
	}
}

// expireStaleInvites deletes email-only memberships that were never
// claimed within the TTL.
func expireStaleInvites(db *gorm.DB, ttlHours int) {
	if ttlHours <= 0 {
		return
	}

	cutoff := time.Now().Add(-time.Duration(ttlHours) * time.Hour)
	result := db.Where("user_id IS NULL AND created_at < ?", cutoff).Delete(&models.TeamMember{})
	if result.Error != nil {
		logger.Warn().Err(result.Error).Msg("invite expiry sweep failed")
		return
	}
	if result.RowsAffected > 0 {
		logger.Infof("[Scheduler] Expired %d stale invites", result.RowsAffected)
	}
}

// remindStaleSOWs notifies project owners about SOWs sitting in
// submitted for more than 48 hours.
func remindStaleSOWs(db *gorm.DB, notifier *NotificationService) {
	cutoff := time.Now().Add(-48 * time.Hour)

	var sows []models.StatementOfWork
	if err := db.Where("status = ? AND updated_at < ?", models.SOWStatusSubmitted, cutoff).Find(&sows).Error; err != nil {
		logger.Warn().Err(err).Msg("stale SOW sweep failed")
		return
	}

	for _, sow := range sows {
		var project models.Project
		if err := db.Select("id", "user_id", "title").First(&project, sow.ProjectID).Error; err != nil {
			continue
		}

		sowID := sow.ID
		projectID := sow.ProjectID
		notifier.Notify(&NotificationTask{
			UserID:    project.UserID,
			Type:      "sow_reminder",
			Title:     "Statement of work awaiting your decision",
			Body:      fmt.Sprintf("%q on project %q is still waiting for approval.", sow.Title, project.Title),
			ProjectID: &projectID,
			SOWID:     &sowID,
		})
	}
}
