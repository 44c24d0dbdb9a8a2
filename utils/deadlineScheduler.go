package utils

import (
	"eduvest/database"
	"eduvest/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeDeadlineScheduler sets up the enrollment deadline sweeper
func InitializeDeadlineScheduler() {
	log.Println("[DEADLINE-SCHEDULER] Initializing deadline scheduler...")

	c := cron.New()

	// Run daily at 9 AM to flag overdue enrollments
	c.AddFunc("0 9 * * *", func() {
		log.Println("[DEADLINE-SCHEDULER] Running daily deadline check...")
		ExpireOverdueEnrollments()
	})

	c.Start()
	log.Println("[DEADLINE-SCHEDULER] Deadline scheduler started - runs daily at 9 AM")
}

// ExpireOverdueEnrollments marks enrollments past their deadline and not
// completed as EXPIRED. The status is reporting-only: progress writes on an
// expired enrollment still apply.
func ExpireOverdueEnrollments() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.Enrollment{}).
		Where("is_completed = ? AND status <> ? AND deadline < ? AND is_deleted = ?",
			false, models.EnrollmentStatusExpired, now, false).
		Update("status", models.EnrollmentStatusExpired)

	if result.Error != nil {
		log.Printf("[DEADLINE-SCHEDULER] Error expiring enrollments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[DEADLINE-SCHEDULER] Marked %d enrollments as expired", result.RowsAffected)
	}
}
