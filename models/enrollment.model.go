package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	EnrollmentStatusEnrolled   = "ENROLLED"
	EnrollmentStatusInProgress = "IN_PROGRESS"
	EnrollmentStatusCompleted  = "COMPLETED"
	EnrollmentStatusExpired    = "EXPIRED" // deadline passed before completion; reporting only
)

// Enrollment binds a user to a course and tracks progress.
// One row per (user, course) pair, enforced by idx_user_course.
type Enrollment struct {
	gorm.Model
	UserID            uint       `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_course"`
	CourseID          uint       `json:"course_id" gorm:"index;not null;uniqueIndex:idx_user_course"`
	Status            string     `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, IN_PROGRESS, COMPLETED, EXPIRED
	Progress          float64    `json:"progress" gorm:"default:0"`        // completion percentage (0-100), derived from the completed set
	CurrentVideoIndex int        `json:"currentVideoIndex" gorm:"default:0"` // cosmetic navigation pointer, never gates access
	StartedAt         time.Time  `json:"startedAt"`
	Deadline          time.Time  `json:"deadline"` // startedAt + course time limit
	CompletedAt       *time.Time `json:"completedAt"`
	IsCompleted       bool       `json:"isCompleted" gorm:"default:false"`
	FinalScore        *float64   `json:"finalScore"`
	RewardClaimed     bool       `json:"rewardClaimed" gorm:"default:false"`
	IsDeleted         bool       `json:"-" gorm:"default:false"`

	Course     Course                `json:"course" gorm:"foreignKey:CourseID"`
	QuizScores []EnrollmentQuizScore `json:"quizScores" gorm:"foreignKey:EnrollmentID"`
}

// VideoCompletion records one completed video of an enrollment.
// The (enrollment, video) unique index makes repeated completion idempotent.
type VideoCompletion struct {
	gorm.Model
	EnrollmentID uint   `json:"enrollment_id" gorm:"index;not null;uniqueIndex:idx_enrollment_video"`
	VideoKey     string `json:"videoId" gorm:"not null;uniqueIndex:idx_enrollment_video"`
}

// EnrollmentQuizScore keeps the best quiz score per video with an attempt counter
type EnrollmentQuizScore struct {
	gorm.Model
	EnrollmentID uint    `json:"enrollment_id" gorm:"index;not null;uniqueIndex:idx_enrollment_quiz"`
	VideoKey     string  `json:"videoId" gorm:"not null;uniqueIndex:idx_enrollment_quiz"`
	Score        float64 `json:"score"`    // max ever achieved
	Attempts     int     `json:"attempts"` // increments on every submission
}
