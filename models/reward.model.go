package models

import (
	"time"

	"gorm.io/gorm"
)

// RewardType defines what earned the payout
type RewardType string

const (
	RewardTypeCourseCompletion RewardType = "course_completion"
	RewardTypeChallengeWin     RewardType = "challenge_win"
	RewardTypeBonus            RewardType = "bonus"
)

// RewardStatus defines the distribution state of a reward
type RewardStatus string

const (
	RewardStatusPending     RewardStatus = "pending"
	RewardStatusDistributed RewardStatus = "distributed"
	RewardStatusFailed      RewardStatus = "failed"
)

// Reward is one row of the append-only payout ledger.
// The (enrollment, type) unique index guarantees at most one
// course_completion reward per enrollment even under racing progress updates.
type Reward struct {
	gorm.Model
	StudentID     uint         `json:"studentId" gorm:"index;not null"`
	CourseID      uint         `json:"courseId" gorm:"index;not null"`
	EnrollmentID  uint         `json:"enrollmentId" gorm:"not null;uniqueIndex:idx_enrollment_reward_type"`
	Type          RewardType   `json:"type" gorm:"type:varchar(50);not null;uniqueIndex:idx_enrollment_reward_type"`
	Amount        float64      `json:"amount" gorm:"not null"`
	Status        RewardStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	DistributedAt *time.Time   `json:"distributedAt"`
	IsDeleted     bool         `json:"-" gorm:"default:false"`

	Student User   `json:"student" gorm:"foreignKey:StudentID"`
	Course  Course `json:"course" gorm:"foreignKey:CourseID"`
}

func (Reward) TableName() string {
	return "rewards"
}
