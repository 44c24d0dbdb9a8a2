package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent  = "STUDENT"
	RoleAdmin    = "ADMIN"
	RoleInvestor = "INVESTOR"
)

type User struct {
	gorm.Model
	ExternalID   string    `json:"externalId" gorm:"uniqueIndex;not null"` // identity-provider subject
	Email        string    `json:"email" gorm:"unique;not null"`
	Name         string    `json:"name" gorm:"default:''"`
	Role         string    `json:"role" gorm:"default:'STUDENT'"` // STUDENT, ADMIN, INVESTOR
	Password     string    `json:"-" gorm:"not null"`
	Credits      float64   `json:"credits" gorm:"default:0"`
	TotalRewards float64   `json:"totalRewards" gorm:"default:0"` // lifetime earned, never decremented
	JoinedAt     time.Time `json:"joinedAt"`
	IsDeleted    bool      `json:"-" gorm:"default:false"`
}
