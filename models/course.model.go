package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Course represents a learning course built from an ordered YouTube playlist
type Course struct {
	gorm.Model
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Instructor      string         `json:"instructor"`
	PlaylistID      string         `json:"youtubePlaylistId"`
	Difficulty      string         `json:"difficulty" gorm:"type:varchar(20);default:'beginner'"` // beginner, intermediate, advanced
	Reward          float64        `json:"reward" gorm:"default:0"`                               // flat payout on completion
	TimeLimitDays   int            `json:"timeLimit" gorm:"default:30"`
	Category        string         `json:"category"`
	Tags            datatypes.JSON `json:"tags"` // array of tag strings
	IsActive        bool           `json:"isActive" gorm:"default:true"`
	EnrollmentCount int64          `json:"enrollmentCount" gorm:"default:0"`
	IsDeleted       bool           `json:"-" gorm:"default:false"`

	Videos []CourseVideo `json:"videos" gorm:"foreignKey:CourseID"`
}

// CourseVideo is one entry of a course's ordered video sequence
type CourseVideo struct {
	gorm.Model
	CourseID        uint   `json:"course_id" gorm:"index;not null"`
	VideoKey        string `json:"id" gorm:"index;not null"` // stable id referenced by completions and quiz scores
	Title           string `json:"title"`
	YoutubeID       string `json:"videoId"`
	DurationSeconds int    `json:"duration" gorm:"default:0"`
	OrderIndex      int    `json:"order" gorm:"default:0"`
	IsDeleted       bool   `json:"-" gorm:"default:false"`
}
