package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz is the authored question set for one video of a course
type Quiz struct {
	gorm.Model
	CourseID     uint    `json:"course_id" gorm:"index;not null;uniqueIndex:idx_course_video_quiz"`
	VideoKey     string  `json:"videoId" gorm:"not null;uniqueIndex:idx_course_video_quiz"`
	PassingScore float64 `json:"passingScore" gorm:"default:70"` // percentage required to complete the video
	IsDeleted    bool    `json:"-" gorm:"default:false"`

	Questions []QuizQuestion `json:"questions" gorm:"foreignKey:QuizID"`
}

// QuizQuestion is a single multiple-choice question.
// CorrectOption and Explanation are blanked before sending to learners.
type QuizQuestion struct {
	gorm.Model
	QuizID        uint           `json:"quiz_id" gorm:"index;not null"`
	Prompt        string         `json:"question"`
	Options       datatypes.JSON `json:"options"` // array of option strings
	CorrectOption int            `json:"correctAnswer" gorm:"default:0"`
	Explanation   string         `json:"explanation"`
	OrderIndex    int            `json:"order_index" gorm:"default:0"`
	IsDeleted     bool           `json:"-" gorm:"default:false"`
}
