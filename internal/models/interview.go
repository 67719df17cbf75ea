package models

import (
	"time"

	"github.com/google/uuid"
)

type Interview struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID     uuid.UUID `gorm:"type:uuid;not null;index" json:"candidate_id"`
	InterviewerName string    `gorm:"type:text" json:"interviewer_name"`
	InterviewDate   string    `gorm:"type:text" json:"interview_date"`
	InterviewTime   string    `gorm:"type:text" json:"interview_time"`
	Comments        string    `gorm:"type:text" json:"comments"`
	CreatedAt       time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (Interview) TableName() string {
	return "interviews"
}
