package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumeworks/ats-parser/internal/models"
)

type InterviewRepository interface {
	ScheduleForCandidate(interview *models.Interview, status models.CandidateStatus) error
	FindByCandidateID(candidateID uuid.UUID) ([]models.Interview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

// ScheduleForCandidate implements InterviewRepository. The interview row and
// the candidate status change commit together, so a failed status update
// never leaves an orphaned interview behind.
func (r *interviewRepository) ScheduleForCandidate(interview *models.Interview, status models.CandidateStatus) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(interview).Error; err != nil {
			return fmt.Errorf("failed to create interview: %w", err)
		}

		result := tx.Model(&models.Candidate{}).
			Where("id = ?", interview.CandidateID).
			Updates(map[string]interface{}{
				"status":     status,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update candidate status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("candidate not found")
		}
		return nil
	})
}

// FindByCandidateID implements InterviewRepository.
func (r *interviewRepository) FindByCandidateID(candidateID uuid.UUID) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.
		Where("candidate_id = ?", candidateID).
		Order("created_at ASC").
		Find(&interviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}
