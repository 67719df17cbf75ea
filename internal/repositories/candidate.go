package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumeworks/ats-parser/internal/models"
)

type CandidateRepository interface {
	UpsertByEmail(candidate *models.Candidate) error
	FindByID(id uuid.UUID) (*models.Candidate, error)
	FindAll() ([]models.Candidate, error)
	UpdateStatus(id uuid.UUID, status models.CandidateStatus, score *int, result *string) error
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// UpsertByEmail implements CandidateRepository. A re-upload of a resume with
// a known email refreshes the parsed fields instead of creating a duplicate.
func (r *candidateRepository) UpsertByEmail(candidate *models.Candidate) error {
	if candidate.Email == "" {
		if err := r.db.Create(candidate).Error; err != nil {
			return fmt.Errorf("failed to create candidate: %w", err)
		}
		return nil
	}

	var existing models.Candidate
	err := r.db.Where("email = ?", candidate.Email).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.Create(candidate).Error; err != nil {
			return fmt.Errorf("failed to create candidate: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up candidate: %w", err)
	}

	updates := map[string]interface{}{
		"name":                     candidate.Name,
		"phone":                    candidate.Phone,
		"education_qualifications": candidate.EducationQualifications,
		"total_experience_years":   candidate.TotalExperienceYears,
		"skills":                   candidate.Skills,
		"experience_summary":       candidate.ExperienceSummary,
		"updated_at":               time.Now(),
	}
	if err := r.db.Model(&models.Candidate{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}

	candidate.ID = existing.ID
	candidate.Status = existing.Status
	return nil
}

// FindByID implements CandidateRepository.
func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Preload("Interviews").Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("candidate not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

// FindAll implements CandidateRepository.
func (r *candidateRepository) FindAll() ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.db.Order("created_at ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

// UpdateStatus implements CandidateRepository.
func (r *candidateRepository) UpdateStatus(id uuid.UUID, status models.CandidateStatus, score *int, aptitudeResult *string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if score != nil {
		updates["aptitude_score"] = *score
	}
	if aptitudeResult != nil {
		updates["aptitude_result"] = *aptitudeResult
	}

	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate not found")
	}
	return nil
}
