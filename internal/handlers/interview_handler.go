package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumeworks/ats-parser/internal/models"
	"resumeworks/ats-parser/internal/repositories"
	"resumeworks/ats-parser/internal/services"
)

type InterviewHandler struct {
	candidateRepo repositories.CandidateRepository
	interviewRepo repositories.InterviewRepository
	notifier      services.Notifier
}

func NewInterviewHandler(
	candidateRepo repositories.CandidateRepository,
	interviewRepo repositories.InterviewRepository,
	notifier services.Notifier,
) *InterviewHandler {
	return &InterviewHandler{
		candidateRepo: candidateRepo,
		interviewRepo: interviewRepo,
		notifier:      notifier,
	}
}

// HandleSchedule handles POST /candidates/:id/interviews. Scheduling moves
// the candidate to interview_scheduled and notifies them.
func (h *InterviewHandler) HandleSchedule(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	var req models.InterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.InterviewerName == "" || req.InterviewDate == "" || req.InterviewTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "interviewer_name, interview_date and interview_time are required",
		})
	}

	if _, err := h.candidateRepo.FindByID(candidateID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	interview := &models.Interview{
		ID:              uuid.New(),
		CandidateID:     candidateID,
		InterviewerName: req.InterviewerName,
		InterviewDate:   req.InterviewDate,
		InterviewTime:   req.InterviewTime,
		Comments:        req.Comments,
	}

	if err := h.interviewRepo.ScheduleForCandidate(interview, models.StatusInterviewScheduled); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to schedule interview",
		})
	}

	if candidate, err := h.candidateRepo.FindByID(candidateID); err == nil {
		h.notifier.Enqueue(services.StatusNotification(candidate))
	}

	return c.Status(fiber.StatusCreated).JSON(interview)
}

// HandleListByCandidate handles GET /candidates/:id/interviews.
func (h *InterviewHandler) HandleListByCandidate(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	interviews, err := h.interviewRepo.FindByCandidateID(candidateID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list interviews",
		})
	}

	return c.JSON(interviews)
}
