package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumeworks/ats-parser/internal/models"
	"resumeworks/ats-parser/internal/repositories"
	"resumeworks/ats-parser/internal/services"
)

type CandidateHandler struct {
	candidateRepo repositories.CandidateRepository
	notifier      services.Notifier
}

func NewCandidateHandler(
	candidateRepo repositories.CandidateRepository,
	notifier services.Notifier,
) *CandidateHandler {
	return &CandidateHandler{
		candidateRepo: candidateRepo,
		notifier:      notifier,
	}
}

// HandleList handles GET /candidates.
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	candidates, err := h.candidateRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list candidates",
		})
	}

	return c.JSON(candidates)
}

// HandleGet handles GET /candidates/:id.
func (h *CandidateHandler) HandleGet(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	candidate, err := h.candidateRepo.FindByID(candidateID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	return c.JSON(candidate)
}

// HandleUpdateStatus handles PATCH /candidates/:id/status. A successful
// transition enqueues a notification email for the candidate.
func (h *CandidateHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	var req models.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	status := models.CandidateStatus(req.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status value",
		})
	}

	if _, err := h.candidateRepo.FindByID(candidateID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	if err := h.candidateRepo.UpdateStatus(candidateID, status, req.AptitudeScore, req.AptitudeResult); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update candidate status",
		})
	}

	candidate, err := h.candidateRepo.FindByID(candidateID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load updated candidate",
		})
	}

	h.notifier.Enqueue(services.StatusNotification(candidate))

	return c.JSON(candidate)
}
