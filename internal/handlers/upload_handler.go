package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumeworks/ats-parser/internal/models"
	"resumeworks/ats-parser/internal/parser"
	"resumeworks/ats-parser/internal/repositories"
	"resumeworks/ats-parser/internal/services"
)

type UploadHandler struct {
	candidateRepo  repositories.CandidateRepository
	storageService services.StorageService
	resumeParser   *parser.ResumeParser
	maxFileSize    int64
}

func NewUploadHandler(
	candidateRepo repositories.CandidateRepository,
	storageService services.StorageService,
	resumeParser *parser.ResumeParser,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		candidateRepo:  candidateRepo,
		storageService: storageService,
		resumeParser:   resumeParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /candidates. It stores the uploaded resume PDF,
// parses it into a profile and upserts the candidate record keyed by email.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file uploaded. Please upload a PDF as 'resume'.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File must be a PDF",
		})
	}

	// Save file
	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	// Parse the stored PDF into a profile
	profile, text, err := h.resumeParser.ParseFile(filePath)
	if err != nil {
		h.storageService.DeleteFile(filename)
		if errors.Is(err, parser.ErrSourceNotFound) || errors.Is(err, parser.ErrReadFailed) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to read resume: %v", err),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to parse resume: %v", err),
		})
	}

	// A readable PDF with no text layer yields no candidate data at all
	if strings.TrimSpace(text) == "" {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "no extractable text in resume",
		})
	}

	// Create candidate record
	candidate := models.CandidateFromProfile(profile)
	candidate.ID = uuid.New()
	if err := h.candidateRepo.UpsertByEmail(&candidate); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save candidate record: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		CandidateID: candidate.ID.String(),
		Profile:     profile,
	})
}
