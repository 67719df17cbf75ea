package models

import "resumeworks/ats-parser/internal/parser"

type UploadResponse struct {
	CandidateID string          `json:"candidate_id"`
	Profile     *parser.Profile `json:"profile"`
}

type StatusUpdateRequest struct {
	Status         string  `json:"status"`
	AptitudeScore  *int    `json:"aptitude_score,omitempty"`
	AptitudeResult *string `json:"aptitude_result,omitempty"`
}

type InterviewRequest struct {
	InterviewerName string `json:"interviewer_name"`
	InterviewDate   string `json:"interview_date"`
	InterviewTime   string `json:"interview_time"`
	Comments        string `json:"comments"`
}
