package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/elevateai/elevate-client/internal/schemas"
)

// EnhanceRequest asks the backend AI to rewrite one bullet point.
type EnhanceRequest struct {
	BulletPoint string `json:"bulletPoint" validate:"required,min=1"`
	TargetJob   string `json:"targetJob,omitempty"`
}

// Validate validates the EnhanceRequest using the validator.
func (r *EnhanceRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Question is one generated interview question with a preparation tip.
type Question struct {
	Question string `json:"question"`
	Tip      string `json:"tip"`
	Category string `json:"category"`
}

// Enhance rewrites a bullet point, optionally targeting a job title.
func (c *Client) Enhance(ctx context.Context, bulletPoint, targetJob string) (string, error) {
	req := EnhanceRequest{BulletPoint: bulletPoint, TargetJob: targetJob}
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid enhance request: %w", err)
	}
	var resp struct {
		EnhancedBulletPoint string `json:"enhancedBulletPoint"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/resume/enhance", req, &resp, "Failed to enhance bullet point"); err != nil {
		return "", err
	}
	return resp.EnhancedBulletPoint, nil
}

// CoverLetter generates a cover letter from an analyzed resume.
func (c *Client) CoverLetter(ctx context.Context, resumeID int64, jobDescription string) (string, error) {
	var resp struct {
		CoverLetter string `json:"coverLetter"`
	}
	path := fmt.Sprintf("/api/resume/%d/cover-letter", resumeID)
	body := AnalyzeRequest{JobDescription: jobDescription}
	if err := c.doJSON(ctx, http.MethodPost, path, body, &resp, "Failed to generate cover letter"); err != nil {
		return "", err
	}
	return resp.CoverLetter, nil
}

// InterviewQuestions generates targeted interview questions. The backend
// wraps the question list in a JSON-encoded string, so the payload is parsed
// twice and schema-checked before use.
func (c *Client) InterviewQuestions(ctx context.Context, resumeID int64, jobDescription string) ([]Question, error) {
	var resp struct {
		Questions string `json:"questions"`
	}
	path := fmt.Sprintf("/api/resume/%d/interview-questions", resumeID)
	body := AnalyzeRequest{JobDescription: jobDescription}
	if err := c.doJSON(ctx, http.MethodPost, path, body, &resp, "Failed to generate questions"); err != nil {
		return nil, err
	}

	if err := schemas.ValidateInterviewQuestions(resp.Questions); err != nil {
		return nil, fmt.Errorf("malformed interview questions payload: %w", err)
	}
	var questions []Question
	if err := json.Unmarshal([]byte(resp.Questions), &questions); err != nil {
		return nil, fmt.Errorf("failed to parse interview questions: %w", err)
	}
	return questions, nil
}
