package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/elevateai/elevate-client/internal/analysis"
	"github.com/elevateai/elevate-client/internal/schemas"
)

// UploadResult is the response to a resume upload.
type UploadResult struct {
	ResumeID int64  `json:"resumeId"`
	Message  string `json:"message"`
}

// HistoryItem is one entry of the past-resume list.
type HistoryItem struct {
	ID        int64  `json:"id"`
	FileName  string `json:"fileName"`
	ATSScore  int    `json:"atsScore"`
	CreatedAt string `json:"createdAt"`
}

// AnalyzeRequest is the body of an analyze call. The job description is
// optional free text supplied by the user.
type AnalyzeRequest struct {
	JobDescription string `json:"jobDescription,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Upload submits one PDF file as a multipart form and returns the numeric
// resume identifier assigned by the backend.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/resume/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp, "Failed to upload resume"); err != nil {
		return nil, err
	}
	var result UploadResult
	if err := decodeJSON(resp.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Analyze runs the ATS analysis for an uploaded resume. A QuotaExceeded error
// code is surfaced distinctly via IsQuotaExceeded.
func (c *Client) Analyze(ctx context.Context, resumeID int64, jobDescription string) (*analysis.Result, error) {
	req := AnalyzeRequest{JobDescription: jobDescription}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analyze request: %w", err)
	}
	var raw json.RawMessage
	path := fmt.Sprintf("/api/resume/%d/analyze", resumeID)
	if err := c.doJSON(ctx, http.MethodPost, path, req, &raw, "Failed to analyze resume"); err != nil {
		return nil, err
	}
	if err := schemas.ValidateAnalysisResult(string(raw)); err != nil {
		return nil, fmt.Errorf("malformed analysis payload: %w", err)
	}
	var result analysis.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to parse analysis: %w", err)
	}
	return &result, nil
}

// History lists the user's previously analyzed resumes.
func (c *Client) History(ctx context.Context) ([]HistoryItem, error) {
	var items []HistoryItem
	if err := c.doJSON(ctx, http.MethodGet, "/api/resume/history", nil, &items, "Failed to fetch history"); err != nil {
		return nil, err
	}
	return items, nil
}

// PreviewHTML fetches the server-rendered preview document for a template and
// font combination. The returned HTML is raw and must be sanitized before it
// reaches any rendering surface.
func (c *Client) PreviewHTML(ctx context.Context, resumeID int64, template, font string) (string, error) {
	path := fmt.Sprintf("/api/resume/%d/preview-html?template=%s&font=%s",
		resumeID, url.QueryEscape(template), url.QueryEscape(font))
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("preview request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp, "Failed to fetch preview"); err != nil {
		return "", err
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read preview body: %w", err)
	}
	return string(raw), nil
}
