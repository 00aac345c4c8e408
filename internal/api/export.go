package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultExportFilename is used when the backend supplies no filename hint.
const DefaultExportFilename = "ElevateAI_Resume.pdf"

// ExportOptions selects the template and font for the rendered PDF. Text
// carries the resume body the server should render; the live-patched preview
// is never sent.
type ExportOptions struct {
	Text     string `json:"text"`
	Template string `json:"template"`
	Font     string `json:"font"`
}

// ExportResult holds the streamed PDF bytes and the filename the server
// suggested via Content-Disposition.
type ExportResult struct {
	Filename string
	Data     []byte
}

// ExportPDF renders the resume server-side and streams back the binary file.
func (c *Client) ExportPDF(ctx context.Context, resumeID int64, opts ExportOptions) (*ExportResult, error) {
	path := fmt.Sprintf("/api/resume/%d/export-pdf", resumeID)
	req, err := c.newRequest(ctx, http.MethodPost, path, jsonBody(opts))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("export request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp, "Failed to export PDF"); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF stream: %w", err)
	}
	return &ExportResult{
		Filename: exportFilename(resp.Header.Get("Content-Disposition")),
		Data:     data,
	}, nil
}

// exportFilename extracts the filename hint from a Content-Disposition
// header, falling back to the fixed default.
func exportFilename(disposition string) string {
	if disposition == "" {
		return DefaultExportFilename
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return DefaultExportFilename
	}
	if name := params["filename"]; name != "" {
		return name
	}
	return DefaultExportFilename
}
