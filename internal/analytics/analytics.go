// Package analytics sends product events over the GA4 Measurement Protocol.
//
// Analytics is strictly best-effort: a missing measurement ID disables the
// whole package without error, and delivery failures are logged at debug and
// never surfaced to the user.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultEndpoint is the Measurement Protocol collection endpoint.
const DefaultEndpoint = "https://www.google-analytics.com/mp/collect"

// sendTimeout bounds one event delivery.
const sendTimeout = 5 * time.Second

// Client delivers events. The zero-value (nil) client is a safe no-op, which
// is how an absent measurement ID disables analytics.
type Client struct {
	endpoint      string
	measurementID string
	apiSecret     string
	clientID      string
	http          *http.Client
	log           zerolog.Logger
}

// New creates a client, or nil when measurementID is empty. The random
// client id persists at clientIDPath so events correlate across runs.
func New(measurementID, apiSecret, clientIDPath string, log zerolog.Logger) *Client {
	if measurementID == "" {
		return nil
	}
	return &Client{
		endpoint:      DefaultEndpoint,
		measurementID: measurementID,
		apiSecret:     apiSecret,
		clientID:      loadClientID(clientIDPath, log),
		http:          &http.Client{Timeout: sendTimeout},
		log:           log,
	}
}

// SetEndpoint overrides the collection endpoint (tests).
func (c *Client) SetEndpoint(endpoint string) {
	if c != nil {
		c.endpoint = endpoint
	}
}

// loadClientID reads or mints the persistent analytics client id.
func loadClientID(path string, log zerolog.Logger) string {
	if path != "" {
		if raw, err := os.ReadFile(path); err == nil {
			if id := strings.TrimSpace(string(raw)); id != "" {
				return id
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			log.Debug().Err(err).Msg("failed to read analytics client id")
		}
	}
	id := uuid.NewString()
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err == nil {
			if err := os.WriteFile(path, []byte(id), 0o600); err != nil {
				log.Debug().Err(err).Msg("failed to persist analytics client id")
			}
		}
	}
	return id
}

// event is the Measurement Protocol payload shape.
type event struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

type payload struct {
	ClientID string  `json:"client_id"`
	Events   []event `json:"events"`
}

// send delivers one event, fire-and-forget.
func (c *Client) send(name string, params map[string]any) {
	if c == nil {
		return
	}
	body, err := json.Marshal(payload{
		ClientID: c.clientID,
		Events:   []event{{Name: name, Params: params}},
	})
	if err != nil {
		c.log.Debug().Err(err).Str("event", name).Msg("failed to encode analytics event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	collect := fmt.Sprintf("%s?measurement_id=%s&api_secret=%s",
		c.endpoint, url.QueryEscape(c.measurementID), url.QueryEscape(c.apiSecret))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, collect, bytes.NewReader(body))
	if err != nil {
		c.log.Debug().Err(err).Str("event", name).Msg("failed to build analytics request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("event", name).Msg("failed to deliver analytics event")
		return
	}
	_ = resp.Body.Close()
	c.log.Debug().Str("event", name).Int("status", resp.StatusCode).Msg("analytics event sent")
}

// ResumeUploadStarted fires when the user selects a file in the upload zone.
func (c *Client) ResumeUploadStarted() {
	c.send("resume_upload_started", nil)
}

// ResumeAnalyzed fires when the analyze call returns successfully.
func (c *Client) ResumeAnalyzed(atsScore int, hasJobDescription bool) {
	c.send("resume_analyzed", map[string]any{
		"ats_score":           atsScore,
		"has_job_description": hasJobDescription,
	})
}

// PDFExported fires on a PDF download.
func (c *Client) PDFExported(template, font string) {
	c.send("pdf_exported", map[string]any{"template": template, "font": font})
}

// AIRewriteUsed fires when the bullet rewriter is invoked.
func (c *Client) AIRewriteUsed() {
	c.send("ai_rewrite_used", nil)
}

// CoverLetterGenerated fires when a cover letter is generated.
func (c *Client) CoverLetterGenerated() {
	c.send("cover_letter_generated", nil)
}

// UpgradeClicked fires on any upgrade/unlock affordance, tagged with the
// originating surface (keywords, checklist, template_guard, quota).
func (c *Client) UpgradeClicked(source string) {
	c.send("upgrade_clicked", map[string]any{"source": source})
}

// CheckoutStarted fires when the user proceeds to payment.
func (c *Client) CheckoutStarted() {
	c.send("checkout_started", nil)
}

// PurchaseCompleted fires when payment is confirmed.
func (c *Client) PurchaseCompleted() {
	c.send("purchase_completed", nil)
}

// LoginStarted fires when the sign-in flow opens.
func (c *Client) LoginStarted() {
	c.send("login_started", nil)
}

// LoginCompleted fires when the OAuth callback yields a token.
func (c *Client) LoginCompleted(provider string) {
	c.send("login_completed", map[string]any{"provider": provider})
}
