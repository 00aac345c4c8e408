// Package flow implements the upload-and-analyze state machine.
package flow

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/elevateai/elevate-client/internal/analysis"
	"github.com/elevateai/elevate-client/internal/analytics"
	"github.com/elevateai/elevate-client/internal/api"
)

// MaxFileSize is the upload ceiling: PDF files only, max 5 MB.
const MaxFileSize = 5 << 20

// State is the scan lifecycle position. There is no cancel transition; a new
// file selection simply restarts the sequence.
type State string

const (
	StateIdle         State = "idle"
	StateFileSelected State = "file_selected"
	StateUploading    State = "uploading"
	StateAnalyzing    State = "analyzing"
	StateResultReady  State = "result_ready"
	StateError        State = "error"
)

// ErrSignInRequired vetoes a file selection while unauthenticated; the
// caller shows the sign-in prompt and the scan stays idle.
var ErrSignInRequired = errors.New("sign in to upload a resume")

// ErrScanInProgress rejects a second Run while upload/analyze is in flight.
// The flow is single-shot per file.
var ErrScanInProgress = errors.New("a scan is already in progress")

// ErrNoFileSelected rejects a Run before any file was selected.
var ErrNoFileSelected = errors.New("no resume file selected")

// FileError indicates the selected file cannot be uploaded.
type FileError struct {
	Name   string
	Reason string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot upload %s: %s", e.Name, e.Reason)
}

// Backend is the slice of the API client the flow needs.
type Backend interface {
	Upload(ctx context.Context, filename string, file io.Reader) (*api.UploadResult, error)
	Analyze(ctx context.Context, resumeID int64, jobDescription string) (*analysis.Result, error)
}

// Scan drives one resume through idle → file_selected → uploading →
// analyzing → result_ready. The selected file is retained across recoverable
// failures so a retry needs no reselection.
type Scan struct {
	backend       Backend
	authenticated func() bool
	events        *analytics.Client
	log           zerolog.Logger

	mu       sync.Mutex
	state    State
	fileName string
	fileData []byte
	resumeID int64
	result   *analysis.Result
	lastErr  error
}

// New creates an idle scan. authenticated reports the session store's
// current view; events may be the no-op analytics client.
func New(backend Backend, authenticated func() bool, events *analytics.Client, log zerolog.Logger) *Scan {
	return &Scan{
		backend:       backend,
		authenticated: authenticated,
		events:        events,
		log:           log,
		state:         StateIdle,
	}
}

// State returns the current lifecycle position.
func (s *Scan) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result returns the analysis result once the scan reached result_ready.
func (s *Scan) Result() *analysis.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// FileName returns the retained selection, or "" when idle.
func (s *Scan) FileName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileName
}

// SelectFile validates and retains a resume file. Selecting while
// unauthenticated is vetoed and the state stays idle. Selecting during an
// in-flight scan is rejected; selecting after a finished or failed scan
// restarts the sequence.
func (s *Scan) SelectFile(name string, data []byte) error {
	if !s.authenticated() {
		return ErrSignInRequired
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return &FileError{Name: name, Reason: "PDF files only"}
	}
	if len(data) == 0 {
		return &FileError{Name: name, Reason: "file is empty"}
	}
	if len(data) > MaxFileSize {
		return &FileError{Name: name, Reason: "file exceeds the 5MB limit"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateUploading || s.state == StateAnalyzing {
		return ErrScanInProgress
	}
	s.fileName = name
	s.fileData = data
	s.result = nil
	s.lastErr = nil
	s.state = StateFileSelected
	s.events.ResumeUploadStarted()
	return nil
}

// Run uploads the selected file and analyzes it as one logical operation
// with a single combined loading state. The optional job description tailors
// the analysis.
//
// Failure handling follows the shared taxonomy: a 401 has already cleared
// the session by the time it surfaces here and drops the scan back to idle;
// quota exhaustion and any other failure return the scan to file_selected
// with the file retained for retry. There is no idempotency key, so a retry
// after a transport failure may double-submit; the backend owns
// deduplication, if any.
func (s *Scan) Run(ctx context.Context, jobDescription string) (*analysis.Result, error) {
	s.mu.Lock()
	switch s.state {
	case StateUploading, StateAnalyzing:
		s.mu.Unlock()
		return nil, ErrScanInProgress
	}
	if len(s.fileData) == 0 {
		s.mu.Unlock()
		return nil, ErrNoFileSelected
	}
	name, data := s.fileName, s.fileData
	s.state = StateUploading
	s.mu.Unlock()

	uploaded, err := s.backend.Upload(ctx, name, bytes.NewReader(data))
	if err != nil {
		return nil, s.fail(err)
	}
	s.log.Debug().Int64("resume_id", uploaded.ResumeID).Str("file", name).Msg("resume uploaded")

	s.mu.Lock()
	s.resumeID = uploaded.ResumeID
	s.state = StateAnalyzing
	s.mu.Unlock()

	result, err := s.backend.Analyze(ctx, uploaded.ResumeID, jobDescription)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.result = result
	s.state = StateResultReady
	s.mu.Unlock()

	s.events.ResumeAnalyzed(result.ATSScore, strings.TrimSpace(jobDescription) != "")
	return result, nil
}

// ResumeID returns the backend identifier assigned at upload, 0 before then.
func (s *Scan) ResumeID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resumeID
}

// Err returns the failure recorded by the last Run, if any.
func (s *Scan) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Reset tears the scan down to idle, dropping the file and result. Callers
// clear their applied-edit collection alongside.
func (s *Scan) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.fileName = ""
	s.fileData = nil
	s.resumeID = 0
	s.result = nil
	s.lastErr = nil
}

// fail records an error and picks the recovery state: the error dead-end
// after a cleared session (only re-authentication resolves it),
// file_selected with the file retained for everything recoverable.
func (s *Scan) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	if api.IsUnauthorized(err) {
		s.state = StateError
		s.fileName = ""
		s.fileData = nil
	} else {
		s.state = StateFileSelected
	}
	return err
}
