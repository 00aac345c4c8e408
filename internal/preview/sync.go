package preview

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/elevateai/elevate-client/internal/analysis"
	"github.com/elevateai/elevate-client/internal/entitlement"
)

// DefaultFont matches the backend's font default.
const DefaultFont = "Helvetica"

// Placeholder is shown when no preview document is available. Staleness is
// worse than absence, so a failed fetch always degrades to this.
const Placeholder = "Preview unavailable"

// Selection identifies one fetchable preview document.
type Selection struct {
	ResumeID int64
	Template string
	Font     string
}

// Fetcher retrieves server-rendered preview HTML. Implemented by
// *api.Client.
type Fetcher interface {
	PreviewHTML(ctx context.Context, resumeID int64, template, font string) (string, error)
}

// Synchronizer keeps the preview document consistent with three
// independently changeable inputs: template, font, and the applied-edit
// collection. The raw HTML is fetched per selection and cached; edits are
// applied on read, so an edit change never needs a refetch.
//
// Responses are keyed by the selection that issued them: a response arriving
// after the selection has moved on is discarded (last input wins). In-flight
// fetches for an identical selection are collapsed.
type Synchronizer struct {
	fetch Fetcher
	edits *analysis.EditSet
	log   zerolog.Logger

	group singleflight.Group

	mu        sync.Mutex
	sel       Selection
	raw       string // sanitized fetched HTML for sel
	available bool
}

// NewSynchronizer creates a synchronizer for a resume with the free-tier
// default template and font.
func NewSynchronizer(fetch Fetcher, edits *analysis.EditSet, resumeID int64, log zerolog.Logger) *Synchronizer {
	return &Synchronizer{
		fetch: fetch,
		edits: edits,
		log:   log,
		sel: Selection{
			ResumeID: resumeID,
			Template: entitlement.DefaultTemplate,
			Font:     DefaultFont,
		},
	}
}

// Selection returns the current selection.
func (s *Synchronizer) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

// SetFont changes the font selection. The caller refreshes afterward.
func (s *Synchronizer) SetFont(font string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sel.Font != font {
		s.sel.Font = font
		s.available = false
	}
}

// SelectTemplate requests a template change through the entitlement gate. A
// plan-restricted template leaves the active selection untouched and returns
// the upgrade decision; an allowed one invalidates the cached document until
// the next refresh.
func (s *Synchronizer) SelectTemplate(gate entitlement.Gate, template string) *entitlement.Upgrade {
	s.mu.Lock()
	defer s.mu.Unlock()
	active, upgrade := gate.SelectTemplate(s.sel.Template, template)
	if upgrade != nil {
		return upgrade
	}
	if s.sel.Template != active {
		s.sel.Template = active
		s.available = false
	}
	return nil
}

// Refresh fetches the preview document for the current selection. A stale
// response, one whose selection no longer matches by arrival time, is
// discarded without touching the document. On failure the document degrades
// to the placeholder rather than keeping stale content.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	s.mu.Lock()
	requested := s.sel
	s.mu.Unlock()

	html, err, _ := s.group.Do(requested.flightKey(), func() (any, error) {
		raw, err := s.fetch.PreviewHTML(ctx, requested.ResumeID, requested.Template, requested.Font)
		if err != nil {
			return "", err
		}
		return Sanitize(raw)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sel != requested {
		s.log.Debug().
			Str("requested", requested.flightKey()).
			Str("current", s.sel.flightKey()).
			Msg("discarding stale preview response")
		return nil
	}
	if err != nil {
		s.raw = ""
		s.available = false
		return err
	}
	s.raw = html.(string)
	s.available = true
	return nil
}

// Document returns the current preview with every applied edit patched in,
// or the placeholder when no document is available. The patch is recomputed
// on each call, so it always reflects the live edit collection.
func (s *Synchronizer) Document() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.available {
		return Placeholder, false
	}
	return ApplyEdits(s.raw, s.edits.Edits()), true
}

func (sel Selection) flightKey() string {
	return strconv.FormatInt(sel.ResumeID, 10) + "\x00" + sel.Template + "\x00" + sel.Font
}
