// Package entitlement decides what the current plan tier permits.
//
// Every decision is a pure function of server-supplied state; the client
// keeps no counters of its own, so the gate can never drift from backend
// truth. Gated values are received and obscured client-side, mirroring the
// backend, which ships partial results with locked markers rather than
// withholding fields.
package entitlement

import "strings"

// FreeScanLimit is the number of AI scans included on the free tier.
const FreeScanLimit = 2

// LockedMarker prefixes checklist items reserved for paid plans. The marker
// is stripped from display text; the item stays obscured and non-interactive
// until upgrade.
const LockedMarker = "[Locked]"

// Upgrade surfaces, recorded on every upgrade-click analytics event so the
// originating affordance is attributable.
const (
	SurfaceKeywords      = "keywords"
	SurfaceChecklist     = "checklist"
	SurfaceTemplateGuard = "template_guard"
	SurfaceQuota         = "quota"
)

// DefaultTemplate is the only template available on the free tier.
const DefaultTemplate = "basic"

// proTemplates lists export templates reserved for paid plans.
var proTemplates = map[string]bool{
	"modern":    true,
	"executive": true,
}

// Gate derives visibility and action decisions from server flags.
type Gate struct {
	// Partial is the analyze response's isPartialAnalysis flag.
	Partial bool
	// Pro is the profile's plan flag.
	Pro bool
	// ScansUsed is the profile's usage counter.
	ScansUsed int
}

// ScansLeft returns the remaining free actions, never negative. Pro plans
// are unmetered and report the full allowance.
func (g Gate) ScansLeft() int {
	if g.Pro {
		return FreeScanLimit
	}
	left := FreeScanLimit - g.ScansUsed
	if left < 0 {
		return 0
	}
	return left
}

// MissingKeywordsVisible reports whether the missing-keyword list renders
// un-obscured. On a partial analysis the values are present but overlaid
// with an upsell control.
func (g Gate) MissingKeywordsVisible() bool {
	return !g.Partial
}

// ItemLocked reports whether a checklist entry carries the locked marker.
func ItemLocked(item string) bool {
	return strings.HasPrefix(strings.TrimSpace(item), LockedMarker)
}

// DisplayText strips the locked marker from a checklist entry. The entry
// remains gated; only its visible text changes.
func DisplayText(item string) string {
	item = strings.TrimSpace(item)
	return strings.TrimSpace(strings.TrimPrefix(item, LockedMarker))
}

// TemplateAllowed reports whether the plan may activate a template.
func (g Gate) TemplateAllowed(template string) bool {
	if g.Pro {
		return true
	}
	return !proTemplates[template]
}

// SelectTemplate applies the template guard: a disallowed request leaves the
// active selection unchanged and returns an upgrade decision tagged with the
// template_guard surface. An allowed request activates the new template.
func (g Gate) SelectTemplate(current, requested string) (active string, upgrade *Upgrade) {
	if g.TemplateAllowed(requested) {
		return requested, nil
	}
	return current, &Upgrade{Surface: SurfaceTemplateGuard}
}

// Upgrade is a routing decision toward the pricing surface. Callers must
// both record an upgrade_clicked analytics event tagged with Surface and
// navigate to checkout; no purchase logic lives here.
type Upgrade struct {
	Surface string
}
