package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScansLeft_FreshFreeAccount(t *testing.T) {
	g := Gate{}
	assert.Equal(t, FreeScanLimit, g.ScansLeft())
}

func TestScansLeft_CountsDown(t *testing.T) {
	g := Gate{ScansUsed: 1}
	assert.Equal(t, 1, g.ScansLeft())
}

func TestScansLeft_NeverNegative(t *testing.T) {
	g := Gate{ScansUsed: 7}
	assert.Equal(t, 0, g.ScansLeft())
}

func TestScansLeft_ProIsUnmetered(t *testing.T) {
	g := Gate{Pro: true, ScansUsed: 99}
	assert.Equal(t, FreeScanLimit, g.ScansLeft())
}

func TestMissingKeywordsVisible_FullAnalysis(t *testing.T) {
	g := Gate{Partial: false}
	assert.True(t, g.MissingKeywordsVisible())
}

func TestMissingKeywordsVisible_PartialAnalysis(t *testing.T) {
	g := Gate{Partial: true}
	assert.False(t, g.MissingKeywordsVisible())
}

func TestItemLocked_MarkedItem(t *testing.T) {
	assert.True(t, ItemLocked("[Locked] Tailor your summary"))
	assert.True(t, ItemLocked("  [Locked] Tailor your summary"))
}

func TestItemLocked_PlainItem(t *testing.T) {
	assert.False(t, ItemLocked("Add quantified metrics"))
}

func TestDisplayText_StripsMarker(t *testing.T) {
	assert.Equal(t, "Tailor your summary", DisplayText("[Locked] Tailor your summary"))
}

func TestDisplayText_PlainItemUnchanged(t *testing.T) {
	assert.Equal(t, "Add quantified metrics", DisplayText("Add quantified metrics"))
}

func TestTemplateAllowed_FreeTier(t *testing.T) {
	g := Gate{}
	assert.True(t, g.TemplateAllowed("basic"))
	assert.False(t, g.TemplateAllowed("modern"))
	assert.False(t, g.TemplateAllowed("executive"))
}

func TestTemplateAllowed_ProTier(t *testing.T) {
	g := Gate{Pro: true}
	assert.True(t, g.TemplateAllowed("basic"))
	assert.True(t, g.TemplateAllowed("modern"))
	assert.True(t, g.TemplateAllowed("executive"))
}

func TestSelectTemplate_AllowedActivates(t *testing.T) {
	g := Gate{Pro: true}
	active, upgrade := g.SelectTemplate(DefaultTemplate, "executive")
	assert.Equal(t, "executive", active)
	assert.Nil(t, upgrade)
}

func TestSelectTemplate_GuardedKeepsCurrentSelection(t *testing.T) {
	g := Gate{}
	active, upgrade := g.SelectTemplate(DefaultTemplate, "modern")
	assert.Equal(t, DefaultTemplate, active)
	require.NotNil(t, upgrade)
	assert.Equal(t, SurfaceTemplateGuard, upgrade.Surface)
}
