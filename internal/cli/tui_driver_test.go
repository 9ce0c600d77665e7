package cli

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/styring/internal/teatest"
	"github.com/stretchr/testify/require"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// settleTimeout bounds how long a test waits for backend round-trips.
const settleTimeout = 5 * time.Second

// TestDriver wraps teatest.Driver with styring-specific inspection methods.
// It provides access to appModel internals (view stack, shared state,
// output area) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Settle waits until cond holds, failing the test if it never does.
func (d *TestDriver) Settle(cond func() bool, msgAndArgs ...any) {
	d.T.Helper()
	require.True(d.T, d.WaitFor(cond, settleTimeout), msgAndArgs...)
}

// SettleOn waits until the active view is id.
func (d *TestDriver) SettleOn(id ViewID) {
	d.T.Helper()
	d.Settle(func() bool { return d.ActiveViewID() == id }, "active view never became %d (is %d)", id, d.ActiveViewID())
}

// SettleContains waits until the rendered screen contains s.
func (d *TestDriver) SettleContains(s string) {
	d.T.Helper()
	d.Settle(func() bool { return strings.Contains(d.Screen(), s) }, "screen never showed %q:\n%s", s, d.Screen())
}

// Screen returns the rendered output without ANSI styling.
func (d *TestDriver) Screen() string {
	return ansiRe.ReplaceAllString(d.View(), "")
}

// TypeLine types s into the focused input and presses Enter.
func (d *TestDriver) TypeLine(s string) {
	d.T.Helper()
	d.Type(s)
	d.PressEnter()
}

// ── styring-specific inspection ──────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveView returns the top view on the stack.
func (d *TestDriver) ActiveView() View {
	m := d.appModel()
	return m.activeView()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the transient output displayed in the content area.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}

// DetailView returns the active project detail view, failing otherwise.
func (d *TestDriver) DetailView() *projectDetailView {
	d.T.Helper()
	v, ok := d.ActiveView().(*projectDetailView)
	require.True(d.T, ok, "active view is %T, not the project detail", d.ActiveView())
	return v
}
