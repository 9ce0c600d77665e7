package cli

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/alexanderramin/styring/internal/contract"
	"github.com/alexanderramin/styring/internal/domain"
	"github.com/alexanderramin/styring/internal/service"
	"github.com/alexanderramin/styring/internal/session"
	"github.com/alexanderramin/styring/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "revisor@example.no"
	testPassword = "hemmelig"
)

// testApp wires a full App against an in-memory backend and an in-memory
// session database.
func testApp(t *testing.T) (*App, *testutil.Backend) {
	t.Helper()
	b := testutil.NewBackend(t)
	app := &App{
		Auth:       service.NewAuthService(b.Client, b.Store),
		Projects:   service.NewProjectService(b.Client),
		Entities:   service.NewEntityService(b.Client),
		Loader:     service.NewDetailLoader(b.Client),
		Session:    b.Store,
		BackendURL: b.URL,
	}
	return app, b
}

// signedInApp is testApp with a registered user whose token is stored.
func signedInApp(t *testing.T) (*App, *testutil.Backend) {
	t.Helper()
	app, b := testApp(t)
	b.SignUp(t, testEmail, testPassword)
	return app, b
}

// seedProject creates a project with one timeline item.
func seedProject(t *testing.T, b *testutil.Backend, name string) (*domain.Project, *domain.TimelineItem) {
	t.Helper()
	ctx := context.Background()
	p, err := b.Client.CreateProject(ctx, contract.CreateProjectRequest{Name: name})
	require.NoError(t, err)

	req := contract.NewCreateTimelineItemRequest(p.ID)
	req.Title = "Revisjon Q1"
	req.Type = domain.TimelineAudit
	item, err := b.Client.CreateTimelineItem(ctx, req)
	require.NoError(t, err)
	return p, item
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansiRe.ReplaceAllString(buf.String(), ""), err
}

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app, _ := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "styring")
	assert.Contains(t, output, "--backend")
}

func TestBackendFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"absent", []string{"project", "list"}, ""},
		{"equals", []string{"--backend=http://b:9", "project", "list"}, "http://b:9"},
		{"separate", []string{"project", "--backend", "http://b:9", "list"}, "http://b:9"},
		{"after terminator", []string{"--", "--backend", "http://b:9"}, ""},
		{"dangling", []string{"--backend"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BackendFromArgs(tt.args))
		})
	}
}

func TestRootCmd_AcceptsBackendFlag(t *testing.T) {
	app, _ := signedInApp(t)

	_, err := executeCmd(t, app, "--backend", "http://ignored", "project", "list")
	require.NoError(t, err)
}

// --- auth ---

func TestRegisterThenLoginCmd(t *testing.T) {
	app, b := testApp(t)

	out, err := executeCmd(t, app, "register", "--name", "Kari", "--email", testEmail, "--password", testPassword)
	require.NoError(t, err)
	assert.Contains(t, out, "Konto opprettet")

	_, err = executeCmd(t, app, "logout")
	require.NoError(t, err)
	_, ok := b.Store.Token()
	assert.False(t, ok)

	out, err = executeCmd(t, app, "login", "--email", testEmail, "--password", testPassword)
	require.NoError(t, err)
	assert.Contains(t, out, "Innlogget som "+testEmail)

	tok, ok := b.Store.Token()
	assert.True(t, ok)
	assert.NotEmpty(t, tok)
}

func TestLoginCmd_BadCredentials(t *testing.T) {
	app, b := testApp(t)
	b.SignUp(t, testEmail, testPassword)
	_, err := executeCmd(t, app, "logout")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "login", "--email", testEmail, "--password", "feil")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())

	_, ok := b.Store.Token()
	assert.False(t, ok, "a failed login must not store anything")
}

func TestLoginCmd_MissingFieldsNonInteractive(t *testing.T) {
	app, b := testApp(t)

	_, err := executeCmd(t, app, "login", "--email", testEmail)
	require.Error(t, err)
	var authErr *service.AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Zero(t, b.Server.Requests())
}

func TestSessionStatusCmd(t *testing.T) {
	app, b := testApp(t)

	out, err := executeCmd(t, app, "session", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Ikke innlogget")

	token := b.SignUp(t, testEmail, testPassword)
	out, err = executeCmd(t, app, "session", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Innlogget")
	assert.Contains(t, out, b.URL)
	assert.NotContains(t, out, token)
}

// --- projects ---

func TestProjectAddListShow(t *testing.T) {
	app, _ := signedInApp(t)

	out, err := executeCmd(t, app, "project", "add", "Internrevisjon 2026")
	require.NoError(t, err)
	assert.Contains(t, out, "Opprettet prosjekt Internrevisjon 2026")

	out, err = executeCmd(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Internrevisjon 2026")

	projects, err := app.Projects.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)

	out, err = executeCmd(t, app, "project", "show", projects[0].ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "MÅLKORT (SCORECARD)")
	assert.Contains(t, out, "Ingen hendelser.")
}

func TestProjectAdd_RequiresName(t *testing.T) {
	app, b := signedInApp(t)
	before := b.Server.Requests()

	_, err := executeCmd(t, app, "project", "add")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequired)
	assert.Equal(t, before, b.Server.Requests())
}

func TestProjectList_NotLoggedIn(t *testing.T) {
	app, b := testApp(t)

	_, err := executeCmd(t, app, "project", "list")
	assert.ErrorIs(t, err, session.ErrNoCredential)
	assert.Zero(t, b.Server.Requests(), "no request is sent without a credential")
}

func TestEntityCmd_NotLoggedIn(t *testing.T) {
	app, b := testApp(t)

	for _, args := range [][]string{
		{"project", "add", "Kvalitet"},
		{"project", "show", "abc"},
		{"action", "add", "-p", "abc", "--title", "X"},
	} {
		_, err := executeCmd(t, app, args...)
		assert.ErrorIs(t, err, session.ErrNoCredential, "%v", args)
	}
	assert.Zero(t, b.Server.Requests())
}

func TestProjectShow_UnknownPrefix(t *testing.T) {
	app, b := signedInApp(t)
	seedProject(t, b, "A")

	_, err := executeCmd(t, app, "project", "show", "zzzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project not found")
}

// --- entities ---

func TestEntityCmds_CreateEverything(t *testing.T) {
	app, b := signedInApp(t)
	p, item := seedProject(t, b, "Kvalitet")
	pid, iid := p.ID[:8], item.ID[:8]

	cmds := [][]string{
		{"metric", "add", "-p", pid, "--title", "Lukkede avvik", "--current", "12", "--target", "20", "--unit", "stk"},
		{"action", "add", "-p", pid, "--title", "Oppdater rutiner"},
		{"timeline", "add", "-p", pid, "--title", "Styremøte", "--type", "Review"},
		{"task", "add", "-p", pid, "-i", iid, "--title", "Innhent data"},
		{"comment", "add", "-p", pid, "-i", iid, "--content", "Venter på tall"},
		{"document", "add", "-p", pid, "-i", iid, "--name", "Rapport", "--url", "https://example.no/r.pdf"},
	}
	for _, args := range cmds {
		out, err := executeCmd(t, app, args...)
		require.NoError(t, err, "%v", args)
		assert.Contains(t, out, "Lagt til", "%v", args)
	}

	view := app.Loader.Load(context.Background(), p.ID)
	require.Len(t, view.Metrics, 1)
	assert.Equal(t, 12.0, view.Metrics[0].CurrentValue)
	assert.Equal(t, "stk", view.Metrics[0].Unit)
	require.Len(t, view.Actions, 1)
	require.Len(t, view.Timeline, 2)
	assert.Equal(t, domain.TimelineReview, view.Timeline[1].Type)
	assert.Len(t, view.TasksFor(item.ID), 1)
	assert.Len(t, domain.CommentsFor(view.Comments, item.ID), 1)
	assert.Len(t, domain.DocumentsFor(view.Documents, item.ID), 1)

	out, err := executeCmd(t, app, "project", "show", pid)
	require.NoError(t, err)
	assert.Contains(t, out, "12/20 stk")
	assert.Contains(t, out, "Innhent data")
	assert.Contains(t, out, "Åpne: https://example.no/r.pdf")
}

func TestMetricCmd_Defaults(t *testing.T) {
	app, b := signedInApp(t)
	p, _ := seedProject(t, b, "Kvalitet")

	_, err := executeCmd(t, app, "metric", "add", "-p", p.ID, "--title", "Dekning")
	require.NoError(t, err)

	view := app.Loader.Load(context.Background(), p.ID)
	require.Len(t, view.Metrics, 1)
	assert.Equal(t, 100.0, view.Metrics[0].TargetValue)
	assert.Equal(t, 0.0, view.Metrics[0].CurrentValue)
	assert.Equal(t, "%", view.Metrics[0].Unit)
}

func TestDocumentCmd_RequiresURL(t *testing.T) {
	app, b := signedInApp(t)
	p, item := seedProject(t, b, "Kvalitet")

	_, err := executeCmd(t, app, "document", "add", "-p", p.ID, "-i", item.ID, "--name", "Rapport")
	require.Error(t, err)
	var fieldErr *service.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "url", fieldErr.Field)
}

func TestTimelineCmd_InvalidType(t *testing.T) {
	app, b := signedInApp(t)
	p, _ := seedProject(t, b, "Kvalitet")

	_, err := executeCmd(t, app, "timeline", "add", "-p", p.ID, "--title", "X", "--type", "party")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTimelineType)
}

func TestTaskCmd_RequiresItem(t *testing.T) {
	app, b := signedInApp(t)
	p, _ := seedProject(t, b, "Kvalitet")

	_, err := executeCmd(t, app, "task", "add", "-p", p.ID, "--title", "X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--item is required")
}

func TestTaskCmd_TimelineReadFailure(t *testing.T) {
	app, b := signedInApp(t)
	p, item := seedProject(t, b, "Kvalitet")
	b.Server.FailPath("/timeline", http.StatusServiceUnavailable)

	_, err := executeCmd(t, app, "task", "add", "-p", p.ID, "-i", item.ID, "--title", "X")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "listing timeline")
	assert.Contains(t, err.Error(), "Service Unavailable")

	b.Server.FailPath("/timeline", 0)
	view := app.Loader.Load(context.Background(), p.ID)
	assert.Empty(t, view.TasksFor(item.ID), "no task is written after a failed lookup")
}

func TestTaskCmd_UnknownItem(t *testing.T) {
	app, b := signedInApp(t)
	p, _ := seedProject(t, b, "Kvalitet")

	_, err := executeCmd(t, app, "task", "add", "-p", p.ID, "-i", "zzzz", "--title", "X")
	assert.ErrorContains(t, err, "timeline item not found")
}

func TestEntityCmd_WriteFailure(t *testing.T) {
	app, b := signedInApp(t)
	p, _ := seedProject(t, b, "Kvalitet")
	b.Server.FailPath("/actions", http.StatusServiceUnavailable)

	_, err := executeCmd(t, app, "action", "add", "-p", p.ID, "--title", "X")
	require.Error(t, err)
	var writeErr *service.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Contains(t, err.Error(), "Service Unavailable")
}

func TestMatchID(t *testing.T) {
	ids := []string{"abc123", "abd456", "xyz"}

	got, err := matchID("project", "xyz", ids)
	require.NoError(t, err)
	assert.Equal(t, "xyz", got)

	got, err = matchID("project", "abc", ids)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)

	_, err = matchID("project", "ab", ids)
	assert.ErrorContains(t, err, "ambiguous")

	_, err = matchID("project", "q", ids)
	assert.ErrorContains(t, err, "not found")
}
