package devserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexanderramin/styring/internal/api"
	"github.com/alexanderramin/styring/internal/contract"
	"github.com/alexanderramin/styring/internal/devserver"
	"github.com/alexanderramin/styring/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type tokenHolder struct{ tok string }

func (h *tokenHolder) Token() (string, bool) { return h.tok, h.tok != "" }

func setup(t *testing.T, opts ...devserver.Option) (*devserver.Server, *api.Client, *tokenHolder) {
	t.Helper()
	opts = append([]devserver.Option{devserver.WithHashCost(bcrypt.MinCost)}, opts...)
	srv := devserver.New("test-secret", opts...)
	hs := httptest.NewServer(srv.Handler())
	t.Cleanup(hs.Close)

	holder := &tokenHolder{}
	return srv, api.NewClient(api.Config{BaseURL: hs.URL}, holder, nil), holder
}

func registerAs(t *testing.T, client *api.Client, holder *tokenHolder, email string) {
	t.Helper()
	resp, err := client.Register(context.Background(), contract.RegisterRequest{
		Email: email, Password: "hemmelig", Name: "Kari",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	holder.tok = resp.AccessToken
}

func TestRegisterThenLogin(t *testing.T) {
	_, client, holder := setup(t)
	ctx := context.Background()

	registerAs(t, client, holder, "kari@example.no")

	resp, err := client.Login(ctx, contract.LoginRequest{Email: "KARI@example.no ", Password: "hemmelig"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, client, holder := setup(t)
	registerAs(t, client, holder, "kari@example.no")

	_, err := client.Register(context.Background(), contract.RegisterRequest{
		Email: "kari@example.no", Password: "x", Name: "Kari 2",
	})
	assert.Equal(t, "Email already registered", api.DetailOf(err))
}

func TestLogin_BadCredentials(t *testing.T) {
	_, client, holder := setup(t)
	registerAs(t, client, holder, "kari@example.no")

	_, err := client.Login(context.Background(), contract.LoginRequest{Email: "kari@example.no", Password: "feil"})
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", api.DetailOf(err))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	_, client, holder := setup(t)

	_, err := client.ListProjects(context.Background())
	assert.ErrorIs(t, err, api.ErrUnauthorized)

	holder.tok = "not-a-jwt"
	_, err = client.ListProjects(context.Background())
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestProjectsAreScopedPerUser(t *testing.T) {
	_, client, holder := setup(t)
	ctx := context.Background()

	registerAs(t, client, holder, "a@example.no")
	p, err := client.CreateProject(ctx, contract.CreateProjectRequest{Name: "Internrevisjon 2026"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	registerAs(t, client, holder, "b@example.no")
	projects, err := client.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	_, err = client.ListMetrics(ctx, p.ID)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestEntityDefaults(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	_, client, holder := setup(t, devserver.WithClock(func() time.Time { return fixed }))
	ctx := context.Background()
	registerAs(t, client, holder, "a@example.no")

	p, err := client.CreateProject(ctx, contract.CreateProjectRequest{Name: "P"})
	require.NoError(t, err)

	a, err := client.CreateAction(ctx, contract.CreateActionRequest{ProjectID: p.ID, Title: "Oppdater rutiner"})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionPlanned, a.Status)

	itemReq := contract.NewCreateTimelineItemRequest(p.ID)
	itemReq.Title = "Revisjon Q1"
	item, err := client.CreateTimelineItem(ctx, itemReq)
	require.NoError(t, err)
	assert.Equal(t, domain.TimelineMilestone, item.Type)
	assert.Equal(t, "2026-03-14", item.StartDay())
	assert.Empty(t, item.EndDay())

	task, err := client.CreateTask(ctx, contract.CreateTaskRequest{ProjectID: p.ID, TimelineItemID: item.ID, Title: "Innhent data"})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskTodo, task.Status)

	tasks, err := client.ListTasks(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
}

func TestCreate_UnknownTimelineItem(t *testing.T) {
	_, client, holder := setup(t)
	ctx := context.Background()
	registerAs(t, client, holder, "a@example.no")
	p, err := client.CreateProject(ctx, contract.CreateProjectRequest{Name: "P"})
	require.NoError(t, err)

	_, err = client.CreateDocument(ctx, contract.CreateDocumentRequest{
		ProjectID: p.ID, TimelineItemID: "missing", Name: "Rapport", URL: "https://x",
	})
	assert.Equal(t, "Timeline item not found", api.DetailOf(err))
}

func TestFailPath(t *testing.T) {
	srv, client, holder := setup(t)
	ctx := context.Background()
	registerAs(t, client, holder, "a@example.no")
	p, err := client.CreateProject(ctx, contract.CreateProjectRequest{Name: "P"})
	require.NoError(t, err)

	srv.FailPath("/metrics/", http.StatusInternalServerError)
	_, err = client.ListMetrics(ctx, p.ID)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)

	srv.FailPath("/metrics/", 0)
	metrics, err := client.ListMetrics(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, metrics)
	assert.Greater(t, srv.Requests(), 3)
}

func TestErrorBodyIsErrorResponse(t *testing.T) {
	srv := devserver.New("test-secret")
	hs := httptest.NewServer(srv.Handler())
	t.Cleanup(hs.Close)

	resp, err := http.Get(hs.URL + "/projects")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body contract.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Not authenticated", body.Detail)
}
