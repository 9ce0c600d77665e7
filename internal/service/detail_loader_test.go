package service

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/styring/internal/contract"
	"github.com/alexanderramin/styring/internal/domain"
	"github.com/alexanderramin/styring/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedProject creates a project with one of everything through the real
// client and returns it with its timeline item.
func seedProject(t *testing.T, b *testutil.Backend, name string) (*domain.Project, *domain.TimelineItem) {
	t.Helper()
	ctx := context.Background()
	p, err := b.Client.CreateProject(ctx, contract.CreateProjectRequest{Name: name})
	require.NoError(t, err)

	m := contract.NewCreateMetricRequest(p.ID)
	m.Title = name + " metric"
	_, err = b.Client.CreateMetric(ctx, m)
	require.NoError(t, err)

	_, err = b.Client.CreateAction(ctx, contract.CreateActionRequest{ProjectID: p.ID, Title: name + " action"})
	require.NoError(t, err)

	ti := contract.NewCreateTimelineItemRequest(p.ID)
	ti.Title = name + " milestone"
	item, err := b.Client.CreateTimelineItem(ctx, ti)
	require.NoError(t, err)

	_, err = b.Client.CreateTask(ctx, contract.CreateTaskRequest{ProjectID: p.ID, TimelineItemID: item.ID, Title: name + " task"})
	require.NoError(t, err)
	_, err = b.Client.CreateComment(ctx, contract.CreateCommentRequest{ProjectID: p.ID, TimelineItemID: item.ID, Content: name + " comment"})
	require.NoError(t, err)
	_, err = b.Client.CreateDocument(ctx, contract.CreateDocumentRequest{ProjectID: p.ID, TimelineItemID: item.ID, Name: name + " doc", URL: "https://example.no/" + name})
	require.NoError(t, err)
	return p, item
}

func TestDetailLoader_TwoTimelineItems(t *testing.T) {
	b := signedInBackend(t)
	ctx := context.Background()

	p, err := b.Client.CreateProject(ctx, contract.CreateProjectRequest{Name: "P"})
	require.NoError(t, err)

	var items []*domain.TimelineItem
	for _, title := range []string{"T1", "T2"} {
		req := contract.NewCreateTimelineItemRequest(p.ID)
		req.Title = title
		item, err := b.Client.CreateTimelineItem(ctx, req)
		require.NoError(t, err)
		items = append(items, item)
	}
	for _, title := range []string{"a", "b"} {
		_, err := b.Client.CreateTask(ctx, contract.CreateTaskRequest{ProjectID: p.ID, TimelineItemID: items[0].ID, Title: title})
		require.NoError(t, err)
	}

	view := NewDetailLoader(b.Client).Load(ctx, p.ID)

	require.Len(t, view.Timeline, 2)
	require.Len(t, view.Tasks, 2)
	assert.Len(t, view.Tasks[items[0].ID], 2)
	assert.NotNil(t, view.Tasks[items[1].ID])
	assert.Empty(t, view.Tasks[items[1].ID])
	assert.Equal(t, 0, view.FailedReads)
}

func TestDetailLoader_TaskKeysEqualTimelineIDs(t *testing.T) {
	b := signedInBackend(t)
	p, _ := seedProject(t, b, "Revisjon")
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		req := contract.NewCreateTimelineItemRequest(p.ID)
		req.Title = "extra"
		_, err := b.Client.CreateTimelineItem(ctx, req)
		require.NoError(t, err)
	}

	view := NewDetailLoader(b.Client).Load(ctx, p.ID)

	var timelineIDs, taskKeys []string
	for _, item := range view.Timeline {
		timelineIDs = append(timelineIDs, item.ID)
	}
	for k := range view.Tasks {
		taskKeys = append(taskKeys, k)
	}
	sort.Strings(timelineIDs)
	sort.Strings(taskKeys)
	assert.Equal(t, timelineIDs, taskKeys)
}

func TestDetailLoader_SwitchingProjectsReplacesEverything(t *testing.T) {
	b := signedInBackend(t)
	ctx := context.Background()
	pp, itemP := seedProject(t, b, "P")
	pq, itemQ := seedProject(t, b, "Q")
	loader := NewDetailLoader(b.Client)

	viewP := loader.Load(ctx, pp.ID)
	require.Len(t, viewP.Metrics, 1)
	assert.Equal(t, "P metric", viewP.Metrics[0].Title)

	viewQ := loader.Load(ctx, pq.ID)
	assert.Equal(t, pq.ID, viewQ.ProjectID)
	for _, m := range viewQ.Metrics {
		assert.Equal(t, pq.ID, m.ProjectID)
	}
	for _, a := range viewQ.Actions {
		assert.Equal(t, pq.ID, a.ProjectID)
	}
	for _, c := range viewQ.Comments {
		assert.Equal(t, itemQ.ID, c.TimelineItemID)
	}
	for _, d := range viewQ.Documents {
		assert.Equal(t, itemQ.ID, d.TimelineItemID)
	}
	require.Len(t, viewQ.Timeline, 1)
	assert.Equal(t, itemQ.ID, viewQ.Timeline[0].ID)
	assert.NotContains(t, viewQ.Tasks, itemP.ID)
	assert.Len(t, viewQ.Tasks[itemQ.ID], 1)
}

func TestDetailLoader_FailedReadYieldsEmpty(t *testing.T) {
	b := signedInBackend(t)
	p, item := seedProject(t, b, "P")
	b.Server.FailPath("/metrics/", http.StatusInternalServerError)
	b.Server.FailPath("/tasks/", http.StatusBadGateway)

	obs := &recordingObserver{}
	view := NewDetailLoader(b.Client, obs).Load(context.Background(), p.ID)

	assert.NotNil(t, view.Metrics)
	assert.Empty(t, view.Metrics)
	assert.NotNil(t, view.Tasks[item.ID])
	assert.Empty(t, view.Tasks[item.ID])
	assert.Len(t, view.Actions, 1, "other reads are unaffected")
	assert.Len(t, view.Comments, 1)
	assert.Equal(t, 2, view.FailedReads)

	ev := obs.last()
	assert.Equal(t, "load-project-detail", ev.Name)
	assert.Equal(t, 2, ev.Fields["failed_reads"])
}

func TestDetailLoader_TimelineFailureMeansNoTaskReads(t *testing.T) {
	b := signedInBackend(t)
	p, _ := seedProject(t, b, "P")
	b.Server.FailPath("/timeline/", http.StatusInternalServerError)

	before := b.Server.Requests()
	view := NewDetailLoader(b.Client).Load(context.Background(), p.ID)

	assert.Empty(t, view.Timeline)
	assert.Empty(t, view.Tasks)
	assert.Equal(t, 5, b.Server.Requests()-before)
}

// fakeReads serves canned results and records concurrency.
type fakeReads struct {
	timelineDone atomic.Bool
	tasksEarly   atomic.Bool
	inFlight     atomic.Int32
	maxInFlight  atomic.Int32
	delay        time.Duration
	timeline     []domain.TimelineItem
}

func (f *fakeReads) enter() func() {
	n := f.inFlight.Add(1)
	for {
		cur := f.maxInFlight.Load()
		if n <= cur || f.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	time.Sleep(f.delay)
	return func() { f.inFlight.Add(-1) }
}

func (f *fakeReads) ListMetrics(context.Context, string) ([]domain.Metric, error) {
	defer f.enter()()
	return nil, nil
}

func (f *fakeReads) ListActions(context.Context, string) ([]domain.Action, error) {
	defer f.enter()()
	return nil, errors.New("boom")
}

func (f *fakeReads) ListTimeline(context.Context, string) ([]domain.TimelineItem, error) {
	defer f.enter()()
	defer f.timelineDone.Store(true)
	return f.timeline, nil
}

func (f *fakeReads) ListTasks(_ context.Context, id string) ([]domain.Task, error) {
	if !f.timelineDone.Load() {
		f.tasksEarly.Store(true)
	}
	defer f.enter()()
	if id == "t2" {
		return nil, nil
	}
	return []domain.Task{{ID: "k-" + id, TimelineItemID: id}}, nil
}

func (f *fakeReads) ListComments(context.Context, string) ([]domain.Comment, error) {
	defer f.enter()()
	return nil, nil
}

func (f *fakeReads) ListDocuments(context.Context, string) ([]domain.Document, error) {
	defer f.enter()()
	return nil, nil
}

func TestDetailLoader_WavesAndNullBodies(t *testing.T) {
	fake := &fakeReads{
		delay:    30 * time.Millisecond,
		timeline: []domain.TimelineItem{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}},
	}
	view := NewDetailLoader(fake).Load(context.Background(), "P")

	assert.False(t, fake.tasksEarly.Load(), "task reads start after the timeline read")
	assert.Greater(t, fake.maxInFlight.Load(), int32(1), "reads run concurrently")

	assert.NotNil(t, view.Metrics)
	assert.NotNil(t, view.Actions)
	assert.NotNil(t, view.Comments)
	assert.NotNil(t, view.Documents)
	assert.Equal(t, 1, view.FailedReads)

	assert.Len(t, view.Tasks["t1"], 1)
	assert.NotNil(t, view.Tasks["t2"])
	assert.Empty(t, view.Tasks["t2"])
	assert.Equal(t, "k-t3", view.Tasks["t3"][0].ID)
}

func TestDetailLoader_GenerationGuard(t *testing.T) {
	loader := NewDetailLoader(&fakeReads{})

	genP := loader.Begin("P")
	assert.True(t, loader.Current(genP))

	genQ := loader.Begin("Q")
	assert.False(t, loader.Current(genP), "P's load is stale once Q was requested")
	assert.True(t, loader.Current(genQ))
	assert.Equal(t, "Q", genQ.ProjectID)
}

func TestDetailLoader_GenerationGuardConcurrent(t *testing.T) {
	loader := NewDetailLoader(&fakeReads{})
	var wg sync.WaitGroup
	gens := make([]Generation, 50)
	for i := range gens {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gens[i] = loader.Begin("P")
		}()
	}
	wg.Wait()

	current := 0
	for _, g := range gens {
		if loader.Current(g) {
			current++
		}
	}
	assert.Equal(t, 1, current)
}
