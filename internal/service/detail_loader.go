package service

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/styring/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Generation identifies one requested load. Only the most recent generation
// handed out by Begin is current.
type Generation struct {
	Seq       uint64
	ProjectID string
}

// DetailLoader assembles the full read state of one project.
//
// Load runs in two waves: the five project-scoped collections concurrently,
// then one task read per timeline item concurrently. A read that fails or
// returns null contributes an empty collection; Load never returns an error.
type DetailLoader struct {
	backend  ReadBackend
	observer UseCaseObserver
	latest   atomic.Uint64
}

func NewDetailLoader(backend ReadBackend, observers ...UseCaseObserver) *DetailLoader {
	return &DetailLoader{backend: backend, observer: useCaseObserverOrNoop(observers)}
}

// Begin marks the start of a load for projectID and supersedes every
// earlier generation.
func (l *DetailLoader) Begin(projectID string) Generation {
	return Generation{Seq: l.latest.Add(1), ProjectID: projectID}
}

// Current reports whether gen is still the latest generation. A view loaded
// under a stale generation must be discarded.
func (l *DetailLoader) Current(gen Generation) bool {
	return gen.Seq == l.latest.Load()
}

// Load fetches and assembles the project view. The result is always
// complete and replaces any previous view wholesale.
func (l *DetailLoader) Load(ctx context.Context, projectID string) *domain.ProjectView {
	fields := map[string]any{"project_id": projectID}
	done := track(ctx, l.observer, "load-project-detail", fields)

	var failed atomic.Int32
	view := domain.NewProjectView(projectID)

	var wave1 errgroup.Group
	wave1.Go(func() error {
		view.Metrics = readAll(ctx, &failed, func(ctx context.Context) ([]domain.Metric, error) {
			return l.backend.ListMetrics(ctx, projectID)
		})
		return nil
	})
	wave1.Go(func() error {
		view.Actions = readAll(ctx, &failed, func(ctx context.Context) ([]domain.Action, error) {
			return l.backend.ListActions(ctx, projectID)
		})
		return nil
	})
	wave1.Go(func() error {
		view.Timeline = readAll(ctx, &failed, func(ctx context.Context) ([]domain.TimelineItem, error) {
			return l.backend.ListTimeline(ctx, projectID)
		})
		return nil
	})
	wave1.Go(func() error {
		view.Comments = readAll(ctx, &failed, func(ctx context.Context) ([]domain.Comment, error) {
			return l.backend.ListComments(ctx, projectID)
		})
		return nil
	})
	wave1.Go(func() error {
		view.Documents = readAll(ctx, &failed, func(ctx context.Context) ([]domain.Document, error) {
			return l.backend.ListDocuments(ctx, projectID)
		})
		return nil
	})
	_ = wave1.Wait()

	tasks := make([][]domain.Task, len(view.Timeline))
	var wave2 errgroup.Group
	for i, item := range view.Timeline {
		wave2.Go(func() error {
			tasks[i] = readAll(ctx, &failed, func(ctx context.Context) ([]domain.Task, error) {
				return l.backend.ListTasks(ctx, item.ID)
			})
			return nil
		})
	}
	_ = wave2.Wait()

	for i, item := range view.Timeline {
		view.Tasks[item.ID] = tasks[i]
	}

	view.FailedReads = int(failed.Load())
	fields["timeline_items"] = len(view.Timeline)
	fields["failed_reads"] = view.FailedReads
	done(nil)
	return view
}

// readAll performs one read, mapping failure and null to an empty slice.
func readAll[T any](ctx context.Context, failed *atomic.Int32, fetch func(context.Context) ([]T, error)) []T {
	items, err := fetch(ctx)
	if err != nil {
		failed.Add(1)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}
