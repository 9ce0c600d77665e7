package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/styring/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

// signedInBackend starts a dev backend with a registered, signed-in user.
func signedInBackend(t *testing.T) *testutil.Backend {
	t.Helper()
	b := testutil.NewBackend(t)
	b.SignUp(t, "revisor@example.no", "hemmelig")
	return b
}
