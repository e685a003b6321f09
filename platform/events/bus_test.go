package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bookingtour_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		bus.Subscribe("thing.happened", HandlerFunc(func(ctx context.Context, event Event) error {
			wg.Done()
			return nil
		}))
	}

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "thing.happened"})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handlers were not invoked")
	}
}

func TestPublishSkipsOtherEventNames(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	called := make(chan struct{}, 1)
	bus.Subscribe("other.event", HandlerFunc(func(ctx context.Context, event Event) error {
		called <- struct{}{}
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "thing.happened"})

	select {
	case <-called:
		t.Fatal("handler for a different event name must not run")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPublishSyncJoinsErrors(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	errBoom := errors.New("boom")
	bus.Subscribe("thing.happened", HandlerFunc(func(ctx context.Context, event Event) error {
		return errBoom
	}))
	bus.Subscribe("thing.happened", HandlerFunc(func(ctx context.Context, event Event) error {
		return nil
	}))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "thing.happened"})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected joined handler error, got %v", err)
	}
}

func TestPublishSurvivesPanickingHandler(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	recovered := make(chan struct{})
	bus.Subscribe("thing.happened", HandlerFunc(func(ctx context.Context, event Event) error {
		defer close(recovered)
		panic("handler bug")
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "thing.happened"})

	select {
	case <-recovered:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not run")
	}
}
