package eventbus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishReachesSubscriber(t *testing.T) {
	b := New(zaptest.NewLogger(t))
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventDirectoryLoaded, func(e DomainEvent) { got <- e })

	b.Publish(DirectoryLoadedEvent{Count: 3, Categories: 2})

	select {
	case e := <-got:
		loaded, ok := e.(DirectoryLoadedEvent)
		require.True(t, ok)
		require.Equal(t, 3, loaded.Count)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscribersOnlySeeTheirType(t *testing.T) {
	b := New(nil)
	defer b.Close()

	failed := make(chan DomainEvent, 1)
	loaded := make(chan DomainEvent, 1)
	b.Subscribe(EventDirectoryFetchFailed, func(e DomainEvent) { failed <- e })
	b.Subscribe(EventDirectoryLoaded, func(e DomainEvent) { loaded <- e })

	b.Publish(DirectoryFetchFailedEvent{Err: errors.New("boom")})

	select {
	case <-failed:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch failure was not delivered")
	}
	select {
	case <-loaded:
		t.Fatal("loaded handler saw a fetch failure")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New(nil)
	defer b.Close()

	calls := make(chan struct{}, 4)
	unsubscribe := b.Subscribe(EventPreferencesChanged, func(DomainEvent) { calls <- struct{}{} })
	unsubscribe()

	b.Publish(PreferencesChangedEvent{Theme: "dark", Palette: "default"})

	select {
	case <-calls:
		t.Fatal("handler ran after unsubscribe")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlerPanicIsContained(t *testing.T) {
	b := New(zaptest.NewLogger(t))
	defer b.Close()

	ok := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { panic("handler bug") })
	b.Subscribe(EventError, func(DomainEvent) { ok <- struct{}{} })

	b.Publish(ErrorEvent{Message: "x"})

	select {
	case <-ok:
	case <-time.After(2 * time.Second):
		t.Fatal("second handler did not run")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New(nil)
	b.Close()
	b.Close()

	require.NotPanics(t, func() { b.Publish(ConfigSavedEvent{Path: "x"}) })
}
