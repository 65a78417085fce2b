package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const wait = 40 * time.Millisecond

func TestRapidTriggersFireOnce(t *testing.T) {
	var calls atomic.Int32
	fired := make(chan time.Time, 4)
	d := New(wait, func() {
		calls.Add(1)
		fired <- time.Now()
	})

	var last time.Time
	for i := 0; i < 5; i++ {
		last = time.Now()
		d.Trigger()
		time.Sleep(wait / 4)
	}

	select {
	case at := <-fired:
		assert.GreaterOrEqual(t, at.Sub(last), wait, "fired before the quiet period elapsed")
	case <-time.After(time.Second):
		t.Fatal("debounced function never ran")
	}

	time.Sleep(3 * wait)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSeparatedTriggersFireEach(t *testing.T) {
	var calls atomic.Int32
	d := New(wait, func() { calls.Add(1) })

	d.Trigger()
	time.Sleep(3 * wait)
	d.Trigger()
	time.Sleep(3 * wait)

	assert.Equal(t, int32(2), calls.Load())
}

func TestTriggerAfterStopFiresOnce(t *testing.T) {
	var calls atomic.Int32
	d := New(wait, func() { calls.Add(1) })

	d.Trigger()
	d.Stop()
	d.Trigger()
	time.Sleep(3 * wait)

	require.Equal(t, int32(1), calls.Load())
}

func TestStopCancels(t *testing.T) {
	var calls atomic.Int32
	d := New(wait, func() { calls.Add(1) })

	d.Trigger()
	d.Stop()
	time.Sleep(3 * wait)

	assert.Zero(t, calls.Load())
}

func TestDefaultWait(t *testing.T) {
	d := New(0, func() {})
	assert.Equal(t, DefaultWait, d.wait)
}
