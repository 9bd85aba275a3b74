package alsalinux

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifyCoalescerDropsWhenChannelFull(t *testing.T) {
	assert := assert.New(t)

	signal := make(chan struct{}, 1)
	coalescer := newNotifyCoalescer(minNotifyInterval)
	base := time.Now()

	assert.True(coalescer.offer(signal, 1, base, nil))
	assert.Len(signal, 1)

	// The pending signal was never consumed; well past the spacing window
	// the next delivery drops instead of blocking or queueing.
	assert.False(coalescer.offer(signal, 5, base.Add(time.Second), nil))
	assert.Len(signal, 1)

	<-signal
	assert.True(coalescer.offer(signal, 1, base.Add(2*time.Second), nil))
}

func TestNotifyCoalescerSpacingWindow(t *testing.T) {
	assert := assert.New(t)

	signal := make(chan struct{}, 1)
	coalescer := newNotifyCoalescer(minNotifyInterval)
	base := time.Now()

	assert.True(coalescer.offer(signal, 1, base, nil))
	<-signal

	assert.False(coalescer.offer(signal, 1, base.Add(30*time.Millisecond), nil), "burst inside the window collapses")
	assert.False(coalescer.offer(signal, 1, base.Add(69*time.Millisecond), nil))
	assert.True(coalescer.offer(signal, 1, base.Add(minNotifyInterval), nil))
}

func TestNotifyCoalescerSuppressionKeepsSpacingClock(t *testing.T) {
	assert := assert.New(t)

	signal := make(chan struct{}, 1)
	coalescer := newNotifyCoalescer(minNotifyInterval)
	base := time.Now()

	assert.True(coalescer.offer(signal, 1, base, nil))
	<-signal

	// A suppressed offer must not push the window forward.
	assert.False(coalescer.offer(signal, 1, base.Add(40*time.Millisecond), nil))
	assert.True(coalescer.offer(signal, 1, base.Add(80*time.Millisecond), nil))
}

func TestNotifyCoalescerIgnoresEmptyDrain(t *testing.T) {
	assert := assert.New(t)

	signal := make(chan struct{}, 1)
	coalescer := newNotifyCoalescer(minNotifyInterval)

	assert.False(coalescer.offer(signal, 0, time.Now(), nil))
	assert.Len(signal, 0)
}

func TestNotifyCoalescerOnChangeRunsOnlyOnDelivery(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	onChange := func() { calls++ }
	signal := make(chan struct{}, 1)
	coalescer := newNotifyCoalescer(minNotifyInterval)
	base := time.Now()

	coalescer.offer(signal, 1, base, onChange)
	coalescer.offer(signal, 1, base.Add(time.Second), onChange) // dropped, channel full
	assert.Equal(1, calls)

	<-signal
	coalescer.offer(signal, 1, base.Add(2*time.Second), onChange)
	assert.Equal(2, calls)
}
