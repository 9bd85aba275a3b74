//go:build linux
// +build linux

package alsalinux

import (
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// watchPollTimeout bounds the blocking wait so the watcher periodically
// re-checks for shutdown.
const watchPollTimeout = 1000 // milliseconds

// sndrvCtlEventElem is the event type for element changes.
const sndrvCtlEventElem int32 = 0

// StartWatch starts the background change watcher on its own handle to
// the card's event stream. The returned channel has capacity 1: a full
// channel drops new signals, so it means "something changed", never "N
// things changed". onChange, if non-nil, runs on the watcher goroutine
// for each delivered signal.
func (c *ClientMix) StartWatch(onChange func()) (<-chan struct{}, error) {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()

	if c.watchSignal != nil {
		c.logger.Warn("Watch already started")
		return c.watchSignal, nil
	}

	// Concurrent calls on one native handle are unsafe; the watcher gets
	// its own instead of contending for the client's.
	dev, err := openCtl(c.card.Index, true)
	if err != nil {
		return nil, err
	}
	if err := dev.subscribeEvents(1); err != nil {
		dev.Close()
		return nil, err
	}

	signal := make(chan struct{}, 1)
	done := make(chan struct{})
	c.watchSignal = signal
	c.watchDone = done

	c.logger.Info("Change watcher started", c.logger.Field().Uint32("card", c.card.Index))
	go c.watchLoop(dev, signal, done, onChange)
	return signal, nil
}

func (c *ClientMix) watchLoop(dev *ctlDevice, signal chan struct{}, done chan struct{}, onChange func()) {
	defer dev.Close()
	coalescer := newNotifyCoalescer(minNotifyInterval)

	for {
		select {
		case <-done:
			return
		default:
		}

		fds := []unix.PollFd{{Fd: int32(dev.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, watchPollTimeout)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			c.logger.Error("Watch poll failed", c.logger.Field().Error("error", err))
			return
		}
		if n == 0 {
			continue
		}

		handled, err := drainEvents(dev)
		if err != nil {
			c.logger.Error("Watch event read failed", c.logger.Field().Error("error", err))
			return
		}
		coalescer.offer(signal, handled, time.Now(), onChange)
	}
}

// drainEvents consumes every pending event record and counts the element
// changes among them. The handle is non-blocking, so the drain never
// stalls the loop.
func drainEvents(dev *ctlDevice) (int, error) {
	var event sndCtlEvent
	buf := (*[unsafe.Sizeof(sndCtlEvent{})]byte)(unsafe.Pointer(&event))[:]
	handled := 0
	for {
		n, err := unix.Read(dev.fd, buf)
		if err == unix.EAGAIN {
			return handled, nil
		}
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return handled, err
		}
		if n < int(unsafe.Sizeof(sndCtlEvent{})) {
			return handled, nil
		}
		if event.Typ == sndrvCtlEventElem {
			handled++
		}
	}
}
