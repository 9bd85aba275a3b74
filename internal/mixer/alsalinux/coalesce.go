package alsalinux

import "time"

// minNotifyInterval spaces coalesced notifications; bursts of hardware
// events inside the window collapse into the pending signal.
const minNotifyInterval = 70 * time.Millisecond

// notifyCoalescer turns batches of drained hardware events into a lossy
// "something changed" signal. Delivery is non-blocking: a full channel
// drops the signal, and deliveries inside the spacing window are
// suppressed, so a burst collapses into at most one notification.
type notifyCoalescer struct {
	minInterval  time.Duration
	lastNotified time.Time
}

func newNotifyCoalescer(minInterval time.Duration) *notifyCoalescer {
	return &notifyCoalescer{minInterval: minInterval}
}

// offer reports whether a signal was delivered for a drain of handled
// events observed at now. onChange, if non-nil, runs only on delivery.
// Suppressed and dropped offers leave the spacing clock untouched.
func (n *notifyCoalescer) offer(signal chan<- struct{}, handled int, now time.Time, onChange func()) bool {
	if handled == 0 {
		return false
	}
	if now.Sub(n.lastNotified) < n.minInterval {
		return false
	}
	select {
	case signal <- struct{}{}:
		n.lastNotified = now
		if onChange != nil {
			onChange()
		}
		return true
	default:
		// Receiver has not consumed the previous signal; drop.
		return false
	}
}
