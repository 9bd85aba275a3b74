package contracts

// ClientMixer defines the control-plane operations for one device's
// onboard mixer.
//
// Catalog, read and write calls are synchronous and must stay on the
// caller's goroutine; only the change watcher runs in the background, on
// its own native handle.
type ClientMixer interface {
	// Card returns the selected card.
	Card() CardInfo

	// ListCards enumerates the available sound cards.
	ListCards() ([]CardInfo, error)

	// ListControls builds the full sorted control catalog and repopulates
	// the kind cache used by the write path.
	ListControls() ([]ControlDescriptor, error)

	// ApplyValues writes values to the element identified by numid, with
	// a single verify-and-retry round. Missing channels reuse channel 0's
	// input value.
	ApplyValues(numid uint32, values []string) error

	// ReloadControl re-reads one element's values; all other descriptor
	// fields are preserved. Cheaper than a full rebuild after a write.
	ReloadControl(ctrl ControlDescriptor) (ControlDescriptor, error)

	// RefreshControlValues re-reads every descriptor's values in place and
	// reports how many changed, so callers can skip redundant work.
	RefreshControlValues(ctrls []ControlDescriptor) (int, error)

	// SetFavorite records the caller-owned favorite flag for a numid. The
	// flag is applied to catalogs built afterwards.
	SetFavorite(numid uint32, favorite bool)

	// StartWatch starts the coalescing change watcher. The returned
	// channel has capacity 1 and carries a lossy "something changed"
	// signal; onChange, if non-nil, is invoked for each delivered signal.
	StartWatch(onChange func()) (<-chan struct{}, error)

	// Stop terminates the watcher and releases native handles.
	Stop() error
}
