package contracts

// CardInfo contains information about one sound card exposed by the host
// audio subsystem.
type CardInfo struct {
	Index uint32 // Card index; the card is addressed as "hw:<Index>".
	Name  string // Human-readable card name reported by the driver.
}
