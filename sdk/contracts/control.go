package contracts

// DBRange is a device-reported decibel span in centibels (1/100 dB),
// describing the non-linear law relating a control's raw range to
// perceived loudness.
type DBRange struct {
	MinDB int64
	MaxDB int64
}

// ControlKind classifies a control element. It is a closed set: the four
// implementations below are the only ones, so consumers can type-switch
// over every variant.
//
// A kind is established once per numid and never mutated afterwards.
type ControlKind interface {
	// Channels returns how many per-channel values the element carries.
	Channels() int

	isControlKind()
}

// IntegerKind is a bounded integer control, e.g. a volume attenuator.
type IntegerKind struct {
	Min   int64
	Max   int64
	Step  int64
	Chans int
	// DB is the element's decibel span, when the device reports one.
	// Nil means the raw range maps linearly.
	DB *DBRange
}

// BooleanKind is an on/off switch.
type BooleanKind struct {
	Chans int
}

// EnumeratedKind is a selector over a fixed list of items.
type EnumeratedKind struct {
	Items []string
	Chans int
}

// UnknownKind covers native element types the SDK does not model.
// Reads and writes fall back to best-effort per-channel probing.
type UnknownKind struct {
	TypeName string
	Chans    int
}

func (k IntegerKind) Channels() int    { return k.Chans }
func (k BooleanKind) Channels() int    { return k.Chans }
func (k EnumeratedKind) Channels() int { return k.Chans }
func (k UnknownKind) Channels() int    { return k.Chans }

func (IntegerKind) isControlKind()    {}
func (BooleanKind) isControlKind()    {}
func (EnumeratedKind) isControlKind() {}
func (UnknownKind) isControlKind()    {}

// ControlDescriptor describes one addressable control element of the
// device's mixer.
type ControlDescriptor struct {
	// Numid is the element's stable numeric identity. It is the
	// reconciliation key across catalog rebuilds.
	Numid     uint32
	Name      string
	Iface     string
	Device    uint32
	Subdevice uint32
	Index     uint32
	Kind      ControlKind
	// Values holds one string per channel; len(Values) always equals
	// Kind.Channels() after a build or refresh.
	Values []string
	// GroupedLabel is a coarse classification derived from the element
	// name, carried for the caller's benefit.
	GroupedLabel string
	// Favorite is a caller-owned flag, carried forward by numid across
	// catalog rebuilds.
	Favorite bool
}
