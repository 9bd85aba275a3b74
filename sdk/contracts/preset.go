package contracts

// PresetControlValue is the flat per-control slice of a preset: the numid
// and the values to apply, nothing else.
type PresetControlValue struct {
	Numid  uint32   `json:"numid"`
	Values []string `json:"values"`
}

// PresetFile is the JSON preset artifact shared with external tooling.
// The SDK only projects catalogs into this shape and applies it back by
// numid; it does not own the format's evolution.
type PresetFile struct {
	SchemaVersion uint32               `json:"schema_version"`
	CardName      string               `json:"card_name"`
	Controls      []PresetControlValue `json:"controls"`
}
