// Package catalog holds the pure parts of catalog building: grouping,
// ordering, channel padding and favorite reconciliation. The native
// backend feeds it raw descriptors.
package catalog

import (
	"sort"
	"strings"

	"github.com/leandrodaf/mixer/sdk/contracts"
)

// GroupLabel derives the coarse classification for an element name.
func GroupLabel(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(name, "AIn"):
		return "Analog Routing"
	case strings.HasPrefix(name, "DIn"):
		return "Digital Routing"
	case strings.Contains(lower, "fx"), strings.Contains(lower, "effect"):
		return "Effects"
	default:
		return "Other"
	}
}

// SortControls orders a catalog ascending by (name, numid). This order is
// load-bearing: consumers assume stable iteration across rebuilds.
func SortControls(ctrls []contracts.ControlDescriptor) {
	sort.SliceStable(ctrls, func(i, j int) bool {
		if ctrls[i].Name != ctrls[j].Name {
			return ctrls[i].Name < ctrls[j].Name
		}
		return ctrls[i].Numid < ctrls[j].Numid
	})
}

// PadValues grows values to the kind's channel count using the kind
// default, so a descriptor never carries fewer values than channels.
func PadValues(values []string, kind contracts.ControlKind) []string {
	channels := kind.Channels()
	for len(values) < channels {
		values = append(values, defaultValue(kind))
	}
	return values
}

func defaultValue(kind contracts.ControlKind) string {
	switch kind.(type) {
	case contracts.BooleanKind:
		return "off"
	case contracts.IntegerKind, contracts.EnumeratedKind, contracts.UnknownKind:
		return "0"
	default:
		return "0"
	}
}

// ApplyFavorites stamps the caller-owned favorite flags onto a freshly
// built catalog. Numids absent from favorites default to false.
func ApplyFavorites(ctrls []contracts.ControlDescriptor, favorites map[uint32]bool) {
	for i := range ctrls {
		ctrls[i].Favorite = favorites[ctrls[i].Numid]
	}
}
