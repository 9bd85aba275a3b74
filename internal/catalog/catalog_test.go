package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leandrodaf/mixer/internal/catalog"
	"github.com/leandrodaf/mixer/sdk/contracts"
)

func TestGroupLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"AIn1 - Out1", "Analog Routing"},
		{"DIn2 - Out3", "Digital Routing"},
		{"Master FX Send", "Effects"},
		{"Reverb Effect Level", "Effects"},
		{"Master Playback Volume", "Other"},
		{"", "Other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, catalog.GroupLabel(tt.name), "name %q", tt.name)
	}
}

func TestSortControlsByNameThenNumid(t *testing.T) {
	assert := assert.New(t)

	ctrls := []contracts.ControlDescriptor{
		{Numid: 9, Name: "B"},
		{Numid: 2, Name: "A"},
		{Numid: 1, Name: "B"},
	}
	catalog.SortControls(ctrls)

	assert.Equal(uint32(2), ctrls[0].Numid)
	assert.Equal(uint32(1), ctrls[1].Numid)
	assert.Equal(uint32(9), ctrls[2].Numid)

	// Sorting again must not reorder anything: consumers assume stable
	// iteration across rebuilds.
	before := append([]contracts.ControlDescriptor(nil), ctrls...)
	catalog.SortControls(ctrls)
	assert.Equal(before, ctrls)
}

func TestPadValues(t *testing.T) {
	assert := assert.New(t)

	intKind := contracts.IntegerKind{Min: 0, Max: 100, Step: 1, Chans: 2}
	assert.Equal([]string{"7", "0"}, catalog.PadValues([]string{"7"}, intKind))
	assert.Equal([]string{"0", "0"}, catalog.PadValues(nil, intKind))

	boolKind := contracts.BooleanKind{Chans: 2}
	assert.Equal([]string{"on", "off"}, catalog.PadValues([]string{"on"}, boolKind))

	unknownKind := contracts.UnknownKind{TypeName: "Bytes", Chans: 3}
	assert.Equal([]string{"0", "0", "0"}, catalog.PadValues(nil, unknownKind))

	// Values already at channel count pass through untouched.
	full := []string{"1", "2"}
	assert.Equal(full, catalog.PadValues(full, intKind))
}

func TestPadValuesSatisfiesChannelInvariant(t *testing.T) {
	kinds := []contracts.ControlKind{
		contracts.IntegerKind{Min: 0, Max: 10, Step: 1, Chans: 1},
		contracts.BooleanKind{Chans: 2},
		contracts.EnumeratedKind{Items: []string{"a", "b"}, Chans: 4},
		contracts.UnknownKind{TypeName: "IEC958", Chans: 1},
	}
	for _, kind := range kinds {
		got := catalog.PadValues(nil, kind)
		assert.Len(t, got, kind.Channels())
	}
}

func TestApplyFavorites(t *testing.T) {
	assert := assert.New(t)

	ctrls := []contracts.ControlDescriptor{
		{Numid: 1, Name: "A"},
		{Numid: 2, Name: "B", Favorite: true}, // stale flag from a previous build
		{Numid: 3, Name: "C"},
	}
	catalog.ApplyFavorites(ctrls, map[uint32]bool{1: true})

	assert.True(ctrls[0].Favorite, "carried forward by numid")
	assert.False(ctrls[1].Favorite, "numid not in favorites resets to default")
	assert.False(ctrls[2].Favorite, "newly appearing numid defaults to false")
}
