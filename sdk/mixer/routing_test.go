package mixer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/mixer/sdk/contracts"
	"github.com/leandrodaf/mixer/sdk/mixer"
)

func named(names ...string) []contracts.ControlDescriptor {
	ctrls := make([]contracts.ControlDescriptor, len(names))
	for i, name := range names {
		ctrls[i] = contracts.ControlDescriptor{Numid: uint32(i + 1), Name: name}
	}
	return ctrls
}

func TestBuildRoutingIndexAnalog(t *testing.T) {
	assert := assert.New(t)

	index := mixer.BuildRoutingIndex(named("AIn1 - Out1", "AIn2 - Out1 Foo", "Unrelated"))

	require.Len(t, index.AnalogRoutes, 2)
	assert.Equal(contracts.RouteRef{Input: 0, Output: 0, ControlIndex: 0}, index.AnalogRoutes[0])
	assert.Equal(contracts.RouteRef{Input: 1, Output: 0, ControlIndex: 1}, index.AnalogRoutes[1])
	assert.Empty(index.DigitalRoutes, "unrelated names contribute to neither list")
}

func TestBuildRoutingIndexAxes(t *testing.T) {
	tests := []struct {
		name    string
		ctrl    string
		analog  int
		digital int
	}{
		{"analog route", "AIn3 - Out4", 1, 0},
		{"digital route", "DIn2 - Out8", 0, 1},
		{"trailing text tolerated", "AIn1 - Out2 Playback Volume", 1, 0},
		{"effects control excluded", "Effects Volume", 0, 0},
		{"prefix must anchor", "XAIn1 - Out1", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := mixer.BuildRoutingIndex(named(tt.ctrl))
			assert.Len(t, index.AnalogRoutes, tt.analog)
			assert.Len(t, index.DigitalRoutes, tt.digital)
		})
	}
}

func TestBuildRoutingIndexSaturatingIndices(t *testing.T) {
	assert := assert.New(t)

	// A literal 0 in the name must land on index 0, never underflow.
	index := mixer.BuildRoutingIndex(named("AIn0 - Out0", "DIn12 - Out3"))

	assert.Equal(contracts.RouteRef{Input: 0, Output: 0, ControlIndex: 0}, index.AnalogRoutes[0])
	assert.Equal(contracts.RouteRef{Input: 11, Output: 2, ControlIndex: 1}, index.DigitalRoutes[0])
}

func TestBuildRoutingIndexKeepsCatalogOrder(t *testing.T) {
	index := mixer.BuildRoutingIndex(named(
		"AIn1 - Out2",
		"Mic Gain",
		"AIn1 - Out1",
		"DIn1 - Out1",
	))

	require.Len(t, index.AnalogRoutes, 2)
	assert.Equal(t, 0, index.AnalogRoutes[0].ControlIndex)
	assert.Equal(t, 2, index.AnalogRoutes[1].ControlIndex)
	require.Len(t, index.DigitalRoutes, 1)
	assert.Equal(t, 3, index.DigitalRoutes[0].ControlIndex)
}
