package scale_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leandrodaf/mixer/sdk/contracts"
	"github.com/leandrodaf/mixer/sdk/scale"
)

func TestValueFromProgressLinear(t *testing.T) {
	assert := assert.New(t)

	assert.EqualValues(50, scale.ValueFromProgress(0.5, 0, 100, nil))
	assert.EqualValues(0, scale.ValueFromProgress(0, 0, 100, nil))
	assert.EqualValues(100, scale.ValueFromProgress(1, 0, 100, nil))
	assert.EqualValues(100, scale.ValueFromProgress(2.5, 0, 100, nil), "progress clamps to 1")
	assert.EqualValues(0, scale.ValueFromProgress(-1, 0, 100, nil), "progress clamps to 0")
}

func TestDegenerateRange(t *testing.T) {
	assert := assert.New(t)

	assert.EqualValues(0, scale.ProgressFromValue(5, 10, 10, nil))
	assert.EqualValues(10, scale.ValueFromProgress(0.7, 10, 10, nil))
	assert.EqualValues(0, scale.Percent(5, 10, 10, nil))
}

func TestRoundTripWithDBRange(t *testing.T) {
	assert := assert.New(t)

	db := &contracts.DBRange{MinDB: -6000, MaxDB: 0}
	for _, p := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
		v := scale.ValueFromProgress(p, 0, 100, db)
		back := scale.ProgressFromValue(v, 0, 100, db)
		assert.InDeltaf(p, back, 0.01, "progress %v -> value %d -> %v", p, v, back)
	}
}

func TestRoundTripLinear(t *testing.T) {
	assert := assert.New(t)

	for _, p := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
		v := scale.ValueFromProgress(p, -128, 127, nil)
		back := scale.ProgressFromValue(v, -128, 127, nil)
		assert.InDelta(p, back, 1.0/255+1e-9)
	}
}

func TestDBEndpointsMapToExtremes(t *testing.T) {
	assert := assert.New(t)

	db := &contracts.DBRange{MinDB: -9000, MaxDB: 600}
	assert.EqualValues(0, scale.ValueFromProgress(0, 0, 255, db))
	assert.EqualValues(255, scale.ValueFromProgress(1, 0, 255, db))
	assert.InDelta(0, scale.ProgressFromValue(0, 0, 255, db), 1e-9)
	assert.InDelta(1, scale.ProgressFromValue(255, 0, 255, db), 1e-9)
}

func TestPercent(t *testing.T) {
	assert := assert.New(t)

	assert.EqualValues(50, scale.Percent(50, 0, 100, nil))
	assert.EqualValues(0, scale.Percent(-10, 0, 100, nil), "value clamps into range")
	assert.EqualValues(100, scale.Percent(200, 0, 100, nil))

	// Wide spans must not overflow the linear fallback.
	assert.EqualValues(50, scale.Percent(0, math.MinInt64/2, math.MaxInt64/2, nil))

	// The dB-aware label compresses low raw positions.
	db := &contracts.DBRange{MinDB: -6000, MaxDB: 0}
	assert.Less(scale.Percent(50, 0, 100, db), int64(50))
	assert.EqualValues(100, scale.Percent(100, 0, 100, db))
	assert.EqualValues(0, scale.Percent(0, 0, 100, db))
}
