// Package scale converts between a control's raw integer range, its
// device-reported decibel span and a normalized 0..1 position.
//
// Decibel spans are expressed in centibels (1/100 dB), so the amplitude
// ratio for a span value db is 10^(db/6000). When a control carries no
// decibel span, or the span is degenerate, all functions fall back to a
// plain linear mapping over the raw range.
package scale

import (
	"math"

	"github.com/leandrodaf/mixer/sdk/contracts"
)

// ProgressFromValue maps a raw control value onto a normalized position
// in [0,1], following the element's decibel law when db is non-nil.
func ProgressFromValue(value, min, max int64, db *contracts.DBRange) float64 {
	if max <= min {
		return 0
	}
	if db != nil && db.MaxDB > db.MinDB {
		rawPos := float64(clampInt64(value-min, 0, max-min)) / float64(max-min)
		dbVal := float64(db.MinDB) + rawPos*float64(db.MaxDB-db.MinDB)
		ampMin := math.Pow(10, float64(db.MinDB)/6000.0)
		ampMax := math.Pow(10, float64(db.MaxDB)/6000.0)
		amp := math.Pow(10, dbVal/6000.0)
		denom := ampMax - ampMin
		if denom > math.SmallestNonzeroFloat64 {
			return clampFloat((amp-ampMin)/denom, 0, 1)
		}
	}
	return clampFloat(float64(value-min)/float64(max-min), 0, 1)
}

// ValueFromProgress is the exact inverse of ProgressFromValue: it maps a
// normalized position back onto the raw range, rounding to the nearest
// integer and clamping to [min,max]. A non-finite or non-positive
// intermediate amplitude falls back to the linear mapping.
func ValueFromProgress(progress float64, min, max int64, db *contracts.DBRange) int64 {
	if max <= min {
		return min
	}
	n := clampFloat(progress, 0, 1)
	if db != nil && db.MaxDB > db.MinDB {
		ampMin := math.Pow(10, float64(db.MinDB)/6000.0)
		ampMax := math.Pow(10, float64(db.MaxDB)/6000.0)
		amp := ampMin + n*(ampMax-ampMin)
		if !math.IsInf(amp, 0) && !math.IsNaN(amp) && amp > 0 {
			dbVal := 6000.0 * math.Log10(amp)
			rawPos := clampFloat((dbVal-float64(db.MinDB))/float64(db.MaxDB-db.MinDB), 0, 1)
			raw := float64(min) + rawPos*float64(max-min)
			return int64(clampFloat(math.Round(raw), float64(min), float64(max)))
		}
	}
	raw := float64(min) + n*float64(max-min)
	return int64(clampFloat(math.Round(raw), float64(min), float64(max)))
}

// Percent exposes the same decibel-aware position as an integer 0-100
// label. The linear fallback uses wide integer arithmetic so large raw
// spans cannot overflow.
func Percent(value, min, max int64, db *contracts.DBRange) int64 {
	if max <= min {
		return 0
	}
	if db != nil && db.MaxDB > db.MinDB {
		pos := float64(clampInt64(value-min, 0, max-min)) / float64(max-min)
		dbVal := float64(db.MinDB) + pos*float64(db.MaxDB-db.MinDB)
		ampMin := math.Pow(10, float64(db.MinDB)/6000.0)
		ampMax := math.Pow(10, float64(db.MaxDB)/6000.0)
		amp := math.Pow(10, dbVal/6000.0)
		denom := ampMax - ampMin
		if denom > math.SmallestNonzeroFloat64 {
			return int64(clampFloat(math.Round((amp-ampMin)/denom*100), 0, 100))
		}
	}
	span := uint64(max - min)
	pos := uint64(clampInt64(value-min, 0, max-min))
	// pos*100 can overflow int64 on huge spans; widen through uint64 and
	// pre-divide when even that is not enough.
	var p uint64
	if pos <= math.MaxUint64/100 {
		p = pos * 100 / span
	} else {
		p = pos / (span / 100)
	}
	if p > 100 {
		return 100
	}
	return int64(p)
}

func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
