package alsalinux

import (
	"math"
	"strconv"
	"strings"

	"github.com/leandrodaf/mixer/sdk/contracts"
)

// Value codec: string form <-> device-native form, per channel. Malformed
// input never propagates; it degrades to the kind's default.

// valueAt returns the input for one channel, reusing channel 0's input
// when the caller supplied fewer values, and the kind default when none
// were supplied at all.
func valueAt(values []string, ch int, def string) string {
	if ch < len(values) {
		return values[ch]
	}
	if len(values) > 0 {
		return values[0]
	}
	return def
}

// parseIntegerInput parses one channel's input and clamps it to the
// cached kind's range. Without a cached integer kind the value passes
// through clamp-free. Malformed input becomes 0.
func parseIntegerInput(values []string, ch int, kind contracts.ControlKind) int64 {
	parsed, err := strconv.ParseInt(strings.TrimSpace(valueAt(values, ch, "0")), 10, 64)
	if err != nil {
		parsed = 0
	}
	if ik, ok := kind.(contracts.IntegerKind); ok {
		parsed = clampInt64(parsed, ik.Min, ik.Max)
	}
	return parsed
}

// saturateInt32 narrows to the 32-bit native width, saturating at the
// representable extremes instead of wrapping.
func saturateInt32(v int64) int64 {
	if v < math.MinInt32 {
		return math.MinInt32
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return v
}

// parseBoolInput maps one channel's input onto the native switch state.
// "on", "true" and "1" (case-insensitive) are true; everything else is
// false.
func parseBoolInput(values []string, ch int) bool {
	raw := valueAt(values, ch, "off")
	return strings.EqualFold(raw, "on") || strings.EqualFold(raw, "true") || raw == "1"
}

// resolveEnumIndex resolves one channel's input to an item ordinal: a
// case-insensitive label match first, then a numeric ordinal parse, then 0.
func resolveEnumIndex(values []string, ch int, kind contracts.ControlKind) uint32 {
	raw := valueAt(values, ch, "0")
	if ek, ok := kind.(contracts.EnumeratedKind); ok {
		for i, item := range ek.Items {
			if strings.EqualFold(item, raw) {
				return uint32(i)
			}
		}
	}
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

// formatBool serializes the native switch state.
func formatBool(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// enumLabel serializes an item ordinal, falling back to the raw ordinal
// as text when it is out of range.
func enumLabel(items []string, idx uint32) string {
	if int(idx) < len(items) {
		return items[idx]
	}
	return strconv.FormatUint(uint64(idx), 10)
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
