// Package alsalinux implements the mixer client on the Linux ALSA
// control interface. Files without the _linux suffix are the pure halves
// of kind inference and the value codec, shared with tests on any
// platform.
package alsalinux

import (
	"fmt"
	"strconv"

	"github.com/leandrodaf/mixer/sdk/contracts"
)

// Native element types (snd_ctl_elem_type_t).
const (
	elemTypeNone       int32 = 0
	elemTypeBoolean    int32 = 1
	elemTypeInteger    int32 = 2
	elemTypeEnumerated int32 = 3
	elemTypeBytes      int32 = 4
	elemTypeIEC958     int32 = 5
	elemTypeInteger64  int32 = 6
)

func elemTypeName(typ int32) string {
	switch typ {
	case elemTypeNone:
		return "None"
	case elemTypeBoolean:
		return "Boolean"
	case elemTypeInteger:
		return "Integer"
	case elemTypeEnumerated:
		return "Enumerated"
	case elemTypeBytes:
		return "Bytes"
	case elemTypeIEC958:
		return "IEC958"
	case elemTypeInteger64:
		return "Integer64"
	default:
		return fmt.Sprintf("Type%d", typ)
	}
}

// elemMeta is the backend-independent view of one element's metadata,
// enough to classify it.
type elemMeta struct {
	typ   int32
	count int
	min   int64
	max   int64
	step  int64
	items int
}

// inferKind classifies a raw element. db is the resolved decibel span for
// integer elements (nil when absent); itemLabels are the device-supplied
// enumerated labels, padded with stringified ordinals when missing.
func inferKind(meta elemMeta, db *contracts.DBRange, itemLabels []string) contracts.ControlKind {
	channels := meta.count
	if channels < 1 {
		channels = 1
	}
	switch meta.typ {
	case elemTypeInteger, elemTypeInteger64:
		min, max, step := normalizeIntRange(meta.min, meta.max, meta.step)
		return contracts.IntegerKind{Min: min, Max: max, Step: step, Chans: channels, DB: db}
	case elemTypeBoolean:
		return contracts.BooleanKind{Chans: channels}
	case elemTypeEnumerated:
		items := meta.items
		if items < 1 {
			items = 1
		}
		labels := make([]string, items)
		for i := range labels {
			if i < len(itemLabels) && itemLabels[i] != "" {
				labels[i] = itemLabels[i]
			} else {
				labels[i] = strconv.Itoa(i)
			}
		}
		return contracts.EnumeratedKind{Items: labels, Chans: channels}
	default:
		return contracts.UnknownKind{TypeName: elemTypeName(meta.typ), Chans: channels}
	}
}

// normalizeIntRange repairs degenerate device-reported ranges: a
// zero-width or inverted range becomes [min, min+1], a zero step becomes 1.
func normalizeIntRange(min, max, step int64) (int64, int64, int64) {
	if max <= min {
		max = min + 1
	}
	if step <= 0 {
		step = 1
	}
	return min, max, step
}

// TLV metadata types carrying decibel information
// (include/uapi/sound/tlv.h).
const (
	tlvtDBScale      uint32 = 1
	tlvtDBLinear     uint32 = 2
	tlvtDBRange      uint32 = 3
	tlvtDBMinMax     uint32 = 4
	tlvtDBMinMaxMute uint32 = 5
)

// dbRangeFromTLV resolves an element's decibel span from its raw TLV
// block. Explicit min/max TLV forms are the direct range query, the
// DB_SCALE form derives the span by converting the raw endpoints
// individually, and the compound DB_RANGE form folds the spans of its
// sub-ranges. The span is accepted only when maxDB > minDB.
func dbRangeFromTLV(words []uint32, rawMin, rawMax int64) *contracts.DBRange {
	if len(words) < 4 || rawMax < rawMin {
		return nil
	}
	typ := words[0]
	payload := words[2:]
	// The embedded byte length at words[1] bounds the payload; trusting
	// the buffer size alone would read stale words on a short block.
	length := int(words[1] / 4)
	if length < 2 || length > len(payload) {
		return nil
	}
	payload = payload[:length]
	var minDB, maxDB int64
	switch typ {
	case tlvtDBLinear, tlvtDBMinMax, tlvtDBMinMaxMute:
		minDB = int64(int32(payload[0]))
		maxDB = int64(int32(payload[1]))
	case tlvtDBScale:
		base := int64(int32(payload[0]))
		step := int64(int32(payload[1] & 0xffff))
		minDB = dbFromRawScale(rawMin, rawMin, base, step)
		maxDB = dbFromRawScale(rawMax, rawMin, base, step)
	case tlvtDBRange:
		return foldDBRangeEntries(payload, rawMin, rawMax)
	default:
		return nil
	}
	if maxDB > minDB {
		return &contracts.DBRange{MinDB: minDB, MaxDB: maxDB}
	}
	return nil
}

// foldDBRangeEntries resolves a compound DB_RANGE payload: a sequence of
// (raw min, raw max, embedded TLV block) entries, each describing one
// slice of the raw range. The result is the union of the entry spans
// that resolve, intersected with the element's own raw range.
func foldDBRangeEntries(payload []uint32, rawMin, rawMax int64) *contracts.DBRange {
	var folded *contracts.DBRange
	for i := 0; i+4 <= len(payload); {
		subMin := int64(int32(payload[i]))
		subMax := int64(int32(payload[i+1]))
		subWords := int(payload[i+3] / 4)
		if i+4+subWords > len(payload) {
			break
		}
		entry := payload[i+2 : i+4+subWords]
		i += 4 + subWords

		if subMin < rawMin {
			subMin = rawMin
		}
		if subMax > rawMax {
			subMax = rawMax
		}
		sub := dbRangeFromTLV(entry, subMin, subMax)
		if sub == nil {
			continue
		}
		if folded == nil {
			folded = &contracts.DBRange{MinDB: sub.MinDB, MaxDB: sub.MaxDB}
			continue
		}
		if sub.MinDB < folded.MinDB {
			folded.MinDB = sub.MinDB
		}
		if sub.MaxDB > folded.MaxDB {
			folded.MaxDB = sub.MaxDB
		}
	}
	if folded == nil || folded.MaxDB <= folded.MinDB {
		return nil
	}
	return folded
}

// dbFromRawScale converts one raw value to centibels under a DB_SCALE
// law: base decibels at rawMin, one step per raw unit.
func dbFromRawScale(raw, rawMin, base, step int64) int64 {
	return base + (raw-rawMin)*step
}
