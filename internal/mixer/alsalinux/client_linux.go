//go:build linux
// +build linux

package alsalinux

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/leandrodaf/mixer/internal/catalog"
	"github.com/leandrodaf/mixer/sdk/contracts"
)

// writeRetryBackoff models USB control-transfer latency: how long to wait
// before the single write retry when verification missed.
const writeRetryBackoff = 8 * time.Millisecond

// ClientMix manages mixer control operations on Linux through the ALSA
// control interface.
//
// It holds two native handles to the selected card: one for metadata and
// TLV (decibel) queries, one for element enumeration, read and write.
// Neither handle is shared with the change watcher, which opens its own.
type ClientMix struct {
	logger contracts.Logger
	card   contracts.CardInfo

	infoDev *ctlDevice // metadata/range queries
	elemDev *ctlDevice // element iteration, read, write

	// kindCacheByNumid is the only state shared between the catalog
	// builder and the write path. Repopulated wholesale after every
	// catalog build so write-path readers always see the last fully
	// built catalog. Best-effort: a miss degrades to clamp-free writes.
	kindMu           sync.Mutex
	kindCacheByNumid map[uint32]contracts.ControlKind

	favMu     sync.Mutex
	favorites map[uint32]bool

	watchMu     sync.Mutex
	watchSignal chan struct{}
	watchDone   chan struct{}

	stopOnce sync.Once
}

// NewMixerClient selects a card and opens the native control handles.
func NewMixerClient(options *contracts.ClientOptions) (contracts.ClientMixer, error) {
	card, err := pickCard(options)
	if err != nil {
		return nil, err
	}

	infoDev, err := openCtl(card.Index, false)
	if err != nil {
		return nil, err
	}
	elemDev, err := openCtl(card.Index, false)
	if err != nil {
		infoDev.Close()
		return nil, err
	}

	options.Logger.Info("Mixer client connected",
		options.Logger.Field().Uint32("card", card.Index),
		options.Logger.Field().String("name", card.Name))

	return &ClientMix{
		logger:           options.Logger,
		card:             card,
		infoDev:          infoDev,
		elemDev:          elemDev,
		kindCacheByNumid: map[uint32]contracts.ControlKind{},
		favorites:        map[uint32]bool{},
	}, nil
}

// detectCards enumerates the control nodes under /dev/snd.
func detectCards() ([]contracts.CardInfo, error) {
	paths, err := filepath.Glob("/dev/snd/controlC*")
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate sound cards: %w", err)
	}
	var cards []contracts.CardInfo
	for _, path := range paths {
		idx, err := strconv.ParseUint(strings.TrimPrefix(path, "/dev/snd/controlC"), 10, 32)
		if err != nil {
			continue
		}
		dev, err := openCtl(uint32(idx), false)
		if err != nil {
			continue
		}
		info, err := dev.cardInfo()
		dev.Close()
		name := "Unknown"
		if err == nil {
			name = cString(info.Name[:])
		}
		cards = append(cards, contracts.CardInfo{Index: uint32(idx), Name: name})
	}
	return cards, nil
}

// pickCard resolves the card to use: an explicit index override must
// exist; otherwise the first card whose name contains a product token
// wins, else the first enumerated card.
func pickCard(options *contracts.ClientOptions) (contracts.CardInfo, error) {
	cards, err := detectCards()
	if err != nil {
		return contracts.CardInfo{}, err
	}
	if len(cards) == 0 {
		return contracts.CardInfo{}, contracts.ErrNoCards
	}

	if options.CardIndex != nil {
		for _, c := range cards {
			if c.Index == *options.CardIndex {
				return c, nil
			}
		}
		return contracts.CardInfo{}, fmt.Errorf("%w: index %d", contracts.ErrCardNotFound, *options.CardIndex)
	}

	for _, c := range cards {
		lower := strings.ToLower(c.Name)
		for _, token := range options.ProductTokens {
			if strings.Contains(lower, strings.ToLower(token)) {
				return c, nil
			}
		}
	}
	return cards[0], nil
}

// Card returns the selected card.
func (c *ClientMix) Card() contracts.CardInfo {
	return c.card
}

// ListCards enumerates the available sound cards.
func (c *ClientMix) ListCards() ([]contracts.CardInfo, error) {
	cards, err := detectCards()
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		c.logger.Warn(contracts.ErrNoCards.Error())
		return nil, contracts.ErrNoCards
	}
	return cards, nil
}

// ListControls builds the sorted, deduplicated control catalog and
// repopulates the kind cache.
func (c *ClientMix) ListControls() ([]contracts.ControlDescriptor, error) {
	if c.elemDev == nil || c.infoDev == nil {
		return nil, contracts.ErrBackendUnavailable
	}

	ids, err := c.elemDev.elemIDs()
	if err != nil {
		return nil, err
	}

	controls := make([]contracts.ControlDescriptor, 0, len(ids))
	for _, id := range ids {
		info, err := c.elemDev.elemInfoByNumid(id.Numid)
		if err != nil {
			return nil, fmt.Errorf("element info for numid=%d: %w", id.Numid, err)
		}
		name := cString(id.Name[:])
		if name == "" {
			name = fmt.Sprintf("numid=%d", id.Numid)
		}
		kind := c.inferKindFromInfo(info)
		values, err := c.readValuesForKind(id.Numid, info.Typ, kind)
		if err != nil {
			return nil, fmt.Errorf("read values for numid=%d: %w", id.Numid, err)
		}
		controls = append(controls, contracts.ControlDescriptor{
			Numid:        id.Numid,
			Name:         name,
			Iface:        elemIfaceName(id.Iface),
			Device:       id.Device,
			Subdevice:    id.Subdevice,
			Index:        id.Index,
			Kind:         kind,
			Values:       catalog.PadValues(values, kind),
			GroupedLabel: catalog.GroupLabel(name),
		})
	}

	catalog.SortControls(controls)

	c.favMu.Lock()
	catalog.ApplyFavorites(controls, c.favorites)
	c.favMu.Unlock()

	c.refreshKindCacheByNumid(controls)
	c.logger.Debug("Catalog built", c.logger.Field().Int("controls", len(controls)))
	return controls, nil
}

// refreshKindCacheByNumid replaces the cache wholesale, never
// incrementally.
func (c *ClientMix) refreshKindCacheByNumid(controls []contracts.ControlDescriptor) {
	c.kindMu.Lock()
	defer c.kindMu.Unlock()
	c.kindCacheByNumid = make(map[uint32]contracts.ControlKind, len(controls))
	for _, ctrl := range controls {
		c.kindCacheByNumid[ctrl.Numid] = ctrl.Kind
	}
}

func (c *ClientMix) cachedKind(numid uint32) contracts.ControlKind {
	c.kindMu.Lock()
	defer c.kindMu.Unlock()
	return c.kindCacheByNumid[numid]
}

// inferKindFromInfo classifies one element, resolving the decibel span
// for integer elements and the item labels for enumerated ones.
func (c *ClientMix) inferKindFromInfo(info *sndCtlElemInfo) contracts.ControlKind {
	meta := elemMeta{typ: info.Typ, count: int(info.Count)}
	var db *contracts.DBRange
	var labels []string

	switch info.Typ {
	case elemTypeInteger, elemTypeInteger64:
		r := info.integerRange()
		meta.min, meta.max, meta.step = r.Min, r.Max, r.Step
		db = c.lookupDBRange(info.ID.Numid, meta.min, meta.max)
	case elemTypeEnumerated:
		meta.items = int(info.enumItems())
		labels = c.enumLabels(info.ID.Numid, meta.items)
	}
	return inferKind(meta, db, labels)
}

// accessTLVRead marks elements whose TLV block is readable.
const accessTLVRead uint32 = 1 << 4

// lookupDBRange resolves the decibel span for an integer element, on the
// metadata handle. Absence is not an error; it signals linear-only
// mapping.
func (c *ClientMix) lookupDBRange(numid uint32, rawMin, rawMax int64) *contracts.DBRange {
	if rawMax < rawMin {
		return nil
	}
	info, err := c.infoDev.elemInfoByNumid(numid)
	if err != nil || info.Access&accessTLVRead == 0 {
		return nil
	}
	words, err := c.infoDev.tlvWords(numid)
	if err != nil {
		return nil
	}
	return dbRangeFromTLV(words, rawMin, rawMax)
}

// enumLabels queries the device-supplied item labels; missing or failing
// entries fall back to stringified ordinals inside inferKind.
func (c *ClientMix) enumLabels(numid uint32, items int) []string {
	labels := make([]string, items)
	for i := 0; i < items; i++ {
		name, err := c.infoDev.enumItemName(numid, uint32(i))
		if err != nil {
			break
		}
		labels[i] = name
	}
	return labels
}

// readValuesForKind reads one element and serializes it per channel.
// Unknown kinds probe integer, then boolean, then enumerated, following
// the native type tag.
func (c *ClientMix) readValuesForKind(numid uint32, typ int32, kind contracts.ControlKind) ([]string, error) {
	value, err := c.elemDev.elemRead(numid)
	if err != nil {
		return nil, err
	}
	return decodeValues(value, typ, kind), nil
}

func decodeValues(value *sndCtlElemValue, typ int32, kind contracts.ControlKind) []string {
	switch k := kind.(type) {
	case contracts.IntegerKind:
		vals := make([]string, 0, k.Chans)
		for ch := 0; ch < k.Chans && ch < len(value.integers()); ch++ {
			vals = append(vals, strconv.FormatInt(value.integers()[ch], 10))
		}
		return vals
	case contracts.BooleanKind:
		vals := make([]string, 0, k.Chans)
		for ch := 0; ch < k.Chans && ch < len(value.booleans()); ch++ {
			vals = append(vals, formatBool(value.booleans()[ch] != 0))
		}
		return vals
	case contracts.EnumeratedKind:
		vals := make([]string, 0, k.Chans)
		for ch := 0; ch < k.Chans && ch < len(value.enums()); ch++ {
			vals = append(vals, enumLabel(k.Items, value.enums()[ch]))
		}
		return vals
	case contracts.UnknownKind:
		switch typ {
		case elemTypeInteger, elemTypeInteger64:
			vals := make([]string, 0, k.Chans)
			for ch := 0; ch < k.Chans && ch < len(value.integers()); ch++ {
				vals = append(vals, strconv.FormatInt(value.integers()[ch], 10))
			}
			return vals
		case elemTypeBoolean:
			vals := make([]string, 0, k.Chans)
			for ch := 0; ch < k.Chans && ch < len(value.booleans()); ch++ {
				vals = append(vals, formatBool(value.booleans()[ch] != 0))
			}
			return vals
		case elemTypeEnumerated:
			vals := make([]string, 0, k.Chans)
			for ch := 0; ch < k.Chans && ch < len(value.enums()); ch++ {
				vals = append(vals, strconv.FormatUint(uint64(value.enums()[ch]), 10))
			}
			return vals
		}
		return nil
	}
	return nil
}

// ApplyValues writes values to one element with a single verify-and-retry
// round. The contract is best effort: after the retry the call reports
// success regardless of the post-retry state, because this hardware class
// does not reliably reflect a write within one round trip.
func (c *ClientMix) ApplyValues(numid uint32, values []string) error {
	if c.elemDev == nil {
		return contracts.ErrBackendUnavailable
	}
	kind := c.cachedKind(numid)

	info, err := c.elemDev.elemInfoByNumid(numid)
	if err != nil {
		return fmt.Errorf("%w: numid=%d", contracts.ErrControlNotFound, numid)
	}
	count := int(info.Count)

	current, err := c.elemDev.elemRead(numid)
	if err != nil {
		return fmt.Errorf("read before write for numid=%d: %w", numid, err)
	}
	setValuesFromInput(current, info.Typ, count, values, kind)
	if err := c.elemDev.elemWrite(current); err != nil {
		return fmt.Errorf("write for numid=%d: %w", numid, err)
	}

	if !c.firstChannelMatchesTarget(numid, info.Typ, values, kind) {
		c.logger.Debug("Write verification mismatch; retrying once",
			c.logger.Field().Uint32("numid", numid))
		time.Sleep(writeRetryBackoff)
		retry, err := c.elemDev.elemRead(numid)
		if err != nil {
			return fmt.Errorf("read before retry for numid=%d: %w", numid, err)
		}
		setValuesFromInput(retry, info.Typ, count, values, kind)
		if err := c.elemDev.elemWrite(retry); err != nil {
			return fmt.Errorf("retry write for numid=%d: %w", numid, err)
		}
	}
	return nil
}

// setValuesFromInput mutates the composite value per channel from string
// input. Channels the caller did not supply reuse channel 0's input.
func setValuesFromInput(value *sndCtlElemValue, typ int32, count int, values []string, kind contracts.ControlKind) {
	switch typ {
	case elemTypeInteger:
		for ch := 0; ch < count && ch < len(value.integers()); ch++ {
			value.integers()[ch] = saturateInt32(parseIntegerInput(values, ch, kind))
		}
	case elemTypeInteger64:
		for ch := 0; ch < count && ch < 64; ch++ {
			value.integers()[ch] = parseIntegerInput(values, ch, kind)
		}
	case elemTypeBoolean:
		for ch := 0; ch < count && ch < len(value.booleans()); ch++ {
			if parseBoolInput(values, ch) {
				value.booleans()[ch] = 1
			} else {
				value.booleans()[ch] = 0
			}
		}
	case elemTypeEnumerated:
		for ch := 0; ch < count && ch < len(value.enums()); ch++ {
			value.enums()[ch] = resolveEnumIndex(values, ch, kind)
		}
	}
}

// firstChannelMatchesTarget re-reads channel 0 and compares it to the
// expected, already-clamped target. Channels beyond 0 have no
// verification guarantee.
func (c *ClientMix) firstChannelMatchesTarget(numid uint32, typ int32, values []string, kind contracts.ControlKind) bool {
	after, err := c.elemDev.elemRead(numid)
	if err != nil {
		return false
	}
	switch typ {
	case elemTypeInteger:
		return after.integers()[0] == saturateInt32(parseIntegerInput(values, 0, kind))
	case elemTypeInteger64:
		return after.integers()[0] == parseIntegerInput(values, 0, kind)
	case elemTypeBoolean:
		return (after.booleans()[0] != 0) == parseBoolInput(values, 0)
	case elemTypeEnumerated:
		return after.enums()[0] == resolveEnumIndex(values, 0, kind)
	default:
		return true
	}
}

// ReloadControl re-reads one element's values by numid; every other
// descriptor field is preserved.
func (c *ClientMix) ReloadControl(ctrl contracts.ControlDescriptor) (contracts.ControlDescriptor, error) {
	if c.elemDev == nil {
		return ctrl, contracts.ErrBackendUnavailable
	}
	info, err := c.elemDev.elemInfoByNumid(ctrl.Numid)
	if err != nil {
		return ctrl, fmt.Errorf("%w: numid=%d", contracts.ErrControlNotFound, ctrl.Numid)
	}
	values, err := c.readValuesForKind(ctrl.Numid, info.Typ, ctrl.Kind)
	if err != nil {
		return ctrl, fmt.Errorf("reload for numid=%d: %w", ctrl.Numid, err)
	}
	out := ctrl
	out.Values = catalog.PadValues(values, ctrl.Kind)
	return out, nil
}

// RefreshControlValues re-reads every descriptor's values in a single
// read-only pass and reports how many changed.
func (c *ClientMix) RefreshControlValues(ctrls []contracts.ControlDescriptor) (int, error) {
	if c.elemDev == nil {
		return 0, contracts.ErrBackendUnavailable
	}
	ids, err := c.elemDev.elemIDs()
	if err != nil {
		return 0, err
	}
	indexByNumid := make(map[uint32]int, len(ctrls))
	for i, ctrl := range ctrls {
		indexByNumid[ctrl.Numid] = i
	}

	updated := 0
	for _, id := range ids {
		i, ok := indexByNumid[id.Numid]
		if !ok {
			continue
		}
		typ := nativeTypeForKind(ctrls[i].Kind)
		if typ == elemTypeNone {
			info, err := c.elemDev.elemInfoByNumid(id.Numid)
			if err != nil {
				continue
			}
			typ = info.Typ
		}
		values, err := c.readValuesForKind(id.Numid, typ, ctrls[i].Kind)
		if err != nil {
			return updated, fmt.Errorf("refresh for numid=%d: %w", id.Numid, err)
		}
		values = catalog.PadValues(values, ctrls[i].Kind)
		if !equalValues(ctrls[i].Values, values) {
			ctrls[i].Values = values
			updated++
		}
	}
	return updated, nil
}

// nativeTypeForKind recovers the native type tag for the kinds that pin
// one down; unknown kinds need a live metadata query.
func nativeTypeForKind(kind contracts.ControlKind) int32 {
	switch kind.(type) {
	case contracts.IntegerKind:
		return elemTypeInteger
	case contracts.BooleanKind:
		return elemTypeBoolean
	case contracts.EnumeratedKind:
		return elemTypeEnumerated
	default:
		return elemTypeNone
	}
}

func equalValues(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SetFavorite records the caller-owned favorite flag for a numid; it is
// stamped onto catalogs built afterwards.
func (c *ClientMix) SetFavorite(numid uint32, favorite bool) {
	c.favMu.Lock()
	defer c.favMu.Unlock()
	if favorite {
		c.favorites[numid] = true
	} else {
		delete(c.favorites, numid)
	}
}

// Stop terminates the watcher and releases the native handles. Safe to
// call more than once.
func (c *ClientMix) Stop() error {
	c.stopOnce.Do(func() {
		c.logger.Info("Stopping mixer client")
		c.watchMu.Lock()
		if c.watchDone != nil {
			close(c.watchDone)
			c.watchDone = nil
			c.watchSignal = nil
		}
		c.watchMu.Unlock()

		if c.infoDev != nil {
			c.infoDev.Close()
			c.infoDev = nil
		}
		if c.elemDev != nil {
			c.elemDev.Close()
			c.elemDev = nil
		}
	})
	return nil
}
