package mixer

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/leandrodaf/mixer/sdk/contracts"
)

// presetSchemaVersion is the version written into new preset files.
const presetSchemaVersion = 1

// ToPreset projects a full catalog into the flat preset shape: numid and
// values per control, nothing else.
func ToPreset(cardName string, ctrls []contracts.ControlDescriptor) contracts.PresetFile {
	preset := contracts.PresetFile{
		SchemaVersion: presetSchemaVersion,
		CardName:      cardName,
		Controls:      make([]contracts.PresetControlValue, 0, len(ctrls)),
	}
	for _, c := range ctrls {
		preset.Controls = append(preset.Controls, contracts.PresetControlValue{
			Numid:  c.Numid,
			Values: append([]string(nil), c.Values...),
		})
	}
	return preset
}

// SavePreset writes a preset as indented JSON.
func SavePreset(path string, preset contracts.PresetFile) error {
	text, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preset: %w", err)
	}
	if err := os.WriteFile(path, text, 0o644); err != nil {
		return fmt.Errorf("failed to write preset %s: %w", path, err)
	}
	return nil
}

// LoadPreset reads a preset file.
func LoadPreset(path string) (contracts.PresetFile, error) {
	var preset contracts.PresetFile
	text, err := os.ReadFile(path)
	if err != nil {
		return preset, fmt.Errorf("failed to read preset %s: %w", path, err)
	}
	if err := json.Unmarshal(text, &preset); err != nil {
		return preset, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	return preset, nil
}

// ApplyPreset applies every control of a preset by numid. Controls that
// fail keep the rest going; the per-numid failures come back aggregated.
func ApplyPreset(client contracts.ClientMixer, preset contracts.PresetFile) error {
	var errs error
	for _, c := range preset.Controls {
		if err := client.ApplyValues(c.Numid, c.Values); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("numid=%d: %w", c.Numid, err))
		}
	}
	return errs
}
