package mixer_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/leandrodaf/mixer/sdk/contracts"
	"github.com/leandrodaf/mixer/sdk/mixer"
)

// fakeClient records ApplyValues calls and fails on selected numids.
type fakeClient struct {
	contracts.ClientMixer
	applied map[uint32][]string
	failOn  map[uint32]error
}

func newFakeClient() *fakeClient {
	return &fakeClient{applied: map[uint32][]string{}, failOn: map[uint32]error{}}
}

func (f *fakeClient) ApplyValues(numid uint32, values []string) error {
	if err := f.failOn[numid]; err != nil {
		return err
	}
	f.applied[numid] = values
	return nil
}

func TestToPresetProjectsCatalog(t *testing.T) {
	assert := assert.New(t)

	ctrls := []contracts.ControlDescriptor{
		{Numid: 3, Name: "AIn1 - Out1", Values: []string{"10", "20"}, Favorite: true},
		{Numid: 7, Name: "Effects Volume", Values: []string{"off"}},
	}
	preset := mixer.ToPreset("Fast Track Ultra 8R", ctrls)

	assert.EqualValues(1, preset.SchemaVersion)
	assert.Equal("Fast Track Ultra 8R", preset.CardName)
	require.Len(t, preset.Controls, 2)
	assert.Equal(contracts.PresetControlValue{Numid: 3, Values: []string{"10", "20"}}, preset.Controls[0])
	assert.Equal(contracts.PresetControlValue{Numid: 7, Values: []string{"off"}}, preset.Controls[1])

	// The projection is flat: mutating it must not touch the catalog.
	preset.Controls[0].Values[0] = "99"
	assert.Equal("10", ctrls[0].Values[0])
}

func TestPresetSaveLoadRoundTrip(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "preset.json")
	preset := mixer.ToPreset("Card", []contracts.ControlDescriptor{
		{Numid: 1, Values: []string{"on", "off"}},
	})

	require.NoError(t, mixer.SavePreset(path, preset))
	loaded, err := mixer.LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(preset, loaded)
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := mixer.LoadPreset(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestApplyPresetAppliesByNumid(t *testing.T) {
	assert := assert.New(t)

	client := newFakeClient()
	preset := contracts.PresetFile{
		SchemaVersion: 1,
		Controls: []contracts.PresetControlValue{
			{Numid: 1, Values: []string{"10"}},
			{Numid: 2, Values: []string{"on", "on"}},
		},
	}

	require.NoError(t, mixer.ApplyPreset(client, preset))
	assert.Equal([]string{"10"}, client.applied[1])
	assert.Equal([]string{"on", "on"}, client.applied[2])
}

func TestApplyPresetAggregatesFailures(t *testing.T) {
	assert := assert.New(t)

	client := newFakeClient()
	client.failOn[2] = contracts.ErrControlNotFound
	client.failOn[3] = errors.New("io failure")
	preset := contracts.PresetFile{
		Controls: []contracts.PresetControlValue{
			{Numid: 1, Values: []string{"1"}},
			{Numid: 2, Values: []string{"2"}},
			{Numid: 3, Values: []string{"3"}},
		},
	}

	err := mixer.ApplyPreset(client, preset)
	require.Error(t, err)
	assert.Len(multierr.Errors(err), 2, "one failure per failing control")
	assert.ErrorIs(err, contracts.ErrControlNotFound)
	assert.Equal([]string{"1"}, client.applied[1], "failures do not stop the rest")
}
