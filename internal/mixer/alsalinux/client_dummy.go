//go:build !linux
// +build !linux

package alsalinux

import (
	"fmt"

	"github.com/leandrodaf/mixer/sdk/contracts"
)

type dummyMixerClient struct {
	logger contracts.Logger
}

// NewMixerClient initializes a dummy mixer client for non-Linux systems.
func NewMixerClient(options *contracts.ClientOptions) (contracts.ClientMixer, error) {
	options.Logger.Info("Using dummy mixer client for non-Linux system")
	return &dummyMixerClient{
		logger: options.Logger,
	}, nil
}

func (m *dummyMixerClient) Card() contracts.CardInfo {
	return contracts.CardInfo{}
}

// ListCards logs a warning and returns an error indicating that the control backend is unavailable on this platform.
func (m *dummyMixerClient) ListCards() ([]contracts.CardInfo, error) {
	m.logger.Warn("ListCards called on dummy mixer client")
	return nil, fmt.Errorf("mixer functionality is not available on this platform")
}

// ListControls logs a warning and returns an error indicating that the control backend is unavailable on this platform.
func (m *dummyMixerClient) ListControls() ([]contracts.ControlDescriptor, error) {
	m.logger.Warn("ListControls called on dummy mixer client")
	return nil, fmt.Errorf("mixer functionality is not available on this platform")
}

// ApplyValues logs a warning and returns an error indicating that the control backend is unavailable on this platform.
func (m *dummyMixerClient) ApplyValues(numid uint32, values []string) error {
	m.logger.Warn("ApplyValues called on dummy mixer client")
	return fmt.Errorf("mixer functionality is not available on this platform")
}

// ReloadControl logs a warning and returns an error indicating that the control backend is unavailable on this platform.
func (m *dummyMixerClient) ReloadControl(ctrl contracts.ControlDescriptor) (contracts.ControlDescriptor, error) {
	m.logger.Warn("ReloadControl called on dummy mixer client")
	return ctrl, fmt.Errorf("mixer functionality is not available on this platform")
}

// RefreshControlValues logs a warning and returns an error indicating that the control backend is unavailable on this platform.
func (m *dummyMixerClient) RefreshControlValues(ctrls []contracts.ControlDescriptor) (int, error) {
	m.logger.Warn("RefreshControlValues called on dummy mixer client")
	return 0, fmt.Errorf("mixer functionality is not available on this platform")
}

// SetFavorite logs a warning indicating that SetFavorite was called on the dummy mixer client.
func (m *dummyMixerClient) SetFavorite(numid uint32, favorite bool) {
	m.logger.Warn("SetFavorite called on dummy mixer client")
}

// StartWatch logs a warning and returns an error indicating that the control backend is unavailable on this platform.
func (m *dummyMixerClient) StartWatch(onChange func()) (<-chan struct{}, error) {
	m.logger.Warn("StartWatch called on dummy mixer client")
	return nil, fmt.Errorf("mixer functionality is not available on this platform")
}

// Stop logs a warning indicating that Stop was called on the dummy mixer client.
func (m *dummyMixerClient) Stop() error {
	m.logger.Warn("Stop called on dummy mixer client")
	return nil
}
