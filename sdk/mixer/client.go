package mixer

import (
	"github.com/leandrodaf/mixer/sdk/contracts"
)

// NewMixerClient creates a new mixer client with the specified options.
// It applies default options and initializes the client for the current
// platform.
//
// opts ...contracts.Option: A variadic list of option functions to customize the client configuration.
//
// Returns:
//   - contracts.ClientMixer: An instance of the mixer client.
//   - error: An error, if any occurred during the creation of the client.
func NewMixerClient(opts ...contracts.Option) (contracts.ClientMixer, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	client, err := NewClient(&options)
	if err != nil {
		return nil, err
	}

	return client, nil
}
