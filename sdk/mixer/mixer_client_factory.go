package mixer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/leandrodaf/mixer/internal/mixer/alsalinux"
	"github.com/leandrodaf/mixer/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system exposes no native
// control backend for this device class.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// clientInitializers maps OS names to corresponding mixer client initializers.
var clientInitializers = map[string]func(*contracts.ClientOptions) (contracts.ClientMixer, error){
	"linux": alsalinux.NewMixerClient, // Linux ALSA control backend.
}

// NewClient initializes a mixer client based on the current operating
// system. Only Linux carries a native backend; other systems return
// ErrUnsupportedOS.
//
// opts *contracts.ClientOptions: Configuration options for the mixer client.
//
// Returns:
//   - contracts.ClientMixer: An instance of the mixer client.
//   - error: An error if the operating system is unsupported or if initialization fails.
func NewClient(opts *contracts.ClientOptions) (contracts.ClientMixer, error) {
	return newClientFor(runtime.GOOS, opts)
}

func newClientFor(goos string, opts *contracts.ClientOptions) (contracts.ClientMixer, error) {
	if initializer, exists := clientInitializers[goos]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
}
