package mixer

import (
	"github.com/leandrodaf/mixer/internal/logger"
	"github.com/leandrodaf/mixer/sdk/contracts"
)

// defaultProductTokens identify the supported interface family when no
// explicit card index is given.
var defaultProductTokens = []string{"ultra", "f8r", "fast track"}

// applyDefaultOptions sets default values for ClientOptions if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify ClientOptions.
//
// Returns:
//   - contracts.ClientOptions: A structure containing the finalized client options with defaults applied.
//   - error: An error if there was an issue applying the options.
func applyDefaultOptions(opts ...contracts.Option) (contracts.ClientOptions, error) {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Set defaults if options are not provided
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if len(options.ProductTokens) == 0 {
		options.ProductTokens = defaultProductTokens
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options, nil
}
