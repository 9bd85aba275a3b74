package mixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/mixer/sdk/contracts"
)

func TestApplyDefaultOptions(t *testing.T) {
	assert := assert.New(t)

	options, err := applyDefaultOptions()
	require.NoError(t, err)

	assert.NotNil(options.Logger)
	assert.Equal(contracts.InfoLevel, options.LogLevel)
	assert.Equal(defaultProductTokens, options.ProductTokens)
	assert.Nil(options.CardIndex)
}

func TestApplyDefaultOptionsOverrides(t *testing.T) {
	assert := assert.New(t)

	options, err := applyDefaultOptions(
		contracts.WithLogLevel(contracts.DebugLevel),
		contracts.WithCardIndex(2),
		contracts.WithProductTokens("scarlett"),
	)
	require.NoError(t, err)

	assert.Equal(contracts.DebugLevel, options.LogLevel)
	require.NotNil(t, options.CardIndex)
	assert.EqualValues(2, *options.CardIndex)
	assert.Equal([]string{"scarlett"}, options.ProductTokens)
}
