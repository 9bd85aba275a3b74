package contracts

// ClientOptions defines the configuration options for the mixer client.
type ClientOptions struct {
	Logger   Logger   // Logger for logging events and errors.
	LogLevel LogLevel // Level of logging to use.
	// CardIndex pins the client to an explicit card index. Nil selects a
	// card automatically using ProductTokens.
	CardIndex *uint32
	// ProductTokens are case-insensitive substrings matched against card
	// names during automatic selection. The first enumerated card is used
	// when no token matches.
	ProductTokens []string
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the mixer client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the mixer client.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithCardIndex pins the client to an explicit card index instead of
// automatic product-token selection.
func WithCardIndex(index uint32) Option {
	return func(opts *ClientOptions) {
		opts.CardIndex = &index
	}
}

// WithProductTokens sets the card-name substrings used for automatic
// device selection.
func WithProductTokens(tokens ...string) Option {
	return func(opts *ClientOptions) {
		opts.ProductTokens = tokens
	}
}
