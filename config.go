package api

import (
	"github.com/rs/zerolog"
)

type Config struct {
	// Workers bounds per-index parallelism. Values below 2 run sequentially.
	Workers int
	// ConstantTimeDecision makes Protocol.CheckTests scan every element
	// without revealing which one failed.
	ConstantTimeDecision bool
	// Logger defaults to a disabled logger when nil.
	Logger *zerolog.Logger
}

func DefaultConfig() *Config {
	return &Config{Workers: 1}
}

// Protocol runs the check pipeline with a fixed configuration. It holds no
// key material and is safe for concurrent use.
type Protocol struct {
	workers      int
	constantTime bool
	log          zerolog.Logger
}

func NewProtocol(cfg *Config) *Protocol {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &Protocol{
		workers:      workers,
		constantTime: cfg.ConstantTimeDecision,
		log:          logger.With().Str("component", "thcheck").Logger(),
	}
}

// sequential backs the package level functions.
var sequential = NewProtocol(DefaultConfig())
