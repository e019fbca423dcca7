package config

import (
	"time"
)

type (
	NET struct {
		// ReadBufferSize is the size of a buffer a single read from the connection is done
		// into. Whatever isn't consumed by the parser immediately stays pending for the next
		// read.
		ReadBufferSize int
		// ReadTimeout controls the maximal lifetime of IDLE connections. If no data was
		// received in this period of time, it'll be closed.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
	}

	Parser struct {
		// StartLineChunk is how many bytes are read at once while looking for the end of
		// the request line.
		StartLineChunk int
		// HeadersChunk is the same, but for the headers block.
		HeadersChunk int
		// MaxStartLine limits the request line length, including the trailing CRLF.
		MaxStartLine int
		// MaxHeaders limits the whole headers block, including the terminating empty line.
		MaxHeaders int
	}
)

// Config holds settings used across inlet, mainly restrictions and buffer sizes.
//
// Always start from Default() and modify the fields you need, as zero values aren't
// meaningful defaults.
type Config struct {
	NET    NET
	Parser Parser
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:            2 * 1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
		Parser: Parser{
			StartLineChunk: 16,
			HeadersChunk:   64,
			// 16kb of request line is pretty tolerant, most web-entities limit it to 4-8kb.
			MaxStartLine: 16 * 1024,
			MaxHeaders:   64 * 1024,
		},
	}
}
