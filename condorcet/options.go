// SPDX-License-Identifier: MIT

package condorcet

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/condorcet/duelgraph"
)

const panicMaxCandidatesInvalid = "condorcet: WithMaxCandidates: bound must be >= 1"

// Option configures a single resolution call.
type Option func(*options)

type options struct {
	trace         *Trace
	logger        *slog.Logger
	maxCandidates int
}

// discard is the default logger: resolvers log at Debug only.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func gatherOptions(opts []Option) options {
	o := options{
		logger:        discard,
		maxCandidates: duelgraph.DefaultMaxNodes,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithTrace records intermediate steps into t. A nil t disables tracing.
func WithTrace(t *Trace) Option {
	return func(o *options) { o.trace = t }
}

// WithLogger sets the logger for Debug-level progress records.
// A nil logger keeps the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxCandidates bounds the candidate count; larger inputs fail with
// ErrCapacityExceeded before any work is done. Panics if n < 1.
func WithMaxCandidates(n int) Option {
	if n < 1 {
		panic(panicMaxCandidatesInvalid)
	}

	return func(o *options) { o.maxCandidates = n }
}
