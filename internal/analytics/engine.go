// Package analytics implements the review intelligence engine: sentiment
// classification, keyword and aspect mining, time-windowed trend aggregation,
// risk scoring, and action-recommendation synthesis. The engine is a pure,
// synchronous computation over reviews already loaded by the caller. It
// performs no I/O and holds no shared mutable state, so it is safe to invoke
// concurrently for different companies.
package analytics

import (
	"math"
	"time"
)

// Engine evaluates a company's reviews against a fixed rule set. All
// tunables come from Config and all word tables from Lexicon; identical
// inputs always produce identical output.
type Engine struct {
	cfg Config
	lex *Lexicon
	now func() time.Time
}

// NewEngine creates an engine. A nil lexicon selects the built-in tables;
// zero-valued config fields fall back to defaults.
func NewEngine(cfg Config, lex *Lexicon) *Engine {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Engine{
		cfg: cfg.withDefaults(),
		lex: lex,
	}
}

// Config returns the effective engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) timeNow() time.Time {
	if e.now != nil {
		return e.now()
	}
	return time.Now()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
