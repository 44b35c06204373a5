// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The scoring engine (Tokenize, ScoreField, Rank, HighlightTokens) is a set
// of pure functions. Session owns the memoized dataset and is the only
// stateful piece; everything else is derived per call.
package services
