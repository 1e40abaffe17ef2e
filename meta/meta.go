// meta/meta.go
package meta

// MAX_TURNS bounds a refereed match. A game has at most 60 placements and a
// pass is always followed by a placement or the end, so 128 is never reached
// by a correct engine.
const MAX_TURNS = 128

// SELFPLAY_WORKERS defines the number of goroutines playing self-play matches.
const SELFPLAY_WORKERS = 4

// LOG_LEVEL is the default zerolog level name.
const LOG_LEVEL = "info"
