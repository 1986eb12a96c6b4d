// meta/meta.go
package meta

import "time"

// BRANCH_DURATION is the wall-clock time granted to each top-level move.
const BRANCH_DURATION = 900 * time.Millisecond

// DURATION is the default allowance for one decision: a branch budget for
// each of the six pits a player can start with.
const DURATION = 6 * BRANCH_DURATION

// MIN_DEPTH is the number of plies searched before the clock is consulted
// when playing against a human. The clock cannot stop a line before this
// depth, so the opening decision takes several times DURATION.
const MIN_DEPTH = 12

// FIXED_DEPTH is the search depth used when two AIs play each other.
const FIXED_DEPTH = 10

// MAX_TURNS stops a match that fails to finish.
const MAX_TURNS = 500

// HEURISTIC names the default evaluation weights.
const HEURISTIC = "default"
