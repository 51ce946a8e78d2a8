// meta/meta.go
package meta

// DEFAULT_DEPTH defines the search depth below the root successors.
const DEFAULT_DEPTH = 10

// GO_ROUTINES defines the number of goroutines searching root successors.
const GO_ROUTINES = 1

// MAX_TURNS defines the number of moves after which a local game is abandoned.
const MAX_TURNS = 300

// GAMES defines the number of games per experiment matchup.
const GAMES = 10
