// Package breakout implements the per-frame simulation of a single-player
// brick breaker on a character grid: paddle, ball and brick field state,
// collision tests, scoring, and the life/game-over state machine.
//
// The package never touches the terminal. A driver feeds one directional
// intent per tick into Session.Tick and draws Session.Snapshot.
package breakout
