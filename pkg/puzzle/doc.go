// Package puzzle defines the solver contract, the answer and run entities,
// configuration, and the standard errors shared by every day solver and by
// the answer log.
package puzzle
