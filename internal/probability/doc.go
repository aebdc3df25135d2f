// Package probability evaluates the cumulative drop-chance curve.
//
// For a "1 in Odds" drop rate the chance of at least one success within the
// first n independent attempts is
//
//	p(n) = 1 - (1 - 1/Odds)^n
//
// Curve samples the function over the domain 1..max(5*Odds, Trials), which
// covers five times the expected attempt count and always includes the
// caller's own position.
package probability
