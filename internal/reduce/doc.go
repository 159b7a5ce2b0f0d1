// Package reduce implements the conservation reducer: a domain-global
// sum of mass and total energy, accumulated race-free across a worker
// pool within a rank and combined across ranks with a SUM all-reduce.
package reduce
