// Package halo implements the boundary manager: periodic x-direction
// exchange between ring-neighbor ranks, reflective z-direction boundary
// enforcement (no communication), and the injection scenario's
// top-of-domain cold-jet override.
//
// Ranks are modeled as independent goroutines; the wire protocol between
// them (spec.md §6, "Neighbor protocol") is carried over Go channels
// rather than MPI. [NewRing] wires exactly as many channels as there are
// ranks in each direction, so a [Mailbox.Exchange] call is a faithful
// rendition of "post non-blocking sends/receives to both neighbors, wait
// for completion" even though the transport is in-process.
package halo
