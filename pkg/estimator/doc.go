// Package estimator implements the closed-form training time model and its
// capacity inversion.
//
// The forward path computes wall-clock training time from a workload, an
// accelerator type, a fleet size, and a model FLOPS utilization (MFU)
// factor. Total work is approximated as 6 FLOPs per parameter per token
// processed; elapsed time is that work divided by the fleet's effective
// throughput (peak TFLOP/s x fleet size x MFU).
//
// The inversion branch runs when a request carries a target duration: it
// solves for the smallest fleet that meets the target, optionally clamped
// to a maximum fleet size. The forward path then reports the time actually
// implied by the clamped fleet, which may exceed the target.
//
// Estimate is a pure function of its inputs plus the static accelerator
// catalog: no I/O, no shared mutable state, safe for concurrent callers.
package estimator
