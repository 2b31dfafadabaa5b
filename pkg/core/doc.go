// Package core provides the fundamental value types for the training
// capacity planner.
//
// The types here describe a training workload and the question being asked
// of the estimator:
//
//   - WorkloadSpec: dataset size, epochs, batch size, parameter count
//   - EstimationRequest: a workload plus accelerator choice, utilization
//     factor, and either a target duration or an explicit fleet size
//   - EstimationResult: derived training time and, when the inversion
//     branch ran, the required fleet size
//
// All entities are plain value records: constructed fresh per call,
// immutable for the call's duration, never persisted. Total floating-point
// work is a pure function of the WorkloadSpec; the accelerator choice and
// fleet size only affect achieved throughput and thus elapsed time.
//
// The core package is independent of the catalog, configuration, and CLI
// layers and carries no I/O.
package core
