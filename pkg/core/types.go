package core

import (
	"fmt"
	"math"
)

// DefaultMFU is the model FLOPS utilization assumed when a request does not
// supply one. 20% of peak is a common planning figure for large dense models.
const DefaultMFU = 0.2

// FlopsPerParameterToken is the standard approximation of floating-point
// operations per parameter per token processed (forward + backward pass).
const FlopsPerParameterToken = 6

// WorkloadSpec describes a single training run. All fields are expressed in
// base units: tokens for dataset size, raw counts for parameters.
type WorkloadSpec struct {
	// DatasetSize is the number of tokens in the training dataset.
	DatasetSize float64 `yaml:"datasetSize" json:"datasetSize"`

	// Epochs is the number of passes over the dataset. Fractional epochs
	// are allowed (e.g. 1.5 for a partial second pass).
	Epochs float64 `yaml:"epochs" json:"epochs"`

	// BatchSize is the global batch size in sequences per optimizer step.
	BatchSize float64 `yaml:"batchSize" json:"batchSize"`

	// Parameters is the model parameter count.
	Parameters float64 `yaml:"parameters" json:"parameters"`
}

// Validate checks the workload fields for values that would make the compute
// model meaningless or divide by zero.
func (w WorkloadSpec) Validate() error {
	if !isFinite(w.DatasetSize) || w.DatasetSize < 0 {
		return fmt.Errorf("datasetSize must be a finite non-negative number, got %v", w.DatasetSize)
	}
	if !isFinite(w.Epochs) || w.Epochs <= 0 {
		return fmt.Errorf("epochs must be a finite positive number, got %v", w.Epochs)
	}
	if !isFinite(w.BatchSize) || w.BatchSize <= 0 {
		return fmt.Errorf("batchSize must be a finite positive number, got %v", w.BatchSize)
	}
	if !isFinite(w.Parameters) || w.Parameters < 0 {
		return fmt.Errorf("parameters must be a finite non-negative number, got %v", w.Parameters)
	}
	return nil
}

// Steps returns the total number of optimizer steps across the full run.
func (w WorkloadSpec) Steps() float64 {
	return w.DatasetSize * w.Epochs / w.BatchSize
}

// ComputeTeraflops returns the total training work in teraFLOPs. This is a
// pure function of the workload and does not depend on accelerator choice.
func (w WorkloadSpec) ComputeTeraflops() float64 {
	return w.Parameters * w.Steps() * FlopsPerParameterToken / 1e12
}

// EstimationRequest carries a workload together with the hardware question
// being asked: either "how long on N accelerators" (NumAccelerators set) or
// "how many accelerators for T days" (TargetTrainingTimeDays set).
type EstimationRequest struct {
	Workload WorkloadSpec `yaml:"workload" json:"workload"`

	// Accelerator is the catalog identifier of the accelerator type
	// (e.g. "H100"). Case-sensitive.
	Accelerator string `yaml:"accelerator" json:"accelerator"`

	// TargetTrainingTimeDays, when set, selects the inversion branch: the
	// estimator derives the fleet size needed to finish in this many days.
	TargetTrainingTimeDays *float64 `yaml:"targetTrainingTimeDays,omitempty" json:"targetTrainingTimeDays,omitempty"`

	// NumAccelerators is the explicit fleet size for the forward
	// calculation. Required when no target time is given.
	NumAccelerators *int `yaml:"numAccelerators,omitempty" json:"numAccelerators,omitempty"`

	// MaxAccelerators caps the fleet size derived by the inversion branch.
	// When the cap binds, the reported training time exceeds the target.
	MaxAccelerators *int `yaml:"maxAccelerators,omitempty" json:"maxAccelerators,omitempty"`

	// MFU is the model FLOPS utilization in (0, 1]. Zero means "use
	// DefaultMFU".
	MFU float64 `yaml:"mfu,omitempty" json:"mfu,omitempty"`
}

// EffectiveMFU returns the utilization factor to use, applying the default
// when the field was left unset.
func (r EstimationRequest) EffectiveMFU() float64 {
	if r.MFU == 0 {
		return DefaultMFU
	}
	return r.MFU
}

// Validate checks request fields excluding the accelerator identifier, which
// is validated against the catalog by the estimator.
func (r EstimationRequest) Validate() error {
	if err := r.Workload.Validate(); err != nil {
		return err
	}
	if r.Accelerator == "" {
		return fmt.Errorf("accelerator must be specified")
	}
	mfu := r.EffectiveMFU()
	if !isFinite(mfu) || mfu <= 0 || mfu > 1 {
		return fmt.Errorf("mfu must be in (0, 1], got %v", r.MFU)
	}
	if r.TargetTrainingTimeDays != nil {
		if d := *r.TargetTrainingTimeDays; !isFinite(d) || d <= 0 {
			return fmt.Errorf("targetTrainingTimeDays must be a finite positive number, got %v", d)
		}
	}
	if r.NumAccelerators != nil && *r.NumAccelerators <= 0 {
		return fmt.Errorf("numAccelerators must be positive, got %d", *r.NumAccelerators)
	}
	if r.MaxAccelerators != nil && *r.MaxAccelerators <= 0 {
		return fmt.Errorf("maxAccelerators must be positive, got %d", *r.MaxAccelerators)
	}
	return nil
}

// EstimationResult is the outcome of a single estimate call.
type EstimationResult struct {
	// TrainingTimeHours is the estimated wall-clock training time in hours.
	TrainingTimeHours float64 `yaml:"trainingTimeHours" json:"trainingTimeHours"`

	// TrainingTimeDays is the same duration expressed in days.
	TrainingTimeDays float64 `yaml:"trainingTimeDays" json:"trainingTimeDays"`

	// NumAcceleratorsNeeded is the fleet size derived by the inversion
	// branch, after clamping. Nil when no target time was requested.
	NumAcceleratorsNeeded *int `yaml:"numAcceleratorsNeeded,omitempty" json:"numAcceleratorsNeeded,omitempty"`

	// FleetSize is the fleet size the forward time calculation used,
	// whether derived or supplied explicitly.
	FleetSize int `yaml:"fleetSize" json:"fleetSize"`
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
