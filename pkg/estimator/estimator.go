package estimator

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/llm-d-incubation/training-capacity-planner/internal/catalog"
	"github.com/llm-d-incubation/training-capacity-planner/internal/logging"
	"github.com/llm-d-incubation/training-capacity-planner/internal/metrics"
	"github.com/llm-d-incubation/training-capacity-planner/pkg/core"
)

const (
	secondsPerHour = 3600
	secondsPerDay  = 86400

	// maxFleetSize bounds the float-domain fleet ceiling so it always
	// converts to int safely. float64(math.MaxInt) rounds up to 2^63,
	// which is itself outside the int range, hence the >= comparison at
	// the use site.
	maxFleetSize = float64(math.MaxInt)
)

// Estimator answers training time and fleet sizing questions against a fixed
// accelerator catalog. It is stateless apart from the read-only catalog and
// safe for concurrent use.
type Estimator struct {
	catalog *catalog.Catalog
	logger  logr.Logger
}

// New creates an Estimator. A nil catalog selects the built-in capability
// table.
func New(cat *catalog.Catalog, logger logr.Logger) *Estimator {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Estimator{catalog: cat, logger: logger}
}

// Estimate computes training time for the request, solving for the required
// fleet size first when a target duration is given.
//
// Errors match ErrInvalidArgument for bad inputs and ErrUnderspecified when
// the request carries neither a target time nor an explicit fleet size.
func (e *Estimator) Estimate(req core.EstimationRequest) (core.EstimationResult, error) {
	if err := req.Validate(); err != nil {
		metrics.RecordEstimationError(metrics.ReasonInvalidArgument)
		return core.EstimationResult{}, invalidArgf("%v", err)
	}

	peakTflops, ok := e.catalog.PeakTflops(req.Accelerator)
	if !ok {
		metrics.RecordEstimationError(metrics.ReasonUnknownAccelerator)
		return core.EstimationResult{}, &UnknownAcceleratorError{
			Name:  req.Accelerator,
			Known: e.catalog.Names(),
		}
	}

	if req.TargetTrainingTimeDays == nil && req.NumAccelerators == nil {
		metrics.RecordEstimationError(metrics.ReasonUnderspecified)
		return core.EstimationResult{}, fmt.Errorf(
			"%w: either targetTrainingTimeDays or numAccelerators must be set", ErrUnderspecified)
	}

	mfu := req.EffectiveMFU()
	computeTeraflops := req.Workload.ComputeTeraflops()

	result := core.EstimationResult{}

	// Inversion branch: solve for the fleet that meets the target, then
	// let the forward path report the time that fleet actually yields.
	if req.TargetTrainingTimeDays != nil {
		targetSeconds := *req.TargetTrainingTimeDays * secondsPerDay
		requiredCapacity := computeTeraflops / targetSeconds
		ceiling := math.Ceil(requiredCapacity / (peakTflops * mfu))

		var needed int
		switch {
		case ceiling < 1:
			// A tiny workload can need less than one unit of capacity.
			needed = 1
		case req.MaxAccelerators != nil && ceiling > float64(*req.MaxAccelerators):
			e.logger.V(logging.DEBUG).Info("fleet size clamped, target time will be exceeded",
				"needed", ceiling,
				"maxAccelerators", *req.MaxAccelerators)
			needed = *req.MaxAccelerators
		case ceiling >= maxFleetSize:
			// Converting a float beyond the int range is
			// implementation-defined, so reject before it happens.
			metrics.RecordEstimationError(metrics.ReasonInvalidArgument)
			return core.EstimationResult{}, invalidArgf(
				"required fleet size %g is not representable; raise the target time or set maxAccelerators", ceiling)
		default:
			needed = int(ceiling)
		}
		result.NumAcceleratorsNeeded = &needed
		result.FleetSize = needed
	} else {
		result.FleetSize = *req.NumAccelerators
	}

	effectiveCapacity := peakTflops * float64(result.FleetSize) * mfu
	trainingSeconds := computeTeraflops / effectiveCapacity
	result.TrainingTimeHours = trainingSeconds / secondsPerHour
	result.TrainingTimeDays = trainingSeconds / secondsPerDay

	e.logger.V(logging.DEBUG).Info("estimation complete",
		"accelerator", req.Accelerator,
		"computeTeraflops", computeTeraflops,
		"fleetSize", result.FleetSize,
		"trainingTimeDays", result.TrainingTimeDays)
	metrics.RecordEstimation(req.Accelerator)

	return result, nil
}
