package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/llm-d-incubation/training-capacity-planner/internal/config"
	"github.com/llm-d-incubation/training-capacity-planner/internal/logging"
	"github.com/llm-d-incubation/training-capacity-planner/internal/metrics"
	"github.com/llm-d-incubation/training-capacity-planner/pkg/core"
	"github.com/llm-d-incubation/training-capacity-planner/pkg/estimator"
)

var (
	requestFile     string
	datasetSize     float64
	epochs          float64
	batchSize       float64
	parameters      float64
	accelerator     string
	targetDays      float64
	fleetSize       int
	maxAccelerators int
	mfu             float64
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate training time, or the fleet size needed to hit a target time",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.NewLogger(verbosity)

		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cat, err := cfg.Catalog()
		if err != nil {
			return err
		}
		if err := metrics.InitMetrics(prometheus.DefaultRegisterer); err != nil {
			return err
		}

		req, err := buildRequest()
		if err != nil {
			return err
		}
		if req.MFU == 0 {
			req.MFU = cfg.Defaults.MFU
		}

		result, err := estimator.New(cat, logger).Estimate(req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Training time: %.2f hours (%.2f days)\n",
			result.TrainingTimeHours, result.TrainingTimeDays)
		if result.NumAcceleratorsNeeded != nil {
			fmt.Fprintf(out, "Accelerators needed (%s): %d\n",
				req.Accelerator, *result.NumAcceleratorsNeeded)
		} else {
			fmt.Fprintf(out, "Fleet size (%s): %d\n", req.Accelerator, result.FleetSize)
		}
		return nil
	},
}

// buildRequest assembles the estimation request from the request file when
// one was given, otherwise from the individual flags. Argument validation is
// left to the estimator.
func buildRequest() (core.EstimationRequest, error) {
	if requestFile != "" {
		data, err := os.ReadFile(requestFile)
		if err != nil {
			return core.EstimationRequest{}, fmt.Errorf("reading request file: %w", err)
		}
		return core.ParseRequest(data)
	}

	req := core.EstimationRequest{
		Workload: core.WorkloadSpec{
			DatasetSize: datasetSize,
			Epochs:      epochs,
			BatchSize:   batchSize,
			Parameters:  parameters,
		},
		Accelerator: accelerator,
		MFU:         mfu,
	}
	if targetDays > 0 {
		req.TargetTrainingTimeDays = &targetDays
	}
	if fleetSize > 0 {
		req.NumAccelerators = &fleetSize
	}
	if maxAccelerators > 0 {
		req.MaxAccelerators = &maxAccelerators
	}
	return req, nil
}

// addEstimateFlags registers the estimate flags on the given flag set.
func addEstimateFlags(f *pflag.FlagSet) {
	f.StringVar(&requestFile, "request", "", "Path to a YAML request file; overrides the workload flags")
	f.Float64Var(&datasetSize, "dataset-size", 0, "Dataset size in tokens")
	f.Float64Var(&epochs, "epochs", 1, "Number of passes over the dataset")
	f.Float64Var(&batchSize, "batch-size", 0, "Global batch size in sequences per step")
	f.Float64Var(&parameters, "parameters", 0, "Model parameter count")
	f.StringVar(&accelerator, "accelerator", "", "Accelerator type (e.g. H100)")
	f.Float64Var(&targetDays, "target-days", 0, "Target training time in days; derives the required fleet size")
	f.IntVar(&fleetSize, "fleet-size", 0, "Explicit fleet size; required when no target time is given")
	f.IntVar(&maxAccelerators, "max-accelerators", 0, "Cap on the derived fleet size")
	f.Float64Var(&mfu, "mfu", 0, "Model FLOPS utilization in (0, 1]; defaults from config")
}

func init() {
	addEstimateFlags(estimateCmd.Flags())
}
