package core

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseRequest parses an EstimationRequest from its YAML representation,
// e.g. a request file passed to the CLI:
//
//	workload:
//	  datasetSize: 20e12
//	  epochs: 1.5
//	  batchSize: 1536
//	  parameters: 405e9
//	accelerator: L40S
//	targetTrainingTimeDays: 10
//	maxAccelerators: 3000
//
// Parsing does not validate the request; the estimator remains the single
// authority on argument validation.
func ParseRequest(data []byte) (EstimationRequest, error) {
	var req EstimationRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return EstimationRequest{}, fmt.Errorf("parsing estimation request: %w", err)
	}
	return req, nil
}
