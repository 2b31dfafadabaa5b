package e2e

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llm-d-incubation/training-capacity-planner/internal/config"
	"github.com/llm-d-incubation/training-capacity-planner/internal/fabric"
	"github.com/llm-d-incubation/training-capacity-planner/internal/logging"
	"github.com/llm-d-incubation/training-capacity-planner/pkg/core"
	"github.com/llm-d-incubation/training-capacity-planner/pkg/estimator"
)

var _ = Describe("Capacity planning end to end", func() {
	var cfgPath string

	BeforeEach(func() {
		dir, err := os.MkdirTemp("", "planner-e2e")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() { _ = os.RemoveAll(dir) })

		cfgPath = filepath.Join(dir, "planner.yaml")
		Expect(os.WriteFile(cfgPath, []byte(`
defaults:
  mfu: 0.2
accelerators:
  - name: MI300X
    peakTflops: 653.7
fabric:
  nodeBandwidthGbps: 200
`), 0o600)).To(Succeed())
	})

	It("sizes a fleet from config through estimation", func() {
		cfg, err := config.Load(cfgPath)
		Expect(err).NotTo(HaveOccurred())

		cat, err := cfg.Catalog()
		Expect(err).NotTo(HaveOccurred())

		est := estimator.New(cat, logging.NewTestLogger())

		targetDays := 10.0
		maxAccelerators := 3000
		result, err := est.Estimate(core.EstimationRequest{
			Workload: core.WorkloadSpec{
				DatasetSize: 20e12,
				Epochs:      1.5,
				BatchSize:   1536,
				Parameters:  405e9,
			},
			Accelerator:            "L40S",
			TargetTrainingTimeDays: &targetDays,
			MaxAccelerators:        &maxAccelerators,
			MFU:                    cfg.Defaults.MFU,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.NumAcceleratorsNeeded).NotTo(BeNil())
		Expect(*result.NumAcceleratorsNeeded).To(Equal(2999))
		Expect(result.TrainingTimeDays).To(BeNumerically("~", 10.0, 0.01))
	})

	It("uses config-supplied accelerator types", func() {
		cfg, err := config.Load(cfgPath)
		Expect(err).NotTo(HaveOccurred())
		cat, err := cfg.Catalog()
		Expect(err).NotTo(HaveOccurred())

		est := estimator.New(cat, logging.NewTestLogger())
		fleet := 64
		result, err := est.Estimate(core.EstimationRequest{
			Workload:        core.WorkloadSpec{DatasetSize: 1e12, Epochs: 1, BatchSize: 512, Parameters: 70e9},
			Accelerator:     "MI300X",
			NumAccelerators: &fleet,
			MFU:             cfg.Defaults.MFU,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.TrainingTimeHours).To(BeNumerically(">", 0))
	})

	It("plans the fabric for the sized fleet", func() {
		cfg, err := config.Load(cfgPath)
		Expect(err).NotTo(HaveOccurred())

		planner, err := fabric.NewPlanner(cfg.Fabric.NodeBandwidthGbps)
		Expect(err).NotTo(HaveOccurred())
		rows, err := planner.Plan()
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).NotTo(BeEmpty())

		// A 2999-unit fleet at 8 accelerators per node is ~375 nodes;
		// at least one design point must fit it.
		var best int
		for _, row := range rows {
			if capacity := row.MaxRadix * row.NodesPerLeaf; capacity > best {
				best = capacity
			}
		}
		Expect(best).To(BeNumerically(">=", 375))
	})
})
