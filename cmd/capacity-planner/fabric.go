package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/llm-d-incubation/training-capacity-planner/internal/config"
	"github.com/llm-d-incubation/training-capacity-planner/internal/fabric"
)

var nodeBandwidthGbps float64

var fabricCmd = &cobra.Command{
	Use:   "fabric",
	Short: "Plan leaf-spine fabric options for an accelerator fleet",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if nodeBandwidthGbps == 0 {
			nodeBandwidthGbps = cfg.Fabric.NodeBandwidthGbps
		}

		planner, err := fabric.NewPlanner(nodeBandwidthGbps)
		if err != nil {
			return err
		}
		rows, err := planner.Plan()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Leaf", "Spine", "Uplinks", "Workload Ports", "Oversubscription", "Max Radix", "Nodes per Leaf"})
		for _, row := range rows {
			table.Append([]string{
				row.Leaf,
				row.Spine,
				strconv.Itoa(row.Uplinks),
				strconv.Itoa(row.WorkloadPorts),
				row.Oversubscription,
				strconv.Itoa(row.MaxRadix),
				strconv.Itoa(row.NodesPerLeaf),
			})
		}
		table.Render()

		fmt.Fprintf(out, "\nAssumed node NIC bandwidth: %.0f Gbps\n", nodeBandwidthGbps)
		return nil
	},
}

func init() {
	fabricCmd.Flags().Float64Var(&nodeBandwidthGbps, "node-bandwidth", 0, "Compute node NIC bandwidth in Gbps; defaults from config")
}
