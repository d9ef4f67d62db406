package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"circuitlab"
	"circuitlab/load"
)

var runAnalysis string

var runCmd = &cobra.Command{
	Use:   "run <circuit.json>",
	Short: "求解电路并打印结果",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runAnalysis, "analysis", "a", circuitlab.AnalysisDC,
		"分析模式 (dc/ac/transient)")
}

func runRun(cmd *cobra.Command, args []string) error {
	components, wires, err := load.Load(args[0])
	if err != nil {
		return err
	}
	res := circuitlab.Simulate(components, wires, runAnalysis)
	if !res.Success {
		return fmt.Errorf("求解失败: %s", res.Error)
	}

	fmt.Println("节点电压:")
	nodes := make([]int, 0, len(res.Voltages))
	for n := range res.Voltages {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)
	for _, n := range nodes {
		fmt.Printf("  node %d: %.6gV\n", n, res.Voltages[n])
	}

	fmt.Println("元件电流/功率:")
	ids := make([]string, 0, len(res.Currents))
	for id := range res.Currents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Printf("  %s: %.6gA %.6gW\n", id, res.Currents[id], res.Powers[id])
	}

	for _, d := range res.Warnings {
		fmt.Fprintf(os.Stderr, "警告 [%s] %s: %s\n", d.Kind, d.Component, d.Message)
	}
	for _, d := range res.Errors {
		fmt.Fprintf(os.Stderr, "错误 [%s] %s: %s\n", d.Kind, d.Component, d.Message)
	}
	return nil
}
