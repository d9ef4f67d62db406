package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "circuitlab",
	Short: "原理图电路直流求解器",
	Long: `circuitlab 读取编辑器保存的电路JSON文档，
构建MNA线性系统并求解直流工作点。

Examples:
  circuitlab run circuit.json                        # 求解并打印节点电压与元件电流
  circuitlab sweep circuit.json --component V1 \
      --property voltage --from 0 --to 12 --node 1   # 扫描电压源并绘制节点电压曲线`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
