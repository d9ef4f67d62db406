package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"circuitlab"
	"circuitlab/load"
	"circuitlab/types"
)

var (
	sweepComponent string
	sweepProperty  string
	sweepFrom      float64
	sweepTo        float64
	sweepSteps     int
	sweepNode      int
	sweepOut       string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <circuit.json>",
	Short: "扫描某个元件属性并绘制节点电压曲线",
	Long: `对指定元件的一个属性做直流扫描：
在[from, to]区间内等距取值，逐点重新求解直流工作点，
把指定节点的电压随扫描值的变化绘制为PNG曲线图。`,
	Args: cobra.ExactArgs(1),
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepComponent, "component", "", "被扫描的元件ID")
	sweepCmd.Flags().StringVar(&sweepProperty, "property", "voltage", "被扫描的属性名")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "扫描起始值")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 10, "扫描结束值")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 50, "扫描点数")
	sweepCmd.Flags().IntVar(&sweepNode, "node", 1, "观察的节点编号")
	sweepCmd.Flags().StringVar(&sweepOut, "out", "sweep.png", "输出图像文件")
	sweepCmd.MarkFlagRequired("component")
}

func runSweep(cmd *cobra.Command, args []string) error {
	components, wires, err := load.Load(args[0])
	if err != nil {
		return err
	}
	var target *types.Component
	for _, c := range components {
		if c.ID == sweepComponent {
			target = c
			break
		}
	}
	if target == nil {
		return fmt.Errorf("未找到元件: %s", sweepComponent)
	}
	if sweepSteps < 2 {
		return fmt.Errorf("扫描点数至少为2: %d", sweepSteps)
	}

	pts := make(plotter.XYs, 0, sweepSteps)
	step := (sweepTo - sweepFrom) / float64(sweepSteps-1)
	for i := 0; i < sweepSteps; i++ {
		value := sweepFrom + float64(i)*step
		target.SetProperty(sweepProperty, value)
		res := circuitlab.Simulate(components, wires, circuitlab.AnalysisDC)
		if !res.Success {
			return fmt.Errorf("扫描点 %g 求解失败: %s", value, res.Error)
		}
		pts = append(pts, plotter.XY{X: value, Y: res.Voltages[sweepNode]})
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s.%s sweep", sweepComponent, sweepProperty)
	p.X.Label.Text = sweepProperty
	p.Y.Label.Text = fmt.Sprintf("V(node %d)", sweepNode)
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Add(plotter.NewGrid())
	if err := p.Save(6*vg.Inch, 4*vg.Inch, sweepOut); err != nil {
		return err
	}
	fmt.Printf("扫描完成: %d 点 -> %s\n", sweepSteps, sweepOut)
	return nil
}
