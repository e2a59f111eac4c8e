package main

import (
	"github.com/spf13/cobra"

	"rotviz/rotation"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time both rotation methods on the configured scene",
	Long: `Runs the matrix and quaternion methods on identical input for the given
number of iterations and prints per-call timings plus the largest
disagreement between their results.`,
	RunE: runBench,
}

func init() {
	addGeometryFlags(benchCmd)
	benchCmd.Flags().Int("iterations", 1_000_000, "rotation calls per method")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, axis, angleRad, err := sceneGeometry(c)
	if err != nil {
		return err
	}
	iterations, _ := cmd.Flags().GetInt("iterations")

	results, err := rotation.BenchmarkMethods(p, axis, angleRad, iterations)
	if err != nil {
		return err
	}

	rotation.PrintBenchmarkResults(results)
	return nil
}
