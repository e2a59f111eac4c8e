package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/num/quat"

	"rotviz/config"
	"rotviz/rotation"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("60")).
			Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Rotate the point once and print the result",
	Long: `Rotates the configured point about the axis by the configured angle and
prints the rotated point for the selected method (or both). With
--show-steps the labeled intermediate points of the matrix derivation are
listed; with --json the full result is emitted as JSON.`,
	RunE: runRotate,
}

func init() {
	addGeometryFlags(rotateCmd)
	rotateCmd.Flags().String("method", config.Default().Method, "rotation method: matrix, quaternion, or both")
	rotateCmd.Flags().Bool("show-steps", false, "list the matrix derivation steps")
	rotateCmd.Flags().Bool("json", false, "emit the result as JSON")
	rootCmd.AddCommand(rotateCmd)
}

// methodsFor expands the method selection. Unrecognized names pass through
// unchanged so NewRotator rejects them with its usual error.
func methodsFor(name string) []rotation.Method {
	if name == "both" || name == "" {
		return []rotation.Method{rotation.MethodMatrix, rotation.MethodQuaternion}
	}
	return []rotation.Method{rotation.Method(name)}
}

func runRotate(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, axis, angleRad, err := sceneGeometry(c)
	if err != nil {
		return err
	}
	showSteps, _ := cmd.Flags().GetBool("show-steps")
	asJSON, _ := cmd.Flags().GetBool("json")

	results := make([]rotation.Result, 0, 2)
	for _, m := range methodsFor(c.Method) {
		r, err := rotation.NewRotator(axis, m)
		if err != nil {
			return err
		}

		res := rotation.Result{
			Point:    p,
			Axis:     axis,
			AngleRad: angleRad,
			Method:   m,
		}
		if m == rotation.MethodQuaternion {
			q := r.Quaternion(angleRad)
			res.Quaternion = []float64{q.Real, q.Imag, q.Jmag, q.Kmag}
		}
		if showSteps && m == rotation.MethodMatrix {
			res.Rotated, res.Steps = r.Steps(p, angleRad)
		} else {
			res.Rotated = r.Rotate(p, angleRad)
		}

		results = append(results, res)
	}

	if asJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("JSON encoding failed: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printRotation(c.AngleDeg, results)
	return nil
}

func printRotation(angleDeg float64, results []rotation.Result) {
	first := results[0]

	fmt.Println(titleStyle.Render("3D Rotation"))
	fmt.Printf("%s %s\n", labelStyle.Render("Point:"), formatPoint(first.Point))
	fmt.Printf("%s  %s → %s\n", labelStyle.Render("Axis:"),
		formatPoint(first.Axis.Start), formatPoint(first.Axis.End))
	fmt.Printf("%s %.1f°\n\n", labelStyle.Render("Angle:"), angleDeg)

	for _, res := range results {
		fmt.Printf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-12s", res.Method)), formatPoint(res.Rotated))
	}

	for _, res := range results {
		if len(res.Quaternion) == 4 {
			q := res.Quaternion
			fmt.Printf("\nRotation Quaternion: q = %s\n",
				formatQuaternion(quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]}))
		}
	}

	for _, res := range results {
		if len(res.Steps) > 0 {
			fmt.Printf("\n%s\n", labelStyle.Render("Matrix Transformation Steps"))
			for i, step := range res.Steps {
				fmt.Printf("  %2d. %s %s\n", i+1,
					dimStyle.Render(fmt.Sprintf("%-26s", step.Label+":")), formatPoint(step.Point))
			}
		}
	}

	fmt.Printf("\n%s\n", successStyle.Render(fmt.Sprintf(
		"Rotation completed! Original Point: %s → Rotated Point: %s",
		formatPoint(first.Point), formatPoint(first.Rotated))))
}
