package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"rotviz/config"
	"rotviz/rotation"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Animate the rotation sweep in the terminal",
	Long: `Precomputes the sweep from 0 to the configured angle and plays it back
in an interactive terminal scene: the coordinate axes, the rotation axis,
the original point, and the rotated point with its trail. Arrow keys orbit
the camera.`,
	RunE: runView,
}

func init() {
	addGeometryFlags(viewCmd)
	d := config.Default()
	viewCmd.Flags().Int("frames", d.Frames, "frames per sweep")
	viewCmd.Flags().Int("speed", d.Speed, "sweep speed, 1 (slow) to 10 (fast)")
	viewCmd.Flags().Int("style", d.Style, "shading style index")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, axis, angleRad, err := sceneGeometry(c)
	if err != nil {
		return err
	}
	if c.Speed < 1 || c.Speed > 10 {
		return fmt.Errorf("speed out of range: %d (want 1-10)", c.Speed)
	}
	if c.Style < 0 || c.Style >= len(shadingStyles) {
		return fmt.Errorf("style out of range: %d (want 0-%d)", c.Style, len(shadingStyles)-1)
	}

	// Both methods trace the same sweep, so "both" animates the matrix
	// method; anything else passes through for the usual validation.
	method := rotation.Method(c.Method)
	if c.Method == "both" || c.Method == "" {
		method = rotation.MethodMatrix
	}
	r, err := rotation.NewRotator(axis, method)
	if err != nil {
		return err
	}

	traj, err := r.Trajectory(p, angleRad, c.Frames)
	if err != nil {
		return err
	}

	log.Debug("starting animation",
		"method", method, "frames", c.Frames, "speed", c.Speed, "style", c.Style)
	return runAnimation(newSceneRenderer(p, axis, traj, c.AngleDeg, c.Style, c.Speed))
}
