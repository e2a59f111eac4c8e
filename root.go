// root.go wires up the rotviz command-line interface: the root cobra
// command, the persistent flags shared by every subcommand, and the
// config/logging plumbing the subcommands rely on.

package main

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"rotviz/config"
	"rotviz/rotation"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rotviz",
	Short: "Rotate a point about an arbitrary 3D axis, two ways",
	Long: `rotviz computes the rotation of a point about an arbitrary axis
(defined by two points in 3D space) using two independent methods: a chain
of axis-aligning matrix transformations, and quaternion conjugation.

The rotate command prints the result, including the labeled intermediate
points of the matrix derivation. The view command animates the sweep from
0 to the full angle in the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: user config dir, then working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

// Execute runs the CLI. main should call this and handle process exit.
func Execute() error {
	return rootCmd.Execute()
}

// addGeometryFlags registers the scene flags shared by the rotate, view,
// and bench commands. Defaults mirror the config layer so unchanged flags
// fall through to environment, file, and built-in values.
func addGeometryFlags(cmd *cobra.Command) {
	d := config.Default()
	cmd.Flags().String("point", d.Point, "point to rotate as \"x,y,z\"")
	cmd.Flags().String("axis-start", d.AxisStart, "axis start point as \"x,y,z\"")
	cmd.Flags().String("axis-end", d.AxisEnd, "axis end point as \"x,y,z\"")
	cmd.Flags().Float64("angle", d.AngleDeg, "rotation angle in degrees")
}

// loadConfig resolves the effective configuration for cmd, letting its set
// flags override environment, file, and defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	log.Debug("configuration resolved",
		"point", c.Point, "axis-start", c.AxisStart, "axis-end", c.AxisEnd,
		"angle", c.AngleDeg, "method", c.Method)
	return c, nil
}

// sceneGeometry parses the configured point and axis and converts the angle
// to radians. Degree-to-radian conversion happens here, at the boundary;
// the rotation package works in radians throughout.
func sceneGeometry(c *config.Config) (rotation.Point3, rotation.Axis, float64, error) {
	p, err := parseTriple(c.Point)
	if err != nil {
		return rotation.Point3{}, rotation.Axis{}, 0, fmt.Errorf("point: %w", err)
	}
	start, err := parseTriple(c.AxisStart)
	if err != nil {
		return rotation.Point3{}, rotation.Axis{}, 0, fmt.Errorf("axis start: %w", err)
	}
	end, err := parseTriple(c.AxisEnd)
	if err != nil {
		return rotation.Point3{}, rotation.Axis{}, 0, fmt.Errorf("axis end: %w", err)
	}

	axis := rotation.Axis{Start: start, End: end}
	return p, axis, c.AngleDeg * math.Pi / 180, nil
}
