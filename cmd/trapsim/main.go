package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/trapsim/internal/atom"
	"github.com/san-kum/trapsim/internal/config"
	"github.com/san-kum/trapsim/internal/field"
	"github.com/san-kum/trapsim/internal/profile"
	"github.com/san-kum/trapsim/internal/tui"
)

var (
	configFile string
	axisName   string
	points     int
	span       float64
	atTime     float64
	showAccel  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trapsim",
		Short: "cold-atom trap field and loss model inspector",
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [preset]",
		Short: "summarize a trap configuration and plot its profile",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	inspectCmd.Flags().StringVar(&axisName, "axis", "y", "profile axis (x, y or z)")
	inspectCmd.Flags().IntVar(&points, "points", 80, "profile sample count")
	inspectCmd.Flags().Float64Var(&span, "span", 0, "profile span in meters (0 = 6x cloud radius)")
	inspectCmd.Flags().Float64Var(&atTime, "time", 0, "evaluation time in seconds")
	inspectCmd.Flags().BoolVar(&showAccel, "accel", false, "plot |acceleration| instead of potential")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in trap presets",
		RunE:  runPresets,
	}

	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "list known atomic species",
		RunE:  runSpecies,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore [preset]",
		Short: "interactively explore a trap configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExplore,
	}
	exploreCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	rootCmd.AddCommand(inspectCmd, presetsCmd, speciesCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfig(args []string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if len(args) == 1 {
		cfg := config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (try: %s)",
				args[0], strings.Join(config.ListPresets(), ", "))
		}
		return cfg, nil
	}
	return config.Default(), nil
}

func describeField(fc config.FieldConfig) string {
	switch fc.Kind {
	case "uniform":
		return fmt.Sprintf("uniform strength=%.3g,%.3g,%.3g m/s^2",
			fc.Strength[0], fc.Strength[1], fc.Strength[2])
	case "harmonic":
		return fmt.Sprintf("harmonic omega=%.3g,%.3g,%.3g rad/s",
			fc.OmegaX, fc.OmegaY, fc.OmegaZ)
	case "gaussian":
		return fmt.Sprintf("gaussian P=%.3g W w0=%.3g m lambda=%.3g m dir=%.2g,%.2g,%.2g",
			fc.Power, fc.Waist, fc.Wavelength,
			fc.Direction[0], fc.Direction[1], fc.Direction[2])
	}
	return fc.Kind
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}
	axis, err := profile.ParseAxis(axisName)
	if err != nil {
		return err
	}
	conditions, fields, err := config.Build(cfg)
	if err != nil {
		return err
	}
	bound := field.Combine(fields...)
	sp := conditions.Species

	depth := profile.Depth(bound, sp, [3]float64{}, atTime)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "species\t%s\n", sp.Name)
	fmt.Fprintf(w, "mass\t%.6g kg\n", sp.Mass)
	fmt.Fprintf(w, "scattering length\t%.4g m\n", sp.ScatteringLength)
	fmt.Fprintf(w, "cross section\t%.4g m^2\n", sp.ScatteringCrossSection)
	fmt.Fprintf(w, "test particles\t%d (f_scale %.3g)\n", conditions.Positions.N(), conditions.FScale)
	fmt.Fprintf(w, "center potential\t%.4g J (%.4g uK)\n", depth, depth/atom.Kb*1e6)
	fmt.Fprintf(w, "three-body rate\t%.3g m^6/s\n", conditions.ThreeBodyLossRate)
	fmt.Fprintf(w, "background lifetime\t%.3g s\n", conditions.BackgroundLossTime)
	for i, fc := range cfg.Fields {
		fmt.Fprintf(w, "field %d\t%s\n", i, describeField(fc))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if span <= 0 {
		span = 6 * cfg.Cloud.Radius
	}
	opts := profile.Options{Axis: axis, Span: span, Points: points, Time: atTime}

	fmt.Fprintln(cmd.OutOrStdout())
	if showAccel {
		_, values := profile.AccelerationMagnitude(bound, sp, opts)
		caption := fmt.Sprintf("|a| [m/s^2] along %s, span %.3g m", axis, span)
		fmt.Fprintln(cmd.OutOrStdout(), profile.Render(values, 14, caption))
	} else {
		_, values := profile.Potential(bound, sp, opts)
		profile.ToMicroKelvin(values)
		caption := fmt.Sprintf("potential [uK] along %s, span %.3g m", axis, span)
		fmt.Fprintln(cmd.OutOrStdout(), profile.Render(values, 14, caption))
	}
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%d fields\t%d particles\tevaporation %s\n",
			name, cfg.Species, len(cfg.Fields), cfg.Cloud.N, cfg.Evaporation.Policy)
	}
	return w.Flush()
}

func runSpecies(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "name\tmass [kg]\ta [m]\tsigma [m^2]\tpolarizability [C m^2/V]")
	for _, name := range atom.Names() {
		sp, err := atom.ByName(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.6g\t%.4g\t%.4g\t%.4g\n",
			sp.Name, sp.Mass, sp.ScatteringLength, sp.ScatteringCrossSection, sp.Polarizability)
	}
	return w.Flush()
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}
	return tui.Run(cfg)
}
