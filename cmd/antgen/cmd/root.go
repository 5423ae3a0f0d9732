package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/nfcant/pkg/antenna"
	"github.com/OpenTraceLab/nfcant/pkg/antenna/header"
	"github.com/OpenTraceLab/nfcant/pkg/kicad/footprint"
	"github.com/OpenTraceLab/nfcant/pkg/library"
)

const version = "1.0.0"

var (
	// Global flags
	verbose    bool
	configPath string

	// Generation flags
	genFlags     specFlags
	outputDir    string
	kicadVersion string

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	now    = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "antgen",
	Short: "NFC loop antenna footprint generator for KiCad",
	Long: `antgen generates rectangular spiral loop antennas for NFC/RFID tags and
readers as KiCad footprints. The spiral is drawn as custom pad primitives
so KiCad treats it as one copper net between the two pads.

Without any antenna flag the built-in parameter set is used
(nfc_ant, 3 turns, 75.4 x 33.5 mm, 2.7/1.7 mm conductor, style 3).

Examples:
  antgen                                                   # Default antenna
  antgen -f ant_40x25 -n 5 -l 40 -w 25 -c 0.5 -s 0.3      # Style 1 antenna
  antgen -f ant -n 4 -l 50 -w 30 -c 1 -s 0.5 -t 3 -m 1    # 45 degree slopes
  antgen --config preset.yaml --kicad-version 7.0          # KiCad 6+ format
  antgen inspect nfc_ant.pretty/nfc_ant.kicad_mod --verify # Check a file`,
	Version: version,
	Args:    cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr())
	},
	RunE: runGenerate,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"preset file (yaml, toml or json) with antenna parameters")

	addSpecFlags(rootCmd.Flags(), &genFlags)
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", library.DefaultDir,
		"footprint library directory")
	rootCmd.Flags().StringVar(&kicadVersion, "kicad-version", "5.0",
		"target KiCad version, 6.0 and later use the s-expression footprint format")
}

func setupLogging(w io.Writer) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	spec, err := resolveSpec(cmd, &genFlags)
	if err != nil {
		return err
	}

	dialect, err := footprint.DialectFor(kicadVersion)
	if err != nil {
		return err
	}
	logger.Debug("generating antenna",
		"name", spec.Name, "turns", spec.Turns, "style", spec.Style, "dialect", dialect)

	res, err := antenna.Generate(spec, antenna.WithClock(now))
	if err != nil {
		return fmt.Errorf("failed to generate antenna: %w", err)
	}
	for _, w := range res.Warnings {
		fmt.Println(w)
	}
	logger.Debug("generated", "summary", res.Summary())

	path, err := library.New(outputDir).Save(spec.Name, header.Format(spec, version), res.Footprint, dialect)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
