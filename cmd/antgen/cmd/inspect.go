package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/nfcant/pkg/antenna"
	"github.com/OpenTraceLab/nfcant/pkg/antenna/header"
	"github.com/OpenTraceLab/nfcant/pkg/kicad/footprint"
	"github.com/OpenTraceLab/nfcant/pkg/library"
)

var verifyGeometry bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <footprint-file|library-dir>",
	Short: "Show the parameters and geometry of generated footprints",
	Long: `Read a generated .kicad_mod file, or every footprint in a .pretty
library directory, and print the recorded parameters, pad and primitive
counts and the bounding box.

With --verify the antenna is regenerated from the recorded parameters and
the command fails if the geometry differs from the file.

Examples:
  antgen inspect nfc_ant.pretty/nfc_ant.kicad_mod
  antgen inspect --verify nfc_ant.pretty`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&verifyGeometry, "verify", false,
		"regenerate from the recorded parameters and compare")
}

func runInspect(cmd *cobra.Command, args []string) error {
	target := args[0]

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	if !info.IsDir() {
		return inspectFile(target)
	}

	lib := library.New(target)
	names, err := lib.Footprints()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no footprints in %s", target)
	}

	var failed []string
	for i, name := range names {
		if i > 0 {
			fmt.Println()
		}
		if err := inspectFile(lib.Path(name)); err != nil {
			fmt.Printf("  Error: %v\n", err)
			failed = append(failed, name)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d footprints failed: %s", len(failed), len(names), strings.Join(failed, ", "))
	}
	return nil
}

func inspectFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	logger.Debug("inspecting", "path", path, "bytes", len(data))

	fp, dialect, err := footprint.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	hdr, err := header.Parse(bytes.NewReader(data))
	if err != nil && !errors.Is(err, header.ErrNoHeader) {
		return fmt.Errorf("failed to parse header of %s: %w", path, err)
	}

	fmt.Printf("Footprint: %s\n", fp.Name)
	fmt.Printf("  File:       %s\n", path)
	fmt.Printf("  Format:     %s\n", dialect)
	if hdr != nil {
		fmt.Printf("  Generator:  %s %s\n", hdr.Generator, hdr.Version)
		printSpec(hdr.Spec)
	} else {
		fmt.Printf("  Generator:  unknown (no parameter header)\n")
	}

	bbox := fp.BoundingBox()
	fmt.Printf("  Pads:       %d\n", len(fp.Pads))
	fmt.Printf("  Primitives: %d\n", fp.PrimitiveCount())
	fmt.Printf("  Silk lines: %d front, %d back\n",
		len(fp.LinesOnLayer(footprint.LayerFrontSilk)), len(fp.LinesOnLayer(footprint.LayerBackSilk)))
	if !bbox.IsEmpty() {
		fmt.Printf("  Size:       %.3f x %.3f mm\n", bbox.Width(), bbox.Height())
	}

	if !verifyGeometry {
		return nil
	}
	if hdr == nil {
		return fmt.Errorf("cannot verify %s: no parameter header", path)
	}
	if err := verify(hdr.Spec, fp, dialect); err != nil {
		return err
	}
	fmt.Printf("  Verify:     OK\n")
	return nil
}

func printSpec(s antenna.Spec) {
	fmt.Printf("  Parameters:\n")
	fmt.Printf("    %-22s %s\n", header.KeyModuleName, s.Name)
	fmt.Printf("    %-22s %d\n", header.KeyTurns, s.Turns)
	fmt.Printf("    %-22s %g\n", header.KeyAntennaLength, s.Length)
	fmt.Printf("    %-22s %g\n", header.KeyAntennaWidth, s.Width)
	fmt.Printf("    %-22s %g\n", header.KeyConductorWidth, s.ConductorWidth)
	fmt.Printf("    %-22s %g\n", header.KeyConductorSpace, s.ConductorSpace)
	fmt.Printf("    %-22s %g\n", header.KeyDrillSize, s.DrillSize)
	fmt.Printf("    %-22s %g\n", header.KeyMinSlopeSpace, s.MinSlopeSpace)
	fmt.Printf("    %-22s %g\n", header.KeySilkMargin, s.SilkMargin)
	fmt.Printf("    %-22s %d (%s)\n", header.KeyStyle, int(s.Style), s.Style)
}

// verify regenerates spec and compares it with fp in the file's dialect.
// The edit timestamp is taken from the file.
func verify(spec antenna.Spec, fp *footprint.Footprint, dialect footprint.Dialect) error {
	res, err := antenna.Generate(spec, antenna.WithClock(func() time.Time { return time.Unix(fp.Tedit, 0) }))
	if err != nil {
		return fmt.Errorf("failed to regenerate %s: %w", spec.Name, err)
	}

	w := footprint.NewWriter(dialect)
	want, err := w.Format(res.Footprint)
	if err != nil {
		return err
	}
	got, err := w.Format(fp)
	if err != nil {
		return err
	}
	if bytes.Equal(got, want) {
		return nil
	}

	line, gotLine, wantLine := firstDifference(got, want)
	return fmt.Errorf("geometry differs from parameters at line %d:\n  file:     %s\n  expected: %s",
		line, gotLine, wantLine)
}

func firstDifference(a, b []byte) (int, string, string) {
	sa := bufio.NewScanner(bytes.NewReader(a))
	sb := bufio.NewScanner(bytes.NewReader(b))
	for n := 1; ; n++ {
		okA, okB := sa.Scan(), sb.Scan()
		if !okA && !okB {
			return n, "", ""
		}
		if sa.Text() != sb.Text() || okA != okB {
			return n, strings.TrimSpace(sa.Text()), strings.TrimSpace(sb.Text())
		}
	}
}
