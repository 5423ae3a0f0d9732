package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/nfcant/pkg/antenna"
	"github.com/OpenTraceLab/nfcant/pkg/export"
)

var exportFlags specFlags

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Export antenna geometry to an Excel workbook",
	Long: `Generate an antenna and write its parameters, trace segments and pads
to an Excel workbook instead of a footprint. Segment coordinates are
absolute footprint coordinates in mm.

Examples:
  antgen export nfc_ant.xlsx
  antgen export ant.xlsx -f ant -n 4 -l 50 -w 30 -c 1 -s 0.5 -t 2`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	addSpecFlags(exportCmd.Flags(), &exportFlags)
}

func runExport(cmd *cobra.Command, args []string) error {
	dst := args[0]
	if !strings.HasSuffix(strings.ToLower(dst), ".xlsx") {
		return fmt.Errorf("export file name must end in .xlsx: %s", dst)
	}

	spec, err := resolveSpec(cmd, &exportFlags)
	if err != nil {
		return err
	}

	res, err := antenna.Generate(spec, antenna.WithClock(now))
	if err != nil {
		return fmt.Errorf("failed to generate antenna: %w", err)
	}
	for _, w := range res.Warnings {
		fmt.Println(w)
	}

	if err := export.SaveWorkbook(dst, spec, res); err != nil {
		return err
	}
	logger.Debug("exported", "path", dst, "segments", res.Footprint.PrimitiveCount())

	fmt.Printf("Wrote %s (%d segments, %d pads)\n", dst, res.Footprint.PrimitiveCount(), len(res.Footprint.Pads))
	return nil
}
