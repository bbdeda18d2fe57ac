package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"castor/internal/kind"
	"castor/internal/snapshot"
)

var (
	tableWrite        bool
	tableCheck        bool
	tableSnapshotPath string
)

func init() {
	tableCmd.Flags().BoolVar(&tableWrite, "write", false, "write the promotion table snapshot")
	tableCmd.Flags().BoolVar(&tableCheck, "check", false, "compare the table against the snapshot")
	tableCmd.Flags().StringVar(&tableSnapshotPath, "snapshot", "promotions.mp", "snapshot file path")
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show the common-kind promotion matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if tableWrite {
			if err := snapshot.Write(tableSnapshotPath, snapshot.Capture()); err != nil {
				return err
			}
			fmt.Fprintf(out, "wrote %s\n", tableSnapshotPath)
			return nil
		}
		if tableCheck {
			stored, ok, err := snapshot.Load(tableSnapshotPath)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no snapshot at %s (run with --write first)", tableSnapshotPath)
			}
			bag := snapshot.Compare(stored, snapshot.Capture())
			printBag(out, bag)
			if bag.HasErrors() {
				return fmt.Errorf("promotion table drifted from %s", tableSnapshotPath)
			}
			fmt.Fprintf(out, "table matches %s\n", tableSnapshotPath)
			return nil
		}

		renderTable(cmd)
		return nil
	},
}

// renderTable prints the matrix with one-letter column codes and the cell's
// result code, colored by the result family.
func renderTable(cmd *cobra.Command) {
	out := cmd.OutOrStdout()

	labelWidth := 0
	for _, k := range kind.AllKinds {
		if w := runewidth.StringWidth(k.String()); w > labelWidth {
			labelWidth = w
		}
	}

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", labelWidth+2))
	for _, b := range kind.AllKinds {
		header.WriteString(fmt.Sprintf("%c ", b.Char()))
	}
	fmt.Fprintln(out, header.String())

	for _, a := range kind.AllKinds {
		var row strings.Builder
		row.WriteString(runewidth.FillRight(a.String(), labelWidth))
		row.WriteString("  ")
		for _, b := range kind.AllKinds {
			r := kind.Promote(a, b)
			row.WriteString(familyColor(r).Sprintf("%c ", r.Char()))
		}
		fmt.Fprintln(out, row.String())
	}
}

func familyColor(k kind.Kind) *color.Color {
	switch {
	case k == kind.Bool:
		return color.New(color.FgWhite)
	case k.Signed():
		return color.New(color.FgCyan)
	case k.Unsigned():
		return color.New(color.FgGreen)
	case k.Complex():
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgYellow)
	}
}
