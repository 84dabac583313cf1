package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/soypat/sdfparts/form3/obj3/extrusion"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog profiles and their key dimensions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSIZE\tCELLS\tCENTER HOLE\tCORNER HOLE\tRECESS")
		for _, name := range catalog.Names() {
			p, _ := catalog.Lookup(name)
			recess := "-"
			if p.HasRecess {
				recess = fmt.Sprintf("%gx%g", p.Recess.Width, p.Recess.Depth)
			}
			fmt.Fprintf(w, "%s\t%gx%g\t%d\t%s\t%s\t%s\n",
				name, p.Width, p.Height, p.Cells(), p.CenterHole, p.CornerHole, recess)
		}
		return w.Flush()
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <profile>",
	Short: "Print profile parameters, derived values and mass per metre",
	Example: `  partgen info E2020
  partgen info E4040 --corner-holes`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().Bool("corner-holes", false, "cut corner holes before computing area")
	infoCmd.Flags().Int("resolution", 400, "area samples across the profile width")
}

func runInfo(cmd *cobra.Command, args []string) error {
	p, err := lookupProfile(catalog, args[0])
	if err != nil {
		return err
	}
	cornerHoles := cfg.GetBool("corner-holes")
	area, err := extrusion.Area(p, cornerHoles, cfg.GetInt("resolution"))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "name\t%s\n", p.Name)
	fmt.Fprintf(w, "size\t%g x %g mm (%d cells)\n", p.Width, p.Height, p.Cells())
	fmt.Fprintf(w, "center hole\t%s\n", p.CenterHole)
	fmt.Fprintf(w, "corner hole\t%s\n", p.CornerHole)
	fmt.Fprintf(w, "center motif\t%s\n", p.CenterMotif)
	fmt.Fprintf(w, "channel width\t%g mm\n", p.ChannelWidth)
	fmt.Fprintf(w, "internal channel width\t%g mm\n", p.InternalChannelWidth)
	fmt.Fprintf(w, "tab\t%g x %g mm\n", p.TabLength(), p.TabThickness)
	fmt.Fprintf(w, "spar\t%g x %g mm\n", p.SparLength(), p.SparThickness)
	fmt.Fprintf(w, "corner square\t%g mm\n", p.CornerSquare())
	fmt.Fprintf(w, "fillet radius\t%g mm\n", p.FilletRadius)
	if p.HasRecess {
		fmt.Fprintf(w, "recess\t%g x %g mm\n", p.Recess.Width, p.Recess.Depth)
	}
	fmt.Fprintf(w, "area\t%.1f mm²\n", area)
	fmt.Fprintf(w, "mass\t%.0f g/m\n", area*1000*extrusion.AluminiumDensity)
	return w.Flush()
}
