package main

import (
	"fmt"

	"github.com/soypat/sdfparts/form2/obj2"
	"github.com/soypat/sdfparts/form3/obj3"
	"github.com/spf13/cobra"
)

var bracketCmd = &cobra.Command{
	Use:   "bracket",
	Short: "Export a flat joining bracket for an extrusion face",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		k := obj3.BracketFor(cfg.GetFloat64("profile-width"), cfg.GetFloat64("hole"), cfg.GetFloat64("thickness"))
		s, err := obj3.Bracket(k)
		if err != nil {
			return err
		}
		return exportSTL(s, cfg.GetString("output"))
	},
}

var pillarCmd = &cobra.Command{
	Use:   "pillar",
	Short: "Export a spacer pillar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := obj3.ParseCylinderStyle(cfg.GetString("style"))
		if err != nil {
			return err
		}
		k := obj3.PillarParams{
			Height:       cfg.GetFloat64("height"),
			Diameter:     cfg.GetFloat64("diameter"),
			Style:        style,
			HoleDiameter: cfg.GetFloat64("hole"),
			HoleDepth:    cfg.GetFloat64("hole-depth"),
			NumberWebs:   cfg.GetInt("webs"),
			Chamfer:      cfg.GetFloat64("chamfer"),
		}
		if k.NumberWebs > 0 {
			k.WebHeight = k.Height / 2
			k.WebDiameter = 2 * k.Diameter
			k.WebWidth = k.Diameter / 4
		}
		s, err := obj3.Pillar(k)
		if err != nil {
			return err
		}
		return exportSTL(s, cfg.GetString("output"))
	},
}

var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Export a corner block joining three extrusions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := obj3.CornerBlock(obj3.CornerBlockParams{
			Size:         cfg.GetFloat64("size"),
			HoleDiameter: cfg.GetFloat64("hole"),
			Round:        cfg.GetFloat64("round"),
		})
		if err != nil {
			return err
		}
		return exportSTL(s, cfg.GetString("output"))
	},
}

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Export a joining plate spanning extrusion cells",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		width, cells := cfg.GetFloat64("profile-width"), cfg.GetInt("cells")
		if !(width > 0) || cells < 1 {
			return fmt.Errorf("plate needs a positive width and at least one cell, got %g and %d", width, cells)
		}
		k := obj2.JoiningPlateParams(width, cells, cfg.GetFloat64("hole"), cfg.GetFloat64("thickness"))
		s, err := obj3.Panel(k)
		if err != nil {
			return err
		}
		return exportSTL(s, cfg.GetString("output"))
	},
}

func init() {
	bracketCmd.Flags().Float64("profile-width", 20, "width of the extrusion face in mm")
	bracketCmd.Flags().Float64("hole", 5.2, "screw hole diameter in mm")
	bracketCmd.Flags().Float64("thickness", 4, "bracket thickness in mm")
	bracketCmd.Flags().StringP("output", "o", "bracket.stl", "output file")

	pillarCmd.Flags().Float64("height", 20, "pillar height in mm")
	pillarCmd.Flags().Float64("diameter", 8, "pillar outer diameter in mm")
	pillarCmd.Flags().String("style", "circular", "pillar section (circular, hex)")
	pillarCmd.Flags().Float64("hole", 3.2, "hole diameter in mm")
	pillarCmd.Flags().Float64("hole-depth", 0, "blind hole depth, 0 for a through hole, negative for a support stub")
	pillarCmd.Flags().Int("webs", 0, "number of gussets around the base")
	pillarCmd.Flags().Float64("chamfer", 0, "top edge chamfer as a fraction of the radius")
	pillarCmd.Flags().StringP("output", "o", "pillar.stl", "output file")

	blockCmd.Flags().Float64("size", 20, "cube side in mm")
	blockCmd.Flags().Float64("hole", 5.2, "screw hole diameter in mm")
	blockCmd.Flags().Float64("round", 1, "edge rounding in mm")
	blockCmd.Flags().StringP("output", "o", "block.stl", "output file")

	panelCmd.Flags().Float64("profile-width", 20, "width of an extrusion cell in mm")
	panelCmd.Flags().Int("cells", 2, "number of cells spanned")
	panelCmd.Flags().Float64("hole", 5.2, "screw hole diameter in mm")
	panelCmd.Flags().Float64("thickness", 3, "plate thickness in mm")
	panelCmd.Flags().StringP("output", "o", "plate.stl", "output file")

	for _, cmd := range []*cobra.Command{bracketCmd, pillarCmd, blockCmd, panelCmd} {
		cmd.Flags().String(cfgKeyMaterial, defaultMaterial, "compensate shrinkage of a print material (none, abs, petg, pla)")
		meshFlags(cmd.Flags())
	}
}
