package main

import (
	"fmt"
	"os"
	"time"

	sdf "github.com/soypat/sdfparts"
	"github.com/soypat/sdfparts/form3/obj3/extrusion"
	"github.com/soypat/sdfparts/helpers/matter"
	"github.com/soypat/sdfparts/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var buildCmd = &cobra.Command{
	Use:   "build <profile>",
	Short: "Export an extrusion as a binary STL file",
	Example: `  partgen build E2020 --length 250 -o E2020x250.stl
  partgen build E2040 --corner-holes --material pla`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

var previewCmd = &cobra.Command{
	Use:   "preview <profile>",
	Short: "Render a shaded PNG preview of an extrusion",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	for _, cmd := range []*cobra.Command{buildCmd, previewCmd} {
		cmd.Flags().Float64(cfgKeyLength, defaultLength, "extrusion length in mm")
		cmd.Flags().Bool("centered", false, "center the extrusion about the XY plane")
		cmd.Flags().Bool("corner-holes", false, "cut corner holes")
		cmd.Flags().StringP("output", "o", "", "output file (default <profile>.stl or <profile>.png)")
		meshFlags(cmd.Flags())
	}
	buildCmd.Flags().String(cfgKeyMaterial, defaultMaterial, "compensate shrinkage of a print material (none, abs, petg, pla)")
	previewCmd.Flags().Int("width", 800, "image width in pixels")
	previewCmd.Flags().Int("height", 600, "image height in pixels")
}

// meshFlags adds the flags controlling the mesher.
func meshFlags(fs *pflag.FlagSet) {
	fs.Int(cfgKeyQuality, defaultQuality, "mesh cells along the longest side")
	fs.Int(cfgKeyWorkers, 0, "goroutines evaluating the model (default number of CPUs)")
}

func buildProfile(name string) (extrusion.Profile, sdf.SDF3, error) {
	p, err := lookupProfile(catalog, name)
	if err != nil {
		return p, nil, err
	}
	length := cfg.GetFloat64(cfgKeyLength)
	solid, err := extrusion.Build(p, length, cfg.GetBool("centered"), cfg.GetBool("corner-holes"))
	if err != nil {
		return p, nil, err
	}
	logger.Infof("%s: %d cells, length %g mm", p.Name, p.Cells(), length)
	return p, solid, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	p, solid, err := buildProfile(args[0])
	if err != nil {
		return err
	}
	return exportSTL(solid, outputName(p.Name, ".stl"))
}

func runPreview(cmd *cobra.Command, args []string) error {
	p, solid, err := buildProfile(args[0])
	if err != nil {
		return err
	}
	r, err := newRenderer(solid)
	if err != nil {
		return err
	}
	model, err := render.RenderAll(r)
	if err != nil {
		return err
	}
	output := outputName(p.Name, ".png")
	err = render.SavePreview(output, model, render.PreviewOptions{
		Width:  cfg.GetInt("width"),
		Height: cfg.GetInt("height"),
	})
	if err != nil {
		return err
	}
	logger.Infof("wrote %s (%d triangles)", output, len(model))
	return nil
}

func outputName(name, ext string) string {
	if output := cfg.GetString("output"); output != "" {
		return output
	}
	return name + ext
}

func newRenderer(s sdf.SDF3) (render.Renderer, error) {
	quality := cfg.GetInt(cfgKeyQuality)
	if quality < 2 {
		return nil, fmt.Errorf("quality %d must be 2 or larger", quality)
	}
	return render.NewRenderer(s, quality, render.Options{Workers: cfg.GetInt(cfgKeyWorkers)}), nil
}

// applyMaterial scales s for the configured print material.
func applyMaterial(s sdf.SDF3) (sdf.SDF3, error) {
	name := cfg.GetString(cfgKeyMaterial)
	if name == "" || name == defaultMaterial {
		return s, nil
	}
	m, ok := matter.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown material %q (available: %v)", name, matter.Names())
	}
	logger.Infof("scaling by %.4f for %s shrinkage", m.ScaleFactor(), m)
	return m.Scale(s), nil
}

// exportSTL meshes s after material compensation and writes it to output.
func exportSTL(s sdf.SDF3, output string) error {
	s, err := applyMaterial(s)
	if err != nil {
		return err
	}
	r, err := newRenderer(s)
	if err != nil {
		return err
	}
	start := time.Now()
	if err := render.CreateSTL(output, r); err != nil {
		return fmt.Errorf("export %s: %w", output, err)
	}
	info, err := os.Stat(output)
	if err != nil {
		return err
	}
	logger.Infof("wrote %s (%d triangles) in %s", output, (info.Size()-84)/50, time.Since(start).Round(time.Millisecond))
	return nil
}
