package main

import (
	"fmt"
	"gallery/internal/scan"
	"path/filepath"
	"strings"
	"text/tabwriter"
)

type ShowCmd struct {
	Dir   string `arg:"" help:"Images root directory"`
	Image string `arg:"" help:"Catalog path of the image"`
	Path  bool   `help:"Output only the image file path (for scripting)"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	root, err := imagesRoot(cmd.Dir)
	if err != nil {
		return err
	}

	c, err := g.Store.Load(g.catalogPath(root))
	if err != nil {
		return err
	}
	img, err := findImage(c, root, cmd.Image)
	if err != nil {
		return err
	}

	file := filepath.Join(root, filepath.FromSlash(img.Path))
	if cmd.Path {
		fmt.Fprintln(g.Out, file)
		return nil
	}

	w := tabwriter.NewWriter(g.Out, 0, 0, 1, ' ', 0)
	fmt.Fprintf(w, "Path:\t%s\n", img.Path)
	fmt.Fprintf(w, "Title:\t%s\n", img.Meta.Title)
	if img.Meta.Description != "" {
		fmt.Fprintf(w, "Description:\t%s\n", img.Meta.Description)
	}
	if len(img.Meta.Collections) > 0 {
		fmt.Fprintf(w, "Collections:\t%s\n", strings.Join(img.Meta.Collections, ", "))
	}

	capture, err := scan.ReadCapture(file)
	if err != nil {
		g.Logger.Warn("Cannot read capture metadata", "path", file, "error", err)
	}
	if capture.CameraModel != nil {
		fmt.Fprintf(w, "Camera:\t%s\n", *capture.CameraModel)
	}
	if capture.LensModel != nil {
		fmt.Fprintf(w, "Lens:\t%s\n", *capture.LensModel)
	}
	if capture.CaptureDate != nil {
		fmt.Fprintf(w, "Captured:\t%s\n", capture.CaptureDate.Format("2006-01-02 15:04:05"))
	}
	if exposure := exposureSummary(capture); exposure != "" {
		fmt.Fprintf(w, "Exposure:\t%s\n", exposure)
	}
	return w.Flush()
}
