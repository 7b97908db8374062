package main

import (
	"context"
	"fmt"
)

type ScanCmd struct {
	Dir string `arg:"" optional:"" help:"Images root directory"`
}

func (cmd *ScanCmd) Run(g *Globals) error {
	root, err := imagesRoot(cmd.Dir)
	if err != nil {
		return err
	}

	path, c, err := g.indexer().Update(context.Background(), root)
	if err != nil {
		return err
	}

	g.Logger.Info("Scan complete", "images", len(c.Images), "collections", len(c.Collections))
	fmt.Fprintf(g.Out, "Gallery file written to: %s\n", path)
	return nil
}
