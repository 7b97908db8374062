package main

import (
	"errors"
	"fmt"
	"gallery/internal/catalog"
)

type ValidateCmd struct {
	Dir string `arg:"" help:"Images root directory"`
}

func (cmd *ValidateCmd) Run(g *Globals) error {
	root, err := imagesRoot(cmd.Dir)
	if err != nil {
		return err
	}
	path := g.catalogPath(root)

	c, err := g.Store.Load(path)
	if err != nil {
		return err
	}

	if err := catalog.Validate(c); err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			for _, v := range verr.Violations {
				fmt.Fprintln(g.Out, v)
			}
		}
		return fmt.Errorf("catalog %s is invalid: %w", path, err)
	}

	fmt.Fprintf(g.Out, "Catalog OK: %d images, %d collections\n", len(c.Images), len(c.Collections))
	return nil
}
