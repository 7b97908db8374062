package main

import (
	"fmt"
	"text/tabwriter"
)

type CollectionsCmd struct {
	Dir string `arg:"" help:"Images root directory"`
	IDs bool   `short:"n" help:"Output only collection ids (one per line)"`
}

func (cmd *CollectionsCmd) Run(g *Globals) error {
	root, err := imagesRoot(cmd.Dir)
	if err != nil {
		return err
	}

	collections, err := g.queryService(root).GetCollections(g.catalogPath(root))
	if err != nil {
		return err
	}

	if cmd.IDs {
		for _, c := range collections {
			fmt.Fprintln(g.Out, c.ID)
		}
		return nil
	}

	if len(collections) == 0 {
		fmt.Fprintln(g.Out, "No collections found.")
		return nil
	}

	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	fmt.Fprintln(w, "--\t----")
	for _, c := range collections {
		fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Name)
	}
	return w.Flush()
}
