package main

import (
	"fmt"
	"gallery/cmd/gallery/render"
	"gallery/internal/catalog"
	"gallery/internal/query"
)

type ListCmd struct {
	Dir        string `arg:"" help:"Images root directory"`
	Collection string `short:"C" xor:"filter" help:"Only images in this collection"`
	Featured   bool   `short:"f" xor:"filter" help:"Only featured images"`
	Names      bool   `short:"n" help:"Output only image paths (one per line)"`
}

func (cmd *ListCmd) filter() query.Filter {
	switch {
	case cmd.Featured:
		return query.Featured()
	case cmd.Collection != "":
		return query.ByCollection(cmd.Collection)
	default:
		return query.All()
	}
}

func (cmd *ListCmd) Run(g *Globals) error {
	root, err := imagesRoot(cmd.Dir)
	if err != nil {
		return err
	}
	path := g.catalogPath(root)
	svc := g.queryService(root)

	images, err := svc.Resolve(path, cmd.filter())
	if err != nil {
		return err
	}

	if cmd.Names {
		for _, img := range images {
			fmt.Fprintln(g.Out, img.Image.Path)
		}
		return nil
	}

	collections, err := svc.GetCollections(path)
	if err != nil {
		return err
	}

	fmt.Fprint(g.Out, g.Render.RenderImageList(imageListView(images, collections)))
	return nil
}

func imageListView(images []query.ResolvedImage, collections []catalog.Collection) render.ImageListView {
	names := make(map[string]string, len(collections))
	for _, c := range collections {
		names[c.ID] = c.Name
	}

	view := render.ImageListView{Items: make([]render.ImageListItem, 0, len(images))}
	for _, r := range images {
		item := render.ImageListItem{
			Title:       r.Image.Meta.Title,
			Path:        r.Image.Path,
			Description: r.Image.Meta.Description,
			Format:      r.Asset.Format,
			Width:       r.Asset.Width,
			Height:      r.Asset.Height,
		}
		for _, id := range r.Image.Meta.Collections {
			if name, ok := names[id]; ok {
				item.Collections = append(item.Collections, name)
			} else {
				item.Collections = append(item.Collections, id)
			}
		}
		view.Items = append(view.Items, item)
	}
	return view
}
