package main

import (
	"errors"
	"fmt"
	"gallery/internal/catalog"
	"gallery/internal/ui"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

type EditCmd struct {
	Dir         string  `arg:"" help:"Images root directory"`
	Image       string  `arg:"" help:"Catalog path of the image to edit"`
	Title       *string `short:"t" help:"Set the title"`
	Description *string `short:"d" help:"Set the description"`
	Collections *string `help:"Replace collection ids (comma separated)"`
	Featured    *bool   `negatable:"" help:"Mark the image as featured"`
}

func (cmd *EditCmd) hasEdits() bool {
	return cmd.Title != nil || cmd.Description != nil || cmd.Collections != nil || cmd.Featured != nil
}

func (cmd *EditCmd) applyEdits(img *catalog.GalleryImage) {
	if cmd.Title != nil {
		img.Meta.Title = strings.TrimSpace(*cmd.Title)
	}
	if cmd.Description != nil {
		img.Meta.Description = strings.TrimSpace(*cmd.Description)
	}
	if cmd.Collections != nil {
		featured := img.IsFeatured()
		img.Meta.Collections = splitList(*cmd.Collections)
		*img = img.WithFeatured(featured || img.IsFeatured())
	}
	if cmd.Featured != nil {
		*img = img.WithFeatured(*cmd.Featured)
	}
}

func (cmd *EditCmd) Run(g *Globals) error {
	root, err := imagesRoot(cmd.Dir)
	if err != nil {
		return err
	}
	path := g.catalogPath(root)

	c, err := g.Store.Load(path)
	if err != nil {
		return err
	}
	original, err := findImage(c, root, cmd.Image)
	if err != nil {
		return err
	}

	edited := original.Clone()
	if cmd.hasEdits() {
		cmd.applyEdits(&edited)
	} else if err := g.EditForm(c, &edited); err != nil {
		return handleEditFormError(err)
	}

	updated, _ := c.ReplaceImage(edited)
	if err := catalog.Validate(updated); err != nil {
		return err
	}
	if err := g.Store.Persist(path, updated); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	renderEditSummary(g, original, edited)
	return nil
}

func handleEditFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("Title cannot be empty")
	}
	return nil
}

// runEditForm asks for every editable field, offering the catalog's declared
// collections as choices.
func runEditForm(c catalog.Catalog, img *catalog.GalleryImage) error {
	title := img.Meta.Title
	description := img.Meta.Description
	featured := img.IsFeatured()
	var selected []string
	for _, id := range img.Meta.Collections {
		if !catalog.IsVirtualCollection(id) {
			selected = append(selected, id)
		}
	}

	options := make([]huh.Option[string], 0, len(c.Collections))
	for _, col := range c.Collections {
		options = append(options, huh.NewOption(col.Name, col.ID).Selected(img.InCollection(col.ID)))
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&title).
				Validate(validateTitle),
			huh.NewText().
				Title("Description").
				Value(&description),
		),
	}
	if len(options) > 0 {
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Collections").
				Options(options...).
				Value(&selected),
		))
	}
	groups = append(groups, huh.NewGroup(
		huh.NewConfirm().
			Title("Featured").
			Value(&featured),
	))

	if err := huh.NewForm(groups...).WithTheme(ui.FormTheme()).Run(); err != nil {
		return err
	}

	img.Meta.Title = strings.TrimSpace(title)
	img.Meta.Description = strings.TrimSpace(description)
	img.Meta.Collections = selected
	*img = img.WithFeatured(featured)
	return nil
}

func renderEditSummary(g *Globals, before, after catalog.GalleryImage) {
	fields := []ui.Field{
		{Label: "Title", Value: after.Meta.Title, Previous: before.Meta.Title},
		{Label: "Description", Value: after.Meta.Description, Previous: before.Meta.Description},
		{Label: "Collections", Value: strings.Join(after.Meta.Collections, ", "), Previous: strings.Join(before.Meta.Collections, ", ")},
		{Label: "Featured", Value: strconv.FormatBool(after.IsFeatured()), Previous: strconv.FormatBool(before.IsFeatured())},
	}
	fmt.Fprint(g.Out, ui.RenderSummary("Updated "+after.Path, fields))
}
