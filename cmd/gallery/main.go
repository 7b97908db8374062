package main

import (
	"gallery/cmd/gallery/render"
	"gallery/internal/catalog"
	"gallery/internal/config"
	"gallery/internal/query"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Scan        ScanCmd        `cmd:"" default:"withargs" help:"Scan an images directory and update its catalog"`
	Thumbnails  ThumbnailsCmd  `cmd:"" aliases:"t" help:"Create thumbnails for a source directory"`
	List        ListCmd        `cmd:"" aliases:"ls" help:"List catalog images"`
	Collections CollectionsCmd `cmd:"" help:"List catalog collections"`
	Show        ShowCmd        `cmd:"" help:"Show one catalog image"`
	Edit        EditCmd        `cmd:"" aliases:"e" help:"Edit image metadata"`
	Validate    ValidateCmd    `cmd:"" help:"Check the catalog's collection references"`

	CatalogPath string `name:"catalog" short:"c" help:"Path to catalog file (defaults to <dir>/$GALLERY_FILE)"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	globals := &Globals{
		Config:      cfg,
		Store:       catalog.NewYAMLStore(),
		Assets:      query.FSAssetLoader{},
		Out:         os.Stdout,
		Render:      render.NewLipglossRendererAuto(os.Stdout),
		Logger:      logger,
		CatalogPath: c.CatalogPath,
		EditForm:    runEditForm,
	}
	ctx.Bind(globals)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("gallery"),
		kong.Description("Photo gallery catalog builder"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
