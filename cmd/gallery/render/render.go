package render

type Renderer interface {
	RenderImageList(view ImageListView) string
}

type ImageListView struct {
	Items []ImageListItem
}

type ImageListItem struct {
	Title       string
	Path        string
	Description string
	// Collections holds display names.
	Collections []string
	Format      string
	Width       int
	Height      int
}

func (v ImageListView) IsEmpty() bool {
	return len(v.Items) == 0
}
