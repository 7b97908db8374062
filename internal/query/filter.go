package query

import (
	"fmt"
	"gallery/internal/catalog"
)

type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterByCollection
	FilterFeatured
)

// Filter selects catalog images. Build one with All, ByCollection or Featured.
type Filter struct {
	Kind         FilterKind
	CollectionID string
}

func All() Filter {
	return Filter{Kind: FilterAll}
}

func ByCollection(id string) Filter {
	return Filter{Kind: FilterByCollection, CollectionID: id}
}

func Featured() Filter {
	return Filter{Kind: FilterFeatured}
}

func (f Filter) check() error {
	switch f.Kind {
	case FilterAll, FilterFeatured:
		return nil
	case FilterByCollection:
		if f.CollectionID == "" {
			return catalog.ErrEmptyCollectionID
		}
		return nil
	default:
		return fmt.Errorf("unsupported filter kind %d", f.Kind)
	}
}

func (f Filter) Match(img catalog.GalleryImage) bool {
	switch f.Kind {
	case FilterAll:
		return true
	case FilterByCollection:
		return img.InCollection(f.CollectionID)
	case FilterFeatured:
		return img.IsFeatured()
	default:
		return false
	}
}

func (f Filter) String() string {
	switch f.Kind {
	case FilterAll:
		return "all"
	case FilterByCollection:
		return "collection " + f.CollectionID
	case FilterFeatured:
		return catalog.FeaturedCollectionID
	default:
		return fmt.Sprintf("filter(%d)", f.Kind)
	}
}
