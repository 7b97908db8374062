package catalog

// Merge combines a previously persisted catalog with a fresh scan. Existing
// records keep their position and content, so user edits to a rediscovered
// path survive; scanned records whose path or id is new are appended in scan
// order. Merge is additive only: images removed from disk stay in the result
// until edited out by hand (see Stale).
//
// Duplicate keys inside either input collapse to their first occurrence.
func Merge(existing, scanned Catalog) Catalog {
	merged := Catalog{
		Collections: mergeBy(existing.Collections, scanned.Collections, func(c Collection) string { return c.ID }),
		Images:      mergeBy(existing.Images, scanned.Images, func(img GalleryImage) string { return img.Path }),
	}
	return merged.Clone()
}

func mergeBy[T any](existing, scanned []T, key func(T) string) []T {
	seen := make(map[string]bool, len(existing)+len(scanned))
	out := make([]T, 0, len(existing)+len(scanned))
	for _, src := range [][]T{existing, scanned} {
		for _, v := range src {
			k := key(v)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, v)
		}
	}
	return out
}

// Stale lists the image paths of c that a scan did not rediscover.
func Stale(c, scanned Catalog) []string {
	found := make(map[string]bool, len(scanned.Images))
	for _, img := range scanned.Images {
		found[img.Path] = true
	}
	var stale []string
	for _, img := range c.Images {
		if !found[img.Path] {
			stale = append(stale, img.Path)
		}
	}
	return stale
}
