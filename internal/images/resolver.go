// Package images resolves image references from either content source into
// concrete, fetchable URLs. Resolution never fails: absent or malformed
// references degrade to a fixed placeholder.
package images

import (
	"atrium_site/internal/adapters/sanity"
	"atrium_site/internal/domain"
	"atrium_site/internal/shared"
)

// PlaceholderURL is served whenever no real image reference is resolvable.
const PlaceholderURL = "/images/placeholder.jpg"

type Resolver struct {
	mode      shared.Mode
	projectID string
	dataset   string
}

func NewResolver(mode shared.Mode, projectID, dataset string) Resolver {
	return Resolver{mode: mode, projectID: projectID, dataset: dataset}
}

// Resolve returns a builder for ref. In fallback mode (and for direct-URL
// references) the builder is static: transforms are no-ops because fallback
// images are pre-sized files, not a transform service. In remote mode the
// builder encodes transforms into the CDN URL.
func (r Resolver) Resolve(ref *domain.ImageRef) domain.ImageBuilder {
	if ref == nil || ref.Asset == nil {
		return StaticBuilder{url: PlaceholderURL}
	}

	if r.mode == shared.ModeFallback {
		if u := ref.DirectURL(); u != "" {
			return StaticBuilder{url: u}
		}
		return StaticBuilder{url: PlaceholderURL}
	}

	// Remote mode still sees direct URLs for fixture-era documents.
	if ref.AssetRef() == "" {
		if u := ref.DirectURL(); u != "" {
			return StaticBuilder{url: u}
		}
		return StaticBuilder{url: PlaceholderURL}
	}
	b, err := sanity.NewImageBuilder(r.projectID, r.dataset, ref.AssetRef())
	if err != nil {
		return StaticBuilder{url: PlaceholderURL}
	}
	return b
}

// StaticBuilder is bound to a literal URL and ignores every transform.
type StaticBuilder struct{ url string }

func NewStaticBuilder(url string) StaticBuilder { return StaticBuilder{url: url} }

func (s StaticBuilder) Width(int) domain.ImageBuilder     { return s }
func (s StaticBuilder) Height(int) domain.ImageBuilder    { return s }
func (s StaticBuilder) Quality(int) domain.ImageBuilder   { return s }
func (s StaticBuilder) Format(string) domain.ImageBuilder { return s }
func (s StaticBuilder) Fit(string) domain.ImageBuilder    { return s }
func (s StaticBuilder) Auto(string) domain.ImageBuilder   { return s }
func (s StaticBuilder) URL() string                       { return s.url }
