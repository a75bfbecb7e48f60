package domain

import "strings"

// ImageRef is the discriminated image value carried by entities. It is either
// a remote asset reference (Asset.Ref, resolved by the CMS image CDN) or a
// direct URL wrapper (Asset.URL) produced in fallback mode. It is never
// renderable on its own; callers resolve it through images.Resolver.
type ImageRef struct {
	Asset *ImageAsset `json:"asset,omitempty"`
}

type ImageAsset struct {
	Ref string `json:"_ref,omitempty"`
	URL string `json:"url,omitempty"`
}

// DirectImage wraps a literal URL the way fallback fixtures do.
func DirectImage(url string) *ImageRef {
	return &ImageRef{Asset: &ImageAsset{URL: url}}
}

// AssetImage wraps a CMS asset reference.
func AssetImage(ref string) *ImageRef {
	return &ImageRef{Asset: &ImageAsset{Ref: ref}}
}

// DirectURL returns the literal URL if this is a direct-URL reference.
func (r *ImageRef) DirectURL() string {
	if r == nil || r.Asset == nil {
		return ""
	}
	return r.Asset.URL
}

// AssetRef returns the CMS asset reference id, if any.
func (r *ImageRef) AssetRef() string {
	if r == nil || r.Asset == nil {
		return ""
	}
	return strings.TrimSpace(r.Asset.Ref)
}
