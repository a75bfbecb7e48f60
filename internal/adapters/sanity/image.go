package sanity

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"atrium_site/internal/domain"
)

const cdnBase = "https://cdn.sanity.io/images"

// ParseAssetRef splits an asset reference of the form
// "image-<id>-<width>x<height>-<ext>" into the CDN filename "<id>-<WxH>.<ext>".
func ParseAssetRef(ref string) (string, error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", fmt.Errorf("malformed asset ref %q", ref)
	}
	id, dims, ext := parts[1], parts[2], parts[3]
	if id == "" || ext == "" || !strings.Contains(dims, "x") {
		return "", fmt.Errorf("malformed asset ref %q", ref)
	}
	return id + "-" + dims + "." + ext, nil
}

// CDNBuilder builds image CDN URLs for remote asset references, encoding
// transform parameters into the query string. Builders are immutable: every
// transform returns a copy, so a partially-applied builder can be reused.
type CDNBuilder struct {
	base   string
	params url.Values
}

// NewImageBuilder resolves ref against the project's CDN namespace. The error
// is only returned for malformed references; callers that must not fail
// substitute a placeholder builder instead.
func NewImageBuilder(projectID, dataset, ref string) (CDNBuilder, error) {
	file, err := ParseAssetRef(ref)
	if err != nil {
		return CDNBuilder{}, err
	}
	return CDNBuilder{
		base: fmt.Sprintf("%s/%s/%s/%s", cdnBase, projectID, dataset, file),
	}, nil
}

func (b CDNBuilder) with(k, v string) CDNBuilder {
	params := url.Values{}
	for key, vals := range b.params {
		params[key] = vals
	}
	params.Set(k, v)
	return CDNBuilder{base: b.base, params: params}
}

func (b CDNBuilder) Width(n int) domain.ImageBuilder  { return b.with("w", strconv.Itoa(n)) }
func (b CDNBuilder) Height(n int) domain.ImageBuilder { return b.with("h", strconv.Itoa(n)) }

func (b CDNBuilder) Quality(n int) domain.ImageBuilder {
	return b.with("q", strconv.Itoa(n))
}

func (b CDNBuilder) Format(fm string) domain.ImageBuilder { return b.with("fm", fm) }
func (b CDNBuilder) Fit(mode string) domain.ImageBuilder  { return b.with("fit", mode) }
func (b CDNBuilder) Auto(mode string) domain.ImageBuilder { return b.with("auto", mode) }

func (b CDNBuilder) URL() string {
	if len(b.params) == 0 {
		return b.base
	}
	return b.base + "?" + b.params.Encode()
}
