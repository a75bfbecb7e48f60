// Package content is the fetch dispatcher: one function per content kind,
// each deciding between the remote CMS and the static fallback and returning
// the canonical shape either way.
package content

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"atrium_site/internal/adapters/observability"
	"atrium_site/internal/adapters/staticdata"
	"atrium_site/internal/domain"
	"atrium_site/internal/shared"
)

// Service resolves content for a fixed source mode. The mode is set at
// construction from configuration and never re-evaluated, so all fetches
// within a request read from the same source. Not-found is a nil singleton or
// an empty list, never an error; only transport failures surface as errors.
type Service struct {
	mode     shared.Mode
	remote   domain.ContentQuerier   // nil in fallback mode
	synth    *staticdata.Synthesizer // nil in remote mode
	cache    domain.Cache
	cacheTTL time.Duration
}

func New(mode shared.Mode, remote domain.ContentQuerier, synth *staticdata.Synthesizer) *Service {
	return &Service{mode: mode, remote: remote, synth: synth}
}

// WithCache enables the optional read-through cache. TTL <= 0 leaves caching
// off, preserving fetch-per-request semantics.
func (s *Service) WithCache(c domain.Cache, ttl time.Duration) *Service {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

func (s *Service) Mode() shared.Mode { return s.mode }

func (s *Service) cached(ctx context.Context, key string, dst any) bool {
	if s.cache == nil || s.cacheTTL <= 0 {
		return false
	}
	ok, _ := s.cache.Get(ctx, key, dst)
	return ok
}

func (s *Service) store(ctx context.Context, key string, v any) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	_ = s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds()))
}

func (s *Service) GetSettings(ctx context.Context) (out *domain.SiteSettings, err error) {
	defer func() { observability.ObserveContent("settings", string(s.mode), err) }()
	if s.mode == shared.ModeFallback {
		return s.synth.Settings(), nil
	}
	if s.cached(ctx, "content:settings", &out) {
		return out, nil
	}
	var doc map[string]any
	if err = s.remote.Query(ctx, settingsQuery, nil, &doc); err != nil {
		return nil, err
	}
	out = mapSettings(doc)
	if out != nil {
		s.store(ctx, "content:settings", out)
	}
	return out, nil
}

func (s *Service) GetHomepage(ctx context.Context) (out *domain.Homepage, err error) {
	defer func() { observability.ObserveContent("homepage", string(s.mode), err) }()
	if s.mode == shared.ModeFallback {
		return s.synth.Homepage(), nil
	}
	var doc map[string]any
	if err = s.remote.Query(ctx, homepageQuery, nil, &doc); err != nil {
		return nil, err
	}
	return mapHomepage(doc), nil
}

func (s *Service) GetRooms(ctx context.Context) (out []domain.Room, err error) {
	defer func() { observability.ObserveContent("rooms", string(s.mode), err) }()
	if s.mode == shared.ModeFallback {
		return s.synth.Rooms(), nil
	}
	if s.cached(ctx, "content:rooms", &out) {
		return out, nil
	}
	var docs []map[string]any
	if err = s.remote.Query(ctx, roomsQuery, nil, &docs); err != nil {
		return nil, err
	}
	out = mapRooms(docs)
	s.store(ctx, "content:rooms", out)
	return out, nil
}

// GetRoomBySlug matches either slug.current or the raw document id, so both
// link styles resolve. Returns nil, nil when no room matches.
func (s *Service) GetRoomBySlug(ctx context.Context, slug string) (out *domain.Room, err error) {
	defer func() { observability.ObserveContent("room", string(s.mode), err) }()
	if s.mode == shared.ModeFallback {
		return s.synth.RoomBySlug(slug), nil
	}
	var doc map[string]any
	if err = s.remote.Query(ctx, roomBySlugQuery, map[string]any{"slug": slug}, &doc); err != nil {
		return nil, err
	}
	room := mapRoom(doc)
	if room == nil || room.ID == "" {
		return nil, nil
	}
	return room, nil
}

func (s *Service) GetAmenities(ctx context.Context) (out []domain.AmenityCategory, err error) {
	defer func() { observability.ObserveContent("amenities", string(s.mode), err) }()
	if s.mode == shared.ModeFallback {
		return s.synth.Amenities(), nil
	}
	var docs []map[string]any
	if err = s.remote.Query(ctx, amenitiesQuery, nil, &docs); err != nil {
		return nil, err
	}
	return mapAmenities(docs), nil
}

func (s *Service) GetExperiences(ctx context.Context) (out []domain.Experience, err error) {
	defer func() { observability.ObserveContent("experiences", string(s.mode), err) }()
	if s.mode == shared.ModeFallback {
		return s.synth.Experiences(), nil
	}
	var docs []map[string]any
	if err = s.remote.Query(ctx, experiencesQuery, nil, &docs); err != nil {
		return nil, err
	}
	return mapExperiences(docs), nil
}

func (s *Service) GetGallery(ctx context.Context) (out []domain.GalleryImage, err error) {
	defer func() { observability.ObserveContent("gallery", string(s.mode), err) }()
	if s.mode == shared.ModeFallback {
		return s.synth.Gallery(), nil
	}
	var docs []map[string]any
	if err = s.remote.Query(ctx, galleryQuery, nil, &docs); err != nil {
		return nil, err
	}
	return mapGallery(docs), nil
}

func (s *Service) GetSeasons(ctx context.Context) (out []domain.Season, err error) {
	defer func() { observability.ObserveContent("seasons", string(s.mode), err) }()
	if s.mode == shared.ModeFallback {
		return s.synth.Seasons(), nil
	}
	var docs []map[string]any
	if err = s.remote.Query(ctx, seasonsQuery, nil, &docs); err != nil {
		return nil, err
	}
	return mapSeasons(docs), nil
}

func (s *Service) GetExtras(ctx context.Context) (out []domain.Extra, err error) {
	defer func() { observability.ObserveContent("extras", string(s.mode), err) }()
	if s.mode == shared.ModeFallback {
		return s.synth.Extras(), nil
	}
	var docs []map[string]any
	if err = s.remote.Query(ctx, extrasQuery, nil, &docs); err != nil {
		return nil, err
	}
	return mapExtras(docs), nil
}

func (s *Service) GetFaq(ctx context.Context) (out []domain.FaqItem, err error) {
	defer func() { observability.ObserveContent("faq", string(s.mode), err) }()
	if s.mode == shared.ModeFallback {
		return s.synth.Faq(), nil
	}
	var docs []map[string]any
	if err = s.remote.Query(ctx, faqQuery, nil, &docs); err != nil {
		return nil, err
	}
	return mapFaq(docs), nil
}

func (s *Service) GetTestimonials(ctx context.Context) (out []domain.Testimonial, err error) {
	defer func() { observability.ObserveContent("testimonials", string(s.mode), err) }()
	if s.mode == shared.ModeFallback {
		return s.synth.Testimonials(), nil
	}
	var docs []map[string]any
	if err = s.remote.Query(ctx, testimonialsQuery, nil, &docs); err != nil {
		return nil, err
	}
	return mapTestimonials(docs), nil
}

// GetAllPageData fans out every content kind concurrently and joins
// all-or-nothing: the first failure cancels the rest and fails the aggregate.
// The ten reads are independent, so completion order does not matter.
func (s *Service) GetAllPageData(ctx context.Context) (*domain.PageData, error) {
	if s.cache != nil && s.cacheTTL > 0 {
		var cached domain.PageData
		if ok, _ := s.cache.Get(ctx, "content:pagedata", &cached); ok {
			return &cached, nil
		}
	}

	var pd domain.PageData
	// the group context dies with Wait; the caller's ctx stays live for the
	// store below
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { pd.Settings, err = s.GetSettings(gctx); return })
	g.Go(func() (err error) { pd.Homepage, err = s.GetHomepage(gctx); return })
	g.Go(func() (err error) { pd.Rooms, err = s.GetRooms(gctx); return })
	g.Go(func() (err error) { pd.Amenities, err = s.GetAmenities(gctx); return })
	g.Go(func() (err error) { pd.Experiences, err = s.GetExperiences(gctx); return })
	g.Go(func() (err error) { pd.Gallery, err = s.GetGallery(gctx); return })
	g.Go(func() (err error) { pd.Seasons, err = s.GetSeasons(gctx); return })
	g.Go(func() (err error) { pd.Extras, err = s.GetExtras(gctx); return })
	g.Go(func() (err error) { pd.Faq, err = s.GetFaq(gctx); return })
	g.Go(func() (err error) { pd.Testimonials, err = s.GetTestimonials(gctx); return })

	if err := g.Wait(); err != nil {
		return nil, err
	}

	normalize(&pd)
	s.store(ctx, "content:pagedata", pd)
	return &pd, nil
}

// normalize guarantees non-nil lists in the aggregate so consumers and the
// JSON encoding see [] rather than null.
func normalize(pd *domain.PageData) {
	if pd.Rooms == nil {
		pd.Rooms = []domain.Room{}
	}
	if pd.Amenities == nil {
		pd.Amenities = []domain.AmenityCategory{}
	}
	if pd.Experiences == nil {
		pd.Experiences = []domain.Experience{}
	}
	if pd.Gallery == nil {
		pd.Gallery = []domain.GalleryImage{}
	}
	if pd.Seasons == nil {
		pd.Seasons = []domain.Season{}
	}
	if pd.Extras == nil {
		pd.Extras = []domain.Extra{}
	}
	if pd.Faq == nil {
		pd.Faq = []domain.FaqItem{}
	}
	if pd.Testimonials == nil {
		pd.Testimonials = []domain.Testimonial{}
	}
}
