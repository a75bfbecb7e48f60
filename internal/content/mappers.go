package content

import (
	"strconv"
	"strings"

	"atrium_site/internal/domain"
)

// Mapping of untyped CMS documents into canonical entities. Every remote
// document passes through here: unexpected shapes are defaulted or dropped at
// this boundary so nothing downstream ever sees a duck-typed record.

var bedTypes = map[string]struct{}{
	"king": {}, "queen": {}, "twin": {}, "single": {},
}

var extraUnits = map[string]struct{}{
	"per_trip": {}, "per_day": {}, "per_person": {}, "per_hour": {}, "per_night": {}, "flat": {},
}

var currencies = map[string]domain.Currency{
	"USD": domain.CurrencyUSD,
	"EUR": domain.CurrencyEUR,
	"GBP": domain.CurrencyGBP,
	"LKR": domain.CurrencyLKR,
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if s, ok := lookupAny(m, path).(string); ok {
		return s
	}
	return ""
}

func lookupBool(m map[string]any, path string) bool {
	if b, ok := lookupAny(m, path).(bool); ok {
		return b
	}
	return false
}

// lookupFloat: number at path (float64/int/string like "8,0"), else 0.
func lookupFloat(m map[string]any, path string) float64 {
	switch v := lookupAny(m, path).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}

func lookupInt(m map[string]any, path string) int {
	return int(lookupFloat(m, path))
}

func lookupStrings(m map[string]any, path string) []string {
	raw, ok := lookupAny(m, path).([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, it := range raw {
		if s, ok := it.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func lookupMaps(m map[string]any, path string) []map[string]any {
	raw, ok := lookupAny(m, path).([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		if obj, ok := it.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mapImageRef accepts both remote image values ({asset: {_ref}}) and direct
// URL wrappers ({asset: {url}}); anything else maps to nil.
func mapImageRef(v any) *domain.ImageRef {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	asset, ok := obj["asset"].(map[string]any)
	if !ok {
		return nil
	}
	ref := &domain.ImageRef{Asset: &domain.ImageAsset{}}
	if s, ok := asset["_ref"].(string); ok {
		ref.Asset.Ref = s
	}
	if s, ok := asset["url"].(string); ok {
		ref.Asset.URL = s
	}
	if ref.Asset.Ref == "" && ref.Asset.URL == "" {
		return nil
	}
	return ref
}

func mapImageRefs(v any) []domain.ImageRef {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]domain.ImageRef, 0, len(raw))
	for _, it := range raw {
		if ref := mapImageRef(it); ref != nil {
			out = append(out, *ref)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

/********** per-kind mappers **********/

func mapSettings(doc map[string]any) *domain.SiteSettings {
	if doc == nil {
		return nil
	}
	out := &domain.SiteSettings{
		SiteName:             lookupStr(doc, "siteName"),
		Tagline:              lookupStr(doc, "tagline"),
		Logo:                 mapImageRef(doc["logo"]),
		Favicon:              mapImageRef(doc["favicon"]),
		Currency:             domain.CurrencyUSD,
		Email:                lookupStr(doc, "email"),
		Phone:                lookupStr(doc, "phone"),
		WhatsApp:             lookupStr(doc, "whatsapp"),
		Instagram:            lookupStr(doc, "instagram"),
		Facebook:             lookupStr(doc, "facebook"),
		Tripadvisor:          lookupStr(doc, "tripadvisor"),
		BookingURL:           lookupStr(doc, "bookingUrl"),
		AirbnbURL:            lookupStr(doc, "airbnbUrl"),
		DirectBookingEnabled: lookupBool(doc, "directBookingEnabled"),
		SEOTitle:             lookupStr(doc, "seoTitle"),
		SEODescription:       lookupStr(doc, "seoDescription"),
		SEOKeywords:          lookupStrings(doc, "seoKeywords"),
		OGImage:              mapImageRef(doc["ogImage"]),
	}
	if c, ok := currencies[strings.ToUpper(lookupStr(doc, "currency"))]; ok {
		out.Currency = c
	}
	if _, ok := doc["address"].(map[string]any); ok {
		out.Address = &domain.Address{
			Line1:   lookupStr(doc, "address.line1"),
			Line2:   lookupStr(doc, "address.line2"),
			City:    lookupStr(doc, "address.city"),
			Country: lookupStr(doc, "address.country"),
		}
	}
	if _, ok := doc["coordinates"].(map[string]any); ok {
		out.Coordinates = &domain.Coordinates{
			Lat: lookupFloat(doc, "coordinates.lat"),
			Lng: lookupFloat(doc, "coordinates.lng"),
		}
	}
	return out
}

func mapHomepage(doc map[string]any) *domain.Homepage {
	if doc == nil {
		return nil
	}
	out := &domain.Homepage{
		HeroTitle:              lookupStr(doc, "heroTitle"),
		HeroSubtitle:           lookupStr(doc, "heroSubtitle"),
		HeroHeadline:           lookupStr(doc, "heroHeadline"),
		HeroDescription:        lookupStr(doc, "heroDescription"),
		HeroImage:              mapImageRef(doc["heroImage"]),
		HeroVideoURL:           lookupStr(doc, "heroVideo.asset.url"),
		HeroCTA:                lookupStr(doc, "heroCta"),
		HeroCTASecondary:       lookupStr(doc, "heroCtaSecondary"),
		AboutTitle:             lookupStr(doc, "aboutTitle"),
		AboutSubtitle:          lookupStr(doc, "aboutSubtitle"),
		AboutDescription:       lookupStr(doc, "aboutDescription"),
		AboutImage:             mapImageRef(doc["aboutImage"]),
		AboutImages:            mapImageRefs(doc["aboutImages"]),
		AmenitiesTitle:         lookupStr(doc, "amenitiesTitle"),
		AmenitiesSubtitle:      lookupStr(doc, "amenitiesSubtitle"),
		ExperiencesTitle:       lookupStr(doc, "experiencesTitle"),
		ExperiencesSubtitle:    lookupStr(doc, "experiencesSubtitle"),
		ExperiencesDescription: lookupStr(doc, "experiencesDescription"),
		PricingTitle:           lookupStr(doc, "pricingTitle"),
		PricingSubtitle:        lookupStr(doc, "pricingSubtitle"),
		PricingDescription:     lookupStr(doc, "pricingDescription"),
		PricingInclusions:      lookupStrings(doc, "pricingInclusions"),
		PricingNotes:           lookupStrings(doc, "pricingNotes"),
		LocationTitle:          lookupStr(doc, "locationTitle"),
		LocationSubtitle:       lookupStr(doc, "locationSubtitle"),
		LocationDescription:    lookupStr(doc, "locationDescription"),
	}
	for _, card := range lookupMaps(doc, "heroCards") {
		out.HeroCards = append(out.HeroCards, domain.HeroCard{
			Type:    lookupStr(card, "type"),
			Icon:    lookupStr(card, "icon"),
			Text:    lookupStr(card, "text"),
			Subtext: lookupStr(card, "subtext"),
		})
	}
	// aboutHighlights may be plain strings or {title} objects.
	if hl := lookupStrings(doc, "aboutHighlights"); hl != nil {
		out.AboutHighlights = hl
	} else {
		for _, h := range lookupMaps(doc, "aboutHighlights") {
			if t := lookupStr(h, "title"); t != "" {
				out.AboutHighlights = append(out.AboutHighlights, t)
			}
		}
	}
	for _, p := range lookupMaps(doc, "nearbyPlaces") {
		name := lookupStr(p, "name")
		if name == "" {
			continue
		}
		out.NearbyPlaces = append(out.NearbyPlaces, domain.NearbyPlace{
			Name:     name,
			Distance: lookupStr(p, "distance"),
			Time:     lookupStr(p, "time"),
		})
	}
	if _, ok := doc["gettingHere"].(map[string]any); ok {
		out.GettingHere = &domain.GettingHere{
			FromAirport: lookupStr(doc, "gettingHere.fromAirport"),
			ByTrain:     lookupStr(doc, "gettingHere.byTrain"),
			ByBus:       lookupStr(doc, "gettingHere.byBus"),
		}
	}
	return out
}

func mapRoom(doc map[string]any) *domain.Room {
	if doc == nil {
		return nil
	}
	out := &domain.Room{
		ID:          lookupStr(doc, "_id"),
		Name:        lookupStr(doc, "name"),
		Slug:        domain.Slug{Current: lookupStr(doc, "slug.current")},
		Description: lookupStr(doc, "description"),
		Size:        lookupStr(doc, "size"),
		Features:    lookupStrings(doc, "features"),
		Images:      []domain.RoomImage{},
	}
	if bt := lookupStr(doc, "bedType"); bt != "" {
		if _, ok := bedTypes[bt]; ok {
			out.BedType = bt
		}
	}
	if c := lookupInt(doc, "capacity"); c != 0 {
		out.Capacity = clampInt(c, domain.RoomCapacityMin, domain.RoomCapacityMax)
	}
	for _, img := range lookupMaps(doc, "images") {
		ref := mapImageRef(img)
		if ref == nil {
			// some documents carry the bare asset without the wrapper
			ref = mapImageRef(map[string]any{"asset": img})
		}
		if ref == nil {
			continue
		}
		out.Images = append(out.Images, domain.RoomImage{ImageRef: *ref, Alt: lookupStr(img, "alt")})
	}
	return out
}

func mapRooms(docs []map[string]any) []domain.Room {
	out := make([]domain.Room, 0, len(docs))
	for _, d := range docs {
		if r := mapRoom(d); r != nil && r.ID != "" {
			out = append(out, *r)
		}
	}
	return out
}

func mapAmenities(docs []map[string]any) []domain.AmenityCategory {
	out := make([]domain.AmenityCategory, 0, len(docs))
	for _, d := range docs {
		a := domain.AmenityCategory{
			ID:    lookupStr(d, "_id"),
			Name:  lookupStr(d, "name"),
			Icon:  lookupStr(d, "icon"),
			Items: lookupStrings(d, "items"),
		}
		if a.ID == "" {
			continue
		}
		out = append(out, a)
	}
	return out
}

func mapExperiences(docs []map[string]any) []domain.Experience {
	out := make([]domain.Experience, 0, len(docs))
	for _, d := range docs {
		e := domain.Experience{
			ID:          lookupStr(d, "_id"),
			Title:       lookupStr(d, "title"),
			Description: lookupStr(d, "description"),
			Duration:    lookupStr(d, "duration"),
			Distance:    lookupStr(d, "distance"),
			Image:       mapImageRef(d["image"]),
			Tags:        lookupStrings(d, "tags"),
		}
		if e.ID == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

func mapGallery(docs []map[string]any) []domain.GalleryImage {
	out := make([]domain.GalleryImage, 0, len(docs))
	for _, d := range docs {
		g := domain.GalleryImage{
			ID:       lookupStr(d, "_id"),
			Image:    mapImageRef(d["image"]),
			Alt:      lookupStr(d, "alt"),
			Category: lookupStr(d, "category"),
			Featured: lookupBool(d, "featured"),
		}
		if g.ID == "" {
			continue
		}
		out = append(out, g)
	}
	return out
}

func mapSeasons(docs []map[string]any) []domain.Season {
	out := make([]domain.Season, 0, len(docs))
	for _, d := range docs {
		s := domain.Season{
			ID:            lookupStr(d, "_id"),
			Name:          lookupStr(d, "name"),
			Period:        lookupStr(d, "period"),
			PricePerNight: lookupFloat(d, "pricePerNight"),
			MinNights:     lookupInt(d, "minNights"),
			Description:   lookupStr(d, "description"),
			IsPopular:     lookupBool(d, "isPopular"),
		}
		if s.ID == "" {
			continue
		}
		if s.PricePerNight < 0 {
			s.PricePerNight = 0
		}
		if s.MinNights < 1 {
			s.MinNights = 1
		}
		out = append(out, s)
	}
	return out
}

func mapExtras(docs []map[string]any) []domain.Extra {
	out := make([]domain.Extra, 0, len(docs))
	for _, d := range docs {
		e := domain.Extra{
			ID:          lookupStr(d, "_id"),
			Name:        lookupStr(d, "name"),
			Price:       lookupFloat(d, "price"),
			Description: lookupStr(d, "description"),
		}
		if e.ID == "" {
			continue
		}
		if e.Price < 0 {
			e.Price = 0
		}
		if u := lookupStr(d, "unit"); u != "" {
			if _, ok := extraUnits[u]; ok {
				e.Unit = u
			}
		}
		out = append(out, e)
	}
	return out
}

func mapFaq(docs []map[string]any) []domain.FaqItem {
	out := make([]domain.FaqItem, 0, len(docs))
	for _, d := range docs {
		f := domain.FaqItem{
			ID:       lookupStr(d, "_id"),
			Question: lookupStr(d, "question"),
			Answer:   lookupStr(d, "answer"),
		}
		if f.ID == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

func mapTestimonials(docs []map[string]any) []domain.Testimonial {
	out := make([]domain.Testimonial, 0, len(docs))
	for _, d := range docs {
		t := domain.Testimonial{
			ID:       lookupStr(d, "_id"),
			Name:     lookupStr(d, "name"),
			Location: lookupStr(d, "location"),
			Date:     lookupStr(d, "date"),
			Text:     lookupStr(d, "text"),
			Avatar:   mapImageRef(d["avatar"]),
			Featured: lookupBool(d, "featured"),
		}
		if t.ID == "" {
			continue
		}
		if r := lookupInt(d, "rating"); r != 0 {
			t.Rating = clampInt(r, 3, 5)
		}
		out = append(out, t)
	}
	return out
}
