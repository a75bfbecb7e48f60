package content

import (
	"encoding/json"
	"testing"

	"atrium_site/internal/domain"
)

func doc(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("bad test doc: %v", err)
	}
	return m
}

func TestMapRoom_CanonicalFields(t *testing.T) {
	r := mapRoom(doc(t, `{
		"_id": "room-abc",
		"name": "Garden Suite",
		"slug": {"current": "garden-suite"},
		"size": "40m²",
		"bedType": "queen",
		"capacity": 3,
		"features": ["WiFi", "AC"],
		"images": [
			{"asset": {"_ref": "image-abc123-1200x800-jpg"}, "alt": "the suite"},
			{"asset": {"url": "/images/photos/2.jpg"}}
		]
	}`))
	if r.ID != "room-abc" || r.Slug.Current != "garden-suite" {
		t.Fatalf("identity: %+v", r)
	}
	if r.BedType != "queen" || r.Capacity != 3 {
		t.Fatalf("bed/capacity: %+v", r)
	}
	if len(r.Images) != 2 {
		t.Fatalf("images: %+v", r.Images)
	}
	if r.Images[0].AssetRef() != "image-abc123-1200x800-jpg" || r.Images[0].Alt != "the suite" {
		t.Fatalf("remote image: %+v", r.Images[0])
	}
	if r.Images[1].DirectURL() != "/images/photos/2.jpg" {
		t.Fatalf("direct image: %+v", r.Images[1])
	}
}

func TestMapRoom_DefaultsUnexpectedShapes(t *testing.T) {
	r := mapRoom(doc(t, `{
		"_id": "room-x",
		"name": "Odd Room",
		"slug": {"current": "odd"},
		"bedType": "waterbed",
		"capacity": 42,
		"images": [{"asset": {}}, "not an image"]
	}`))
	if r.BedType != "" {
		t.Fatalf("unknown bed type must be dropped, got %q", r.BedType)
	}
	if r.Capacity != domain.RoomCapacityMax {
		t.Fatalf("capacity must be clamped to %d, got %d", domain.RoomCapacityMax, r.Capacity)
	}
	if len(r.Images) != 0 {
		t.Fatalf("unmappable images must be dropped: %+v", r.Images)
	}
}

func TestMapRoom_BareAssetImages(t *testing.T) {
	r := mapRoom(doc(t, `{
		"_id": "room-y",
		"name": "Bare",
		"slug": {"current": "bare"},
		"images": [{"_ref": "image-def456-800x600-jpg", "alt": "garden view"}]
	}`))
	if len(r.Images) != 1 {
		t.Fatalf("images: %+v", r.Images)
	}
	if r.Images[0].AssetRef() != "image-def456-800x600-jpg" || r.Images[0].Alt != "garden view" {
		t.Fatalf("bare asset image: %+v", r.Images[0])
	}
}

func TestMapRoom_ImageWireShape(t *testing.T) {
	r := mapRoom(doc(t, `{
		"_id": "r", "name": "R", "slug": {"current": "r"},
		"images": [{"asset": {"url": "/images/photos/2.jpg"}, "alt": "a"}]
	}`))
	b, err := json.Marshal(r.Images[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(b); got != `{"asset":{"url":"/images/photos/2.jpg"},"alt":"a"}` {
		t.Fatalf("wire shape: %s", got)
	}
}

func TestMapSettings_CurrencyValidation(t *testing.T) {
	s := mapSettings(doc(t, `{"siteName": "X", "currency": "eur"}`))
	if s.Currency != domain.CurrencyEUR {
		t.Fatalf("case-insensitive currency: %q", s.Currency)
	}
	s = mapSettings(doc(t, `{"siteName": "X", "currency": "XYZ"}`))
	if s.Currency != domain.CurrencyUSD {
		t.Fatalf("unknown currency must default to USD, got %q", s.Currency)
	}
	if mapSettings(nil) != nil {
		t.Fatal("nil doc must map to nil settings")
	}
}

func TestMapSettings_NestedObjects(t *testing.T) {
	s := mapSettings(doc(t, `{
		"siteName": "The Atrium Hiriketiya",
		"address": {"line1": "Hiriketiya Beach Rd", "city": "Dickwella", "country": "Sri Lanka"},
		"coordinates": {"lat": 5.965, "lng": 80.704}
	}`))
	if s.Address == nil || s.Address.City != "Dickwella" {
		t.Fatalf("address: %+v", s.Address)
	}
	if s.Coordinates == nil || s.Coordinates.Lat != 5.965 || s.Coordinates.Lng != 80.704 {
		t.Fatalf("coordinates: %+v", s.Coordinates)
	}
}

func TestMapSeasons_Bounds(t *testing.T) {
	out := mapSeasons([]map[string]any{
		doc(t, `{"_id": "s1", "name": "Odd", "pricePerNight": -10, "minNights": 0}`),
		doc(t, `{"_id": "", "name": "dropped"}`),
	})
	if len(out) != 1 {
		t.Fatalf("record without _id must be dropped: %+v", out)
	}
	if out[0].PricePerNight != 0 {
		t.Fatalf("negative price must floor at 0: %+v", out[0])
	}
	if out[0].MinNights != 1 {
		t.Fatalf("minNights must floor at 1: %+v", out[0])
	}
}

func TestMapExtras_UnitVocabulary(t *testing.T) {
	out := mapExtras([]map[string]any{
		doc(t, `{"_id": "e1", "name": "Transfer", "price": 50, "unit": "per_trip"}`),
		doc(t, `{"_id": "e2", "name": "Odd", "price": 10, "unit": "per_season"}`),
	})
	if out[0].Unit != "per_trip" {
		t.Fatalf("valid unit kept: %+v", out[0])
	}
	if out[1].Unit != "" {
		t.Fatalf("unknown unit must be dropped: %+v", out[1])
	}
}

func TestMapTestimonials_RatingClamp(t *testing.T) {
	out := mapTestimonials([]map[string]any{
		doc(t, `{"_id": "t1", "name": "A", "text": "x", "rating": 5}`),
		doc(t, `{"_id": "t2", "name": "B", "text": "y", "rating": 1}`),
		doc(t, `{"_id": "t3", "name": "C", "text": "z"}`),
	})
	if out[0].Rating != 5 {
		t.Fatalf("rating 5 kept: %+v", out[0])
	}
	if out[1].Rating != 3 {
		t.Fatalf("out-of-range rating clamps to 3: %+v", out[1])
	}
	if out[2].Rating != 0 {
		t.Fatalf("absent rating stays 0: %+v", out[2])
	}
}

func TestMapHomepage_HighlightsBothShapes(t *testing.T) {
	h := mapHomepage(doc(t, `{"heroTitle": "T", "aboutHighlights": ["A", "B"]}`))
	if len(h.AboutHighlights) != 2 || h.AboutHighlights[0] != "A" {
		t.Fatalf("string highlights: %+v", h.AboutHighlights)
	}
	h = mapHomepage(doc(t, `{"heroTitle": "T", "aboutHighlights": [{"title": "C"}, {"nope": 1}]}`))
	if len(h.AboutHighlights) != 1 || h.AboutHighlights[0] != "C" {
		t.Fatalf("object highlights: %+v", h.AboutHighlights)
	}
}

func TestMapImageRef_Shapes(t *testing.T) {
	if mapImageRef(nil) != nil {
		t.Fatal("nil input")
	}
	if mapImageRef("string") != nil {
		t.Fatal("non-object input")
	}
	if mapImageRef(map[string]any{"asset": map[string]any{}}) != nil {
		t.Fatal("empty asset")
	}
	ref := mapImageRef(map[string]any{"asset": map[string]any{"_ref": "image-a-1x1-jpg"}})
	if ref == nil || ref.AssetRef() != "image-a-1x1-jpg" {
		t.Fatalf("asset ref: %+v", ref)
	}
}
