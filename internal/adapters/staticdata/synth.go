package staticdata

import (
	"strconv"
	"strings"

	"atrium_site/internal/domain"
	"atrium_site/internal/images"
)

// Synthesizer turns a fixture bundle into canonical entities. Every kind's
// fallback contract lives here and nowhere else: kinds with no genuine
// fixture data return a fixed representative set, using photo-list slices for
// imagery where applicable. All methods are pure reads of the bundle and are
// idempotent across calls.
type Synthesizer struct {
	b Bundle
}

func NewSynthesizer(b Bundle) *Synthesizer { return &Synthesizer{b: b} }

func (s *Synthesizer) Settings() *domain.SiteSettings {
	settings := sub(s.b.Content, "siteSettings")
	hotel := s.b.Hotel

	name := firstNonEmpty(str(settings, "name"), str(hotel, "name"), "Hotel")
	phone := firstNonEmpty(pathStr(settings, "contact.phone"), str(hotel, "phone"))

	out := &domain.SiteSettings{
		SiteName:             name,
		Tagline:              firstNonEmpty(str(settings, "tagline"), "Welcome to "+name),
		Currency:             domain.CurrencyUSD,
		Email:                pathStr(settings, "contact.email"),
		Phone:                phone,
		WhatsApp:             firstNonEmpty(pathStr(settings, "contact.whatsapp"), strings.ReplaceAll(phone, " ", "")),
		Instagram:            firstNonEmpty(pathStr(settings, "social.instagram"), str(hotel, "instagram")),
		BookingURL:           firstNonEmpty(pathStr(settings, "booking.url"), str(hotel, "booking_url"), str(hotel, "booking_search")),
		DirectBookingEnabled: false,
		SEOTitle:             firstNonEmpty(pathStr(settings, "seo.title"), name+" | Hotel in Sri Lanka"),
		SEODescription:       firstNonEmpty(pathStr(settings, "seo.description"), "Experience paradise at "+name),
	}
	if addr := firstNonEmpty(pathStr(settings, "contact.address"), str(hotel, "address")); addr != "" {
		out.Address = &domain.Address{Line1: addr}
	}
	return out
}

func (s *Synthesizer) Homepage() *domain.Homepage {
	homepage := sub(s.b.Content, "homepage")
	hotel := s.b.Hotel
	hotelName := str(hotel, "name")
	mainImage := firstNonEmpty(s.b.photoURL(0), images.PlaceholderURL)

	return &domain.Homepage{
		HeroTitle:        firstNonEmpty(pathStr(homepage, "hero.title"), "Welcome to "+hotelName),
		HeroSubtitle:     firstNonEmpty(pathStr(homepage, "hero.subtitle"), "Your tropical escape"),
		HeroHeadline:     hotelName,
		HeroDescription:  pathStr(homepage, "about.description"),
		HeroImage:        domain.DirectImage(mainImage),
		HeroCTA:          firstNonEmpty(pathStr(homepage, "hero.ctaText"), "Book Now"),
		HeroCTASecondary: "Discover More",
		HeroCards: []domain.HeroCard{
			{Type: "location", Icon: "map-pin", Text: "5 min from beach", Subtext: firstNonEmpty(str(hotel, "zone"), "Prime Location")},
			{Type: "offer", Icon: "coffee", Text: "Breakfast included", Subtext: "Sri Lankan cuisine"},
			{Type: "nature", Icon: "leaf", Text: "Tropical garden", Subtext: "Relax & unwind"},
			{Type: "service", Icon: "wifi", Text: "AC & Free WiFi", Subtext: "All rooms"},
		},
		AboutTitle:          firstNonEmpty(pathStr(homepage, "about.title"), "About Us"),
		AboutSubtitle:       "Discover Paradise",
		AboutDescription:    firstNonEmpty(pathStr(homepage, "about.description"), "Welcome to "+hotelName+", your perfect getaway in Sri Lanka."),
		AboutImage:          domain.DirectImage(firstNonEmpty(s.b.photoURL(1), mainImage)),
		AboutImages:         directImages(s.b.photoSlice(1, 6)),
		AboutHighlights:     s.highlights(homepage),
		AmenitiesTitle:      "Amenities",
		AmenitiesSubtitle:   "Everything you need",
		ExperiencesTitle:    "Experiences",
		ExperiencesSubtitle: "Discover the area",
		LocationTitle:       "Location",
		LocationSubtitle:    firstNonEmpty(str(hotel, "zone"), "Sri Lanka"),
		LocationDescription: str(hotel, "address"),
	}
}

func (s *Synthesizer) highlights(homepage map[string]any) []string {
	features, ok := homepage["features"].([]any)
	if !ok || len(features) == 0 {
		return []string{"Beachfront Location", "Local Experience", "Tropical Paradise"}
	}
	out := make([]string, 0, len(features))
	for _, f := range features {
		if m, ok := f.(map[string]any); ok {
			if title, ok := m["title"].(string); ok && title != "" {
				out = append(out, title)
			}
		}
	}
	if len(out) == 0 {
		return []string{"Beachfront Location", "Local Experience", "Tropical Paradise"}
	}
	return out
}

// Rooms is the single source of truth for fallback rooms; RoomBySlug filters
// this list rather than re-synthesizing.
func (s *Synthesizer) Rooms() []domain.Room {
	return []domain.Room{
		{
			ID:          "room-1",
			Name:        "Deluxe Room",
			Slug:        domain.Slug{Current: "deluxe-room"},
			Description: "A comfortable room with all modern amenities.",
			Size:        "30m²",
			BedType:     "king",
			Capacity:    2,
			Features:    []string{"Air Conditioning", "Free WiFi", "Private Bathroom", "Sea View"},
			Images:      roomImages(s.b.photoSlice(2, 5)),
		},
		{
			ID:          "room-2",
			Name:        "Suite",
			Slug:        domain.Slug{Current: "suite"},
			Description: "Spacious suite with stunning views.",
			Size:        "45m²",
			BedType:     "king",
			Capacity:    3,
			Features:    []string{"Air Conditioning", "Free WiFi", "Private Bathroom", "Balcony", "Sea View"},
			Images:      roomImages(s.b.photoSlice(5, 8)),
		},
	}
}

func (s *Synthesizer) RoomBySlug(slug string) *domain.Room {
	for _, r := range s.Rooms() {
		if r.Slug.Current == slug || r.ID == slug {
			room := r
			return &room
		}
	}
	return nil
}

func (s *Synthesizer) Amenities() []domain.AmenityCategory {
	return []domain.AmenityCategory{
		{ID: "amenity-1", Name: "Room Amenities", Icon: "bed", Items: []string{"Air Conditioning", "Free WiFi", "Private Bathroom", "Daily Housekeeping"}},
		{ID: "amenity-2", Name: "Property Features", Icon: "home", Items: []string{"Swimming Pool", "Restaurant", "Bar", "Garden"}},
		{ID: "amenity-3", Name: "Services", Icon: "star", Items: []string{"Airport Transfer", "Laundry Service", "Tour Desk", "24/7 Reception"}},
	}
}

func (s *Synthesizer) Experiences() []domain.Experience {
	return []domain.Experience{
		{ID: "exp-1", Title: "Beach Activities", Description: "Enjoy surfing, swimming, and sunbathing on pristine beaches.", Duration: "All day", Image: s.photoOrPlaceholder(8), Tags: []string{"Beach", "Surf"}},
		{ID: "exp-2", Title: "Local Tours", Description: "Discover the beauty of Sri Lanka with guided tours.", Duration: "Half day", Image: s.photoOrPlaceholder(10), Tags: []string{"Tour", "Culture"}},
		{ID: "exp-3", Title: "Yoga & Wellness", Description: "Relax and rejuvenate with yoga sessions and spa treatments.", Duration: "2 hours", Image: s.photoOrPlaceholder(12), Tags: []string{"Wellness", "Yoga"}},
	}
}

// Gallery maps every photo into a gallery record: positional category
// buckets (first 5 rooms, next 5 property, rest surroundings) and the first
// 6 marked featured.
func (s *Synthesizer) Gallery() []domain.GalleryImage {
	out := make([]domain.GalleryImage, 0, len(s.b.Photos))
	for i, p := range s.b.Photos {
		category := "surroundings"
		switch {
		case i < 5:
			category = "rooms"
		case i < 10:
			category = "property"
		}
		out = append(out, domain.GalleryImage{
			ID:       "gallery-" + strconv.Itoa(i),
			Image:    domain.DirectImage(p.Path),
			Alt:      "Photo " + strconv.Itoa(i+1),
			Category: category,
			Featured: i < 6,
		})
	}
	return out
}

func (s *Synthesizer) Seasons() []domain.Season {
	return []domain.Season{
		{ID: "season-1", Name: "Low Season", Period: "May - October", PricePerNight: 80, MinNights: 2, Description: "Great rates during the green season", IsPopular: false},
		{ID: "season-2", Name: "High Season", Period: "November - April", PricePerNight: 120, MinNights: 3, Description: "Perfect weather for your holiday", IsPopular: true},
		{ID: "season-3", Name: "Peak Season", Period: "December - January", PricePerNight: 150, MinNights: 5, Description: "Celebrate the holidays in paradise", IsPopular: false},
	}
}

func (s *Synthesizer) Extras() []domain.Extra {
	return []domain.Extra{
		{ID: "extra-1", Name: "Airport Transfer", Price: 50, Unit: "per_trip", Description: "Private transfer from/to airport"},
		{ID: "extra-2", Name: "Breakfast", Price: 15, Unit: "per_person", Description: "Full breakfast buffet"},
		{ID: "extra-3", Name: "Surf Lesson", Price: 35, Unit: "per_hour", Description: "2-hour surf lesson with instructor"},
	}
}

func (s *Synthesizer) Faq() []domain.FaqItem {
	contact := "us"
	if phone := str(s.b.Hotel, "phone"); phone != "" {
		contact = phone
	}
	return []domain.FaqItem{
		{ID: "faq-1", Question: "What time is check-in and check-out?", Answer: "Check-in is from 2:00 PM and check-out is until 11:00 AM."},
		{ID: "faq-2", Question: "How can I make a reservation?", Answer: "You can book directly through our booking partner or contact us at " + contact + "."},
		{ID: "faq-3", Question: "Is airport transfer available?", Answer: "Yes, we offer airport transfers. Please contact us to arrange."},
		{ID: "faq-4", Question: "Do you have WiFi?", Answer: "Yes, free WiFi is available throughout the property."},
	}
}

func (s *Synthesizer) Testimonials() []domain.Testimonial {
	return []domain.Testimonial{
		{ID: "test-1", Name: "Sarah M.", Location: "United Kingdom", Rating: 5, Text: "Amazing stay! The location is perfect and the staff was incredibly friendly.", Featured: true},
		{ID: "test-2", Name: "Thomas B.", Location: "Germany", Rating: 5, Text: "Beautiful property with stunning views. Will definitely come back!", Featured: true},
		{ID: "test-3", Name: "Marie L.", Location: "France", Rating: 4, Text: "Great experience overall. The beach is just steps away.", Featured: false},
	}
}

/********** helpers **********/

func (s *Synthesizer) photoOrPlaceholder(i int) *domain.ImageRef {
	return domain.DirectImage(firstNonEmpty(s.b.photoURL(i), images.PlaceholderURL))
}

func directImages(paths []string) []domain.ImageRef {
	out := make([]domain.ImageRef, 0, len(paths))
	for _, p := range paths {
		out = append(out, *domain.DirectImage(p))
	}
	return out
}

func roomImages(paths []string) []domain.RoomImage {
	out := make([]domain.RoomImage, 0, len(paths))
	for _, p := range paths {
		out = append(out, domain.RoomImage{ImageRef: *domain.DirectImage(p)})
	}
	return out
}

// sub returns m[key] as an object, or an empty object.
func sub(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

func str(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// pathStr resolves a dot path ("contact.phone") to a string, or "".
func pathStr(m map[string]any, path string) string {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = obj[part]
	}
	if s, ok := cur.(string); ok {
		return s
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

