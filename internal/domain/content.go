package domain

// Canonical content entities. Shapes are identical regardless of the source
// mode; JSON tags follow the site's public API contract.

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyLKR Currency = "LKR"
)

type Address struct {
	Line1   string `json:"line1,omitempty"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SiteSettings is a singleton; a nil *SiteSettings means "no settings
// document exists" and consumers render nothing for the affected sections.
type SiteSettings struct {
	SiteName             string       `json:"siteName"`
	Tagline              string       `json:"tagline,omitempty"`
	Logo                 *ImageRef    `json:"logo,omitempty"`
	Favicon              *ImageRef    `json:"favicon,omitempty"`
	Currency             Currency     `json:"currency"`
	Email                string       `json:"email,omitempty"`
	Phone                string       `json:"phone,omitempty"`
	WhatsApp             string       `json:"whatsapp,omitempty"`
	Address              *Address     `json:"address,omitempty"`
	Coordinates          *Coordinates `json:"coordinates,omitempty"`
	Instagram            string       `json:"instagram,omitempty"`
	Facebook             string       `json:"facebook,omitempty"`
	Tripadvisor          string       `json:"tripadvisor,omitempty"`
	BookingURL           string       `json:"bookingUrl,omitempty"`
	AirbnbURL            string       `json:"airbnbUrl,omitempty"`
	DirectBookingEnabled bool         `json:"directBookingEnabled"`
	SEOTitle             string       `json:"seoTitle,omitempty"`
	SEODescription       string       `json:"seoDescription,omitempty"`
	SEOKeywords          []string     `json:"seoKeywords,omitempty"`
	OGImage              *ImageRef    `json:"ogImage,omitempty"`
}

type Highlight struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type NearbyPlace struct {
	Name     string `json:"name"`
	Distance string `json:"distance,omitempty"`
	Time     string `json:"time,omitempty"`
}

type HeroCard struct {
	Type    string `json:"type"`
	Icon    string `json:"icon,omitempty"`
	Text    string `json:"text"`
	Subtext string `json:"subtext,omitempty"`
}

type GettingHere struct {
	FromAirport string `json:"fromAirport,omitempty"`
	ByTrain     string `json:"byTrain,omitempty"`
	ByBus       string `json:"byBus,omitempty"`
}

// Homepage is the singleton bag of per-section copy and imagery.
type Homepage struct {
	HeroTitle              string        `json:"heroTitle"`
	HeroSubtitle           string        `json:"heroSubtitle,omitempty"`
	HeroHeadline           string        `json:"heroHeadline,omitempty"`
	HeroDescription        string        `json:"heroDescription,omitempty"`
	HeroImage              *ImageRef     `json:"heroImage,omitempty"`
	HeroVideoURL           string        `json:"heroVideoUrl,omitempty"`
	HeroCTA                string        `json:"heroCta,omitempty"`
	HeroCTASecondary       string        `json:"heroCtaSecondary,omitempty"`
	HeroCards              []HeroCard    `json:"heroCards,omitempty"`
	AboutTitle             string        `json:"aboutTitle,omitempty"`
	AboutSubtitle          string        `json:"aboutSubtitle,omitempty"`
	AboutDescription       string        `json:"aboutDescription,omitempty"`
	AboutImage             *ImageRef     `json:"aboutImage,omitempty"`
	AboutImages            []ImageRef    `json:"aboutImages,omitempty"`
	AboutHighlights        []string      `json:"aboutHighlights,omitempty"`
	AmenitiesTitle         string        `json:"amenitiesTitle,omitempty"`
	AmenitiesSubtitle      string        `json:"amenitiesSubtitle,omitempty"`
	ExperiencesTitle       string        `json:"experiencesTitle,omitempty"`
	ExperiencesSubtitle    string        `json:"experiencesSubtitle,omitempty"`
	ExperiencesDescription string        `json:"experiencesDescription,omitempty"`
	PricingTitle           string        `json:"pricingTitle,omitempty"`
	PricingSubtitle        string        `json:"pricingSubtitle,omitempty"`
	PricingDescription     string        `json:"pricingDescription,omitempty"`
	PricingInclusions      []string      `json:"pricingInclusions,omitempty"`
	PricingNotes           []string      `json:"pricingNotes,omitempty"`
	LocationTitle          string        `json:"locationTitle,omitempty"`
	LocationSubtitle       string        `json:"locationSubtitle,omitempty"`
	LocationDescription    string        `json:"locationDescription,omitempty"`
	NearbyPlaces           []NearbyPlace `json:"nearbyPlaces,omitempty"`
	GettingHere            *GettingHere  `json:"gettingHere,omitempty"`
}

type Slug struct {
	Current string `json:"current"`
}

// RoomImage is an image reference plus alt text; the embedded ImageRef keeps
// the wire shape flat ({"asset": {...}, "alt": ...}).
type RoomImage struct {
	ImageRef
	Alt string `json:"alt,omitempty"`
}

const (
	RoomCapacityMin = 1
	RoomCapacityMax = 6
)

type Room struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Slug        Slug        `json:"slug"`
	Description string      `json:"description,omitempty"`
	Size        string      `json:"size,omitempty"`
	BedType     string      `json:"bedType,omitempty"` // king|queen|twin|single
	Capacity    int         `json:"capacity,omitempty"`
	Features    []string    `json:"features,omitempty"`
	Images      []RoomImage `json:"images"`
}

type AmenityCategory struct {
	ID    string   `json:"_id"`
	Name  string   `json:"name"`
	Icon  string   `json:"icon,omitempty"`
	Items []string `json:"items,omitempty"`
}

type Experience struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Distance    string    `json:"distance,omitempty"`
	Image       *ImageRef `json:"image,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

type GalleryImage struct {
	ID       string    `json:"_id"`
	Image    *ImageRef `json:"image"`
	Alt      string    `json:"alt,omitempty"`
	Category string    `json:"category,omitempty"`
	Featured bool      `json:"featured"`
}

type Season struct {
	ID            string  `json:"_id"`
	Name          string  `json:"name"`
	Period        string  `json:"period,omitempty"`
	PricePerNight float64 `json:"pricePerNight"`
	MinNights     int     `json:"minNights,omitempty"`
	Description   string  `json:"description,omitempty"`
	IsPopular     bool    `json:"isPopular"`
}

type Extra struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit,omitempty"` // per_trip|per_day|per_person|per_hour|per_night|flat
	Description string  `json:"description,omitempty"`
}

type FaqItem struct {
	ID       string `json:"_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Testimonial struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Location string    `json:"location,omitempty"`
	Date     string    `json:"date,omitempty"`
	Rating   int       `json:"rating,omitempty"` // 3..5
	Text     string    `json:"text"`
	Avatar   *ImageRef `json:"avatar,omitempty"`
	Featured bool      `json:"featured"`
}

// PageData is the aggregate consumed by the homepage: every content kind in
// one object. Singletons may be nil; lists are never nil after assembly.
type PageData struct {
	Settings     *SiteSettings     `json:"settings"`
	Homepage     *Homepage         `json:"homepage"`
	Rooms        []Room            `json:"rooms"`
	Amenities    []AmenityCategory `json:"amenities"`
	Experiences  []Experience      `json:"experiences"`
	Gallery      []GalleryImage    `json:"gallery"`
	Seasons      []Season          `json:"seasons"`
	Extras       []Extra           `json:"extras"`
	Faq          []FaqItem         `json:"faq"`
	Testimonials []Testimonial     `json:"testimonials"`
}
