package content

// GROQ queries, one per content kind: filter by the _type discriminator,
// stable ascending order, canonical projection only.

const settingsQuery = `*[_type == "siteSettings"][0] {
  siteName, tagline, logo, favicon, currency,
  email, phone, whatsapp, address, coordinates,
  instagram, facebook, tripadvisor,
  bookingUrl, airbnbUrl, directBookingEnabled,
  seoTitle, seoDescription, seoKeywords, ogImage
}`

const homepageQuery = `*[_type == "homepage"][0] {
  heroTitle, heroSubtitle, heroHeadline, heroDescription,
  heroImage, heroVideo, heroCta, heroCtaSecondary, heroCards,
  aboutTitle, aboutSubtitle, aboutDescription, aboutImage, aboutImages, aboutHighlights,
  amenitiesTitle, amenitiesSubtitle,
  experiencesTitle, experiencesSubtitle, experiencesDescription,
  pricingTitle, pricingSubtitle, pricingDescription, pricingInclusions, pricingNotes,
  locationTitle, locationSubtitle, locationDescription, nearbyPlaces, gettingHere
}`

const roomsQuery = `*[_type == "room"] | order(order asc) {
  _id, name, slug, description, size, bedType, capacity, features, images
}`

const roomBySlugQuery = `*[_type == "room" && (slug.current == $slug || _id == $slug)][0] {
  _id, name, slug, description, size, bedType, capacity, features, images
}`

const amenitiesQuery = `*[_type == "amenityCategory"] | order(order asc) {
  _id, name, icon, items
}`

const experiencesQuery = `*[_type == "experience"] | order(order asc) {
  _id, title, description, duration, distance, image, tags
}`

const galleryQuery = `*[_type == "galleryImage"] | order(order asc) {
  _id, image, alt, category, featured
}`

const seasonsQuery = `*[_type == "season"] | order(order asc) {
  _id, name, period, pricePerNight, minNights, description, isPopular
}`

const extrasQuery = `*[_type == "extra"] | order(order asc) {
  _id, name, price, unit, description
}`

const faqQuery = `*[_type == "faqItem"] | order(order asc) {
  _id, question, answer
}`

const testimonialsQuery = `*[_type == "testimonial"] | order(order asc) {
  _id, name, location, date, rating, text, avatar, featured
}`
