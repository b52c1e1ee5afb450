package entity

import (
	"time"
)

type HeroCta struct {
	Label string `json:"label" firestore:"label"`
	Href  string `json:"href" firestore:"href"`
}

type HeroStat struct {
	ID    string `json:"id" firestore:"id"`
	Label string `json:"label" firestore:"label"`
	Value string `json:"value" firestore:"value"`
}

type HeroContent struct {
	Badge        string     `json:"badge" firestore:"badge"`
	Title        string     `json:"title" firestore:"title"`
	Subtitle     string     `json:"subtitle" firestore:"subtitle"`
	PrimaryCta   HeroCta    `json:"primary_cta" firestore:"primaryCta"`
	SecondaryCta HeroCta    `json:"secondary_cta" firestore:"secondaryCta"`
	Stats        []HeroStat `json:"stats" firestore:"stats"`
}

type Spotlight struct {
	ID          string `json:"id" firestore:"id"`
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description" firestore:"description"`
	Href        string `json:"href" firestore:"href"`
	Accent      string `json:"accent" firestore:"accent"`
}

type TrustSignal struct {
	ID          string `json:"id" firestore:"id"`
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description" firestore:"description"`
	Icon        string `json:"icon" firestore:"icon"`
}

type Testimonial struct {
	ID        string `json:"id" firestore:"id"`
	Name      string `json:"name" firestore:"name"`
	Handle    string `json:"handle" firestore:"handle"`
	Text      string `json:"text" firestore:"text"`
	Avatar    string `json:"avatar" firestore:"avatar"`
	Highlight bool   `json:"highlight,omitempty" firestore:"highlight,omitempty"`
}

type CarouselSlide struct {
	ID          string `json:"id" firestore:"id"`
	Badge       string `json:"badge" firestore:"badge"`
	Title       string `json:"title" firestore:"title"`
	Subtitle    string `json:"subtitle" firestore:"subtitle"`
	Description string `json:"description" firestore:"description"`
	ImageURL    string `json:"image_url" firestore:"imageUrl"`
}

// HomeContent is a singleton document edited from the admin dashboard and
// rendered on the landing page.
type HomeContent struct {
	ID           string          `json:"id" firestore:"id"`
	Hero         HeroContent     `json:"hero" firestore:"hero"`
	Carousel     []CarouselSlide `json:"carousel" firestore:"carousel"`
	Spotlights   []Spotlight     `json:"spotlights" firestore:"spotlights"`
	TrustSignals []TrustSignal   `json:"trust_signals" firestore:"trustSignals"`
	Testimonials []Testimonial   `json:"testimonials" firestore:"testimonials"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
