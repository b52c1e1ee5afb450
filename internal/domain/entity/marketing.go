package entity

import (
	"time"
)

const (
	CampaignStatusActive = "active"
	CampaignStatusPaused = "paused"
	CampaignStatusDraft  = "draft"
)

type BannerContent struct {
	Title       string   `json:"title" firestore:"title"`
	Subtitle    string   `json:"subtitle" firestore:"subtitle"`
	Badge       string   `json:"badge" firestore:"badge"`
	Description string   `json:"description" firestore:"description"`
	Perks       []string `json:"perks" firestore:"perks"`
	PriceLabel  string   `json:"price_label" firestore:"priceLabel"`
	PriceValue  string   `json:"price_value" firestore:"priceValue"`
	CtaLabel    string   `json:"cta_label" firestore:"ctaLabel"`
	CtaHref     string   `json:"cta_href" firestore:"ctaHref"`
}

// Campaign budget is in millions of toman; KPI aggregation multiplies it out.
type Campaign struct {
	ID        string  `json:"id" firestore:"id"`
	Name      string  `json:"name" firestore:"name"`
	Channel   string  `json:"channel" firestore:"channel"`
	Status    string  `json:"status" firestore:"status"`
	Budget    float64 `json:"budget" firestore:"budget"`
	CTR       float64 `json:"ctr" firestore:"ctr"`
	CVR       float64 `json:"cvr" firestore:"cvr"`
	StartDate string  `json:"start_date" firestore:"startDate"`
	EndDate   string  `json:"end_date" firestore:"endDate"`
}

type UtmBuilder struct {
	BaseURL  string `json:"base_url" firestore:"baseUrl"`
	Source   string `json:"source" firestore:"source"`
	Medium   string `json:"medium" firestore:"medium"`
	Campaign string `json:"campaign" firestore:"campaign"`
	Term     string `json:"term,omitempty" firestore:"term,omitempty"`
	Content  string `json:"content,omitempty" firestore:"content,omitempty"`
}

// MarketingSettings is a singleton document holding editable marketing copy.
type MarketingSettings struct {
	ID              string        `json:"id" firestore:"id"`
	BannerContent   BannerContent `json:"banner_content" firestore:"bannerContent"`
	Campaigns       []Campaign    `json:"campaigns" firestore:"campaigns"`
	UtmBuilder      UtmBuilder    `json:"utm_builder" firestore:"utmBuilder"`
	ExperimentSplit int           `json:"experiment_split" firestore:"experimentSplit"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
