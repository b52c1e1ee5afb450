package usecase

import (
	"gameclub/internal/domain/entity"
)

// defaultMarketingSettings seeds the singleton on first read. Copy is in
// Persian because the storefront ships to an Iranian audience.
var defaultMarketingSettings = entity.MarketingSettings{
	BannerContent: entity.BannerContent{
		Title:       "Game Club Banner 1403",
		Subtitle:    "Creative Drop",
		Badge:       "تحویل ۳۰ ثانیه‌ای",
		Description: "با عضویت در Game Club می‌توانید هر ماه ۳ اکانت Safe را با قیمت ویژه دریافت کنید و در اولویت پشتیبانی تلگرام قرار بگیرید.",
		Perks:       []string{"تحویل ۳۰ ثانیه‌ای", "۴ بازی پریمیوم در ماه", "پشتیبانی ۲۴/۷"},
		PriceLabel:  "Game Club Plan",
		PriceValue:  "۴۹۹ هزار تومان",
		CtaLabel:    "فعالسازی اشتراک",
		CtaHref:     "/account",
	},
	Campaigns: []entity.Campaign{
		{
			ID:        "cmp-hero",
			Name:      "لانچ PS5 HDR Drop",
			Channel:   "تلگرام",
			Status:    entity.CampaignStatusActive,
			Budget:    48,
			CTR:       5.1,
			CVR:       2.4,
			StartDate: "1403/10/01",
			EndDate:   "1403/10/15",
		},
		{
			ID:        "cmp-instagram",
			Name:      "کاروسل اینستاگرام Winter",
			Channel:   "اینستاگرام",
			Status:    entity.CampaignStatusPaused,
			Budget:    32,
			CTR:       3.2,
			CVR:       1.4,
			StartDate: "1403/09/15",
			EndDate:   "1403/09/30",
		},
		{
			ID:        "cmp-email",
			Name:      "ایمیل Safe Account VIP",
			Channel:   "ایمیل",
			Status:    entity.CampaignStatusDraft,
			Budget:    18,
			CTR:       6.4,
			CVR:       4.1,
			StartDate: "1403/10/20",
			EndDate:   "1403/11/01",
		},
	},
	UtmBuilder: entity.UtmBuilder{
		BaseURL:  "https://gameclub.ir",
		Source:   "telegram",
		Medium:   "social",
		Campaign: "ps5-q4-drop",
		Content:  "hero-banner",
	},
	ExperimentSplit: 60,
}
