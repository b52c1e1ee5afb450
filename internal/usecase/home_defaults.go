package usecase

import (
	"gameclub/internal/domain/entity"
)

// defaultHomeContent seeds the landing-page singleton on first read.
var defaultHomeContent = entity.HomeContent{
	Hero: entity.HeroContent{
		Badge:    "تحویل آنی اکانت",
		Title:    "اکانت قانونی PS5 با تضمین Game Club",
		Subtitle: "بازی‌های روز پلی‌استیشن را با ظرفیت دلخواه و پشتیبانی ۲۴ ساعته تحویل بگیرید.",
		PrimaryCta: entity.HeroCta{
			Label: "مشاهده کاتالوگ",
			Href:  "/games",
		},
		SecondaryCta: entity.HeroCta{
			Label: "اکانت‌های Safe",
			Href:  "/games?safeOnly=true",
		},
		Stats: []entity.HeroStat{
			{ID: "stat-delivery", Label: "میانگین زمان تحویل", Value: "۳۰ ثانیه"},
			{ID: "stat-orders", Label: "سفارش موفق", Value: "+۱۲٬۰۰۰"},
			{ID: "stat-support", Label: "پشتیبانی", Value: "۲۴/۷"},
		},
	},
	Carousel: []entity.CarouselSlide{
		{
			ID:          "slide-hdr",
			Badge:       "Drop جدید",
			Title:       "PS5 HDR Collection",
			Subtitle:    "سه بازی انحصاری در یک اکانت",
			Description: "God of War، Spider-Man 2 و بازی‌های روز با ظرفیت Primary.",
			ImageURL:    "/uploads/home/slide-hdr.jpg",
		},
		{
			ID:          "slide-safe",
			Badge:       "Safe Account",
			Title:       "اکانت اختصاصی بدون ریسک",
			Subtitle:    "ایمیل و رمز مخصوص شما",
			Description: "اکانت Safe فقط روی کنسول شما فعال می‌شود.",
			ImageURL:    "/uploads/home/slide-safe.jpg",
		},
	},
	Spotlights: []entity.Spotlight{
		{ID: "spot-new", Title: "تازه‌های فروشگاه", Description: "جدیدترین بازی‌های اضافه‌شده به کاتالوگ", Href: "/games?sort=-createdAt", Accent: "violet"},
		{ID: "spot-sport", Title: "فصل فوتبال", Description: "EA SPORTS FC با بهترین قیمت ظرفیت دوم", Href: "/games/ea-sports-fc-25", Accent: "emerald"},
	},
	TrustSignals: []entity.TrustSignal{
		{ID: "trust-instant", Title: "تحویل آنی", Description: "اطلاعات اکانت بلافاصله بعد از پرداخت", Icon: "bolt"},
		{ID: "trust-warranty", Title: "گارانتی مادام‌العمر", Description: "تعویض رایگان در صورت مشکل اکانت", Icon: "shield"},
		{ID: "trust-support", Title: "پشتیبانی تلگرام", Description: "پاسخگویی ۲۴ ساعته در تلگرام", Icon: "chat"},
	},
	Testimonials: []entity.Testimonial{
		{ID: "tst-1", Name: "آرمان", Handle: "@arman_ps", Text: "اکانت Ragnarök رو کمتر از یک دقیقه تحویل گرفتم.", Avatar: "/uploads/home/avatar-1.jpg", Highlight: true},
		{ID: "tst-2", Name: "نگار", Handle: "@negar.plays", Text: "پشتیبانی واقعا ۲۴ ساعته جواب می‌ده.", Avatar: "/uploads/home/avatar-2.jpg"},
	},
}
