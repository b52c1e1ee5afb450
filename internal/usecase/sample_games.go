package usecase

import (
	"gameclub/internal/domain/entity"
)

// sampleGames mirrors the starter catalog the admin dashboard can seed on a
// fresh install. Prices are in toman.
var sampleGames = []entity.Game{
	{
		Title:                "God of War Ragnarök",
		Slug:                 "god-of-war-ragnarok",
		Description:          "Kratos and Atreus journey through the Nine Realms in search of answers before Ragnarök arrives.",
		Genre:                []string{"Action", "Story"},
		Platform:             "PS5",
		RegionOptions:        []string{"R1", "R2", "R3"},
		BasePrice:            2899000,
		SafeAccountAvailable: true,
		Tags:                 []string{"exclusive", "single-player"},
		Options: []entity.GameOption{
			{ID: "opt-region", Name: "Region", Values: []string{"R1", "R2", "R3"}},
			{ID: "opt-capacity", Name: "Capacity", Values: []string{"Primary", "Secondary"}},
		},
		Variants: []entity.GameVariant{
			{ID: "var-r2-primary", SelectedOptions: map[string]string{"Region": "R2", "Capacity": "Primary"}, Price: 2899000, Stock: 5},
			{ID: "var-r2-secondary", SelectedOptions: map[string]string{"Region": "R2", "Capacity": "Secondary"}, Price: 2199000, Stock: 12},
		},
	},
	{
		Title:                "Marvel's Spider-Man 2",
		Slug:                 "marvels-spider-man-2",
		Description:          "Swing across Marvel's New York as Peter Parker and Miles Morales against Venom and Kraven.",
		Genre:                []string{"Action", "Open World"},
		Platform:             "PS5",
		RegionOptions:        []string{"R1", "R2"},
		BasePrice:            2599000,
		SafeAccountAvailable: true,
		Tags:                 []string{"exclusive"},
		Options: []entity.GameOption{
			{ID: "opt-capacity", Name: "Capacity", Values: []string{"Primary", "Secondary"}},
		},
		Variants: []entity.GameVariant{
			{ID: "var-primary", SelectedOptions: map[string]string{"Capacity": "Primary"}, Price: 2599000, Stock: 8},
			{ID: "var-secondary", SelectedOptions: map[string]string{"Capacity": "Secondary"}, Price: 1899000, Stock: 20},
		},
	},
	{
		Title:                "EA SPORTS FC 25",
		Slug:                 "ea-sports-fc-25",
		Description:          "The latest entry in the football franchise with Ultimate Team and full online play.",
		Genre:                []string{"Sports", "Competitive"},
		Platform:             "PS5",
		RegionOptions:        []string{"R1", "R2", "R3"},
		BasePrice:            1999000,
		SafeAccountAvailable: false,
		Tags:                 []string{"online", "multiplayer"},
		Options: []entity.GameOption{
			{ID: "opt-capacity", Name: "Capacity", Values: []string{"Primary", "Secondary"}},
		},
		Variants: []entity.GameVariant{
			{ID: "var-primary", SelectedOptions: map[string]string{"Capacity": "Primary"}, Price: 1999000, Stock: 15},
			{ID: "var-secondary", SelectedOptions: map[string]string{"Capacity": "Secondary"}, Price: 1399000, Stock: 30},
		},
	},
	{
		Title:                "Elden Ring + Shadow of the Erdtree",
		Slug:                 "elden-ring-shadow",
		Description:          "The complete edition of FromSoftware's open-world epic including the Shadow of the Erdtree expansion.",
		Genre:                []string{"Action", "RPG"},
		Platform:             "PS5",
		RegionOptions:        []string{"R2", "R3"},
		BasePrice:            2499000,
		SafeAccountAvailable: true,
		Tags:                 []string{"souls-like", "dlc-included"},
		Options: []entity.GameOption{
			{ID: "opt-region", Name: "Region", Values: []string{"R2", "R3"}},
		},
		Variants: []entity.GameVariant{
			{ID: "var-r2", SelectedOptions: map[string]string{"Region": "R2"}, Price: 2499000, Stock: 7},
			{ID: "var-r3", SelectedOptions: map[string]string{"Region": "R3"}, Price: 2399000, Stock: 9},
		},
	},
}
