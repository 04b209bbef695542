package service

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/store"
)

// Seed fills the menu and review collections with the restaurant's starter
// content when they are empty. Collections that already hold documents are
// left untouched, so calling Seed on every start is safe.
func Seed(ctx context.Context, menu store.Collection[model.MenuItem], reviews store.Collection[model.Review], logger *log.Logger) error {
	n, err := menu.CountAll(ctx)
	if err != nil {
		return storeError(logger, "count menu items", err)
	}
	if n == 0 {
		items := SeedMenuItems()
		if err := menu.InsertMany(ctx, items); err != nil {
			return storeError(logger, "seed menu items", err)
		}
		logger.Infof("inserted %d menu items", len(items))
	}

	n, err = reviews.CountAll(ctx)
	if err != nil {
		return storeError(logger, "count reviews", err)
	}
	if n == 0 {
		rs := SeedReviews()
		if err := reviews.InsertMany(ctx, rs); err != nil {
			return storeError(logger, "seed reviews", err)
		}
		logger.Infof("inserted %d sample reviews", len(rs))
	}
	return nil
}

// SeedMenuItems is the starter menu.
func SeedMenuItems() []model.MenuItem {
	return []model.MenuItem{
		{ID: "1", Name: "Pavé de rumsteck grillé à la plancha", Description: "avec pommes de terre rôties et légumes frais de saison", Price: "22€", Category: "Plats principaux", Available: true},
		{ID: "2", Name: "Cuisse de canard confite", Description: "gratin de crozets aux chanterelles et légumes du marché", Price: "24€", Category: "Plats principaux", Available: true},
		{ID: "3", Name: "Filet de féra du lac Léman", Description: "sauce citronnée, légumes croquants et pommes vapeur", Price: "26€", Category: "Poissons", Available: true},
		{ID: "4", Name: "Feuillet fondant au reblochon et morilles", Description: "salade verte et pommes de terre sautées à l'ail", Price: "19€", Category: "Spécialités", Available: true},
		{ID: "5", Name: "Menu Enfant", Description: "Tagliatelles, nuggets de poulet fermier, glace surprise", Price: "12€", Category: "Enfants", Available: true},
	}
}

// SeedReviews are the reviews shown on a fresh install.
func SeedReviews() []model.Review {
	at := func(month time.Month, day, hour, min int) time.Time {
		return time.Date(2024, month, day, hour, min, 0, 0, time.UTC)
	}
	return []model.Review{
		{ID: "1", Name: "Sophie L.", Rating: 5, Comment: "Un vrai régal, plats copieux et ambiance conviviale ! L'équipe est aux petits soins.", Approved: true, CreatedAt: at(time.December, 1, 12, 0)},
		{ID: "2", Name: "Marc D.", Rating: 5, Comment: "Le meilleur restaurant français de Montbrison, je recommande vivement. Les produits sont frais et locaux.", Approved: true, CreatedAt: at(time.November, 20, 14, 30)},
		{ID: "3", Name: "Isabelle R.", Rating: 4, Comment: "Excellente cuisine traditionnelle, service chaleureux. Parfait pour un déjeuner en famille.", Approved: true, CreatedAt: at(time.December, 10, 19, 15)},
		{ID: "4", Name: "Jean-Pierre M.", Rating: 5, Comment: "Une adresse incontournable ! La cuisse de canard confite est un délice.", Approved: true, CreatedAt: at(time.December, 15, 13, 45)},
	}
}
