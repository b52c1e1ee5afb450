package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"gameclub/internal/adapter/api"
	"gameclub/internal/adapter/api/handler"
	apimiddleware "gameclub/internal/adapter/api/middleware"
	"gameclub/internal/adapter/api/router"
	"gameclub/internal/adapter/repository"
	"gameclub/internal/infrastructure/auth"
	"gameclub/internal/infrastructure/storage"
	"gameclub/internal/usecase"
	"gameclub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewLocalClient(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	gameRepo := repository.NewFirestoreGameRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	priceAlertRepo := repository.NewFirestorePriceAlertRepository(firestoreClient)
	accountRepo := repository.NewFirestoreGameAccountRepository(firestoreClient)
	homeContentRepo := repository.NewFirestoreHomeContentRepository(firestoreClient)
	marketingRepo := repository.NewFirestoreMarketingRepository(firestoreClient)

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager)
	gameUseCase := usecase.NewGameUseCase(gameRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, gameRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cartRepo, gameRepo)
	marketingUseCase := usecase.NewMarketingUseCase(marketingRepo, orderRepo)
	homeContentUseCase := usecase.NewHomeContentUseCase(homeContentRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, priceAlertRepo, gameRepo)
	accountUseCase := usecase.NewAccountUseCase(accountRepo, gameRepo)

	handler.Setup(
		authUseCase,
		gameUseCase,
		cartUseCase,
		orderUseCase,
		marketingUseCase,
		homeContentUseCase,
		reviewUseCase,
		accountUseCase,
		storageClient,
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.ClientURL},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, "x-admin-key"},
	}))

	e.Static("/uploads", storageClient.BaseDir())

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)
	adminMiddleware := apimiddleware.NewAdminKeyMiddleware(cfg.AdminAPIKey)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
