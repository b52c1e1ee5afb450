package handler

import (
	"gameclub/internal/infrastructure/storage"
	"gameclub/internal/usecase"
)

var (
	authHandler        *AuthHandler
	gameHandler        *GameHandler
	cartHandler        *CartHandler
	orderHandler       *OrderHandler
	marketingHandler   *MarketingHandler
	homeContentHandler *HomeContentHandler
	reviewHandler      *ReviewHandler
	accountHandler     *AccountHandler
	uploadHandler      *UploadHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	gameUseCase *usecase.GameUseCase,
	cartUseCase *usecase.CartUseCase,
	orderUseCase *usecase.OrderUseCase,
	marketingUseCase *usecase.MarketingUseCase,
	homeContentUseCase *usecase.HomeContentUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	accountUseCase *usecase.AccountUseCase,
	storageClient *storage.LocalClient,
) {
	authHandler = NewAuthHandler(authUseCase)
	gameHandler = NewGameHandler(gameUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	marketingHandler = NewMarketingHandler(marketingUseCase)
	homeContentHandler = NewHomeContentHandler(homeContentUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	accountHandler = NewAccountHandler(accountUseCase)
	uploadHandler = NewUploadHandler(storageClient)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetGameHandler() *GameHandler {
	return gameHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetMarketingHandler() *MarketingHandler {
	return marketingHandler
}

func GetHomeContentHandler() *HomeContentHandler {
	return homeContentHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetAccountHandler() *AccountHandler {
	return accountHandler
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}
