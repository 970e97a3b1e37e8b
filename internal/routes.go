package internal

import (
	"net/http"
	"perfumefinder/internal/controllers"
	"perfumefinder/internal/providers"
)

func InitRoutes(catalogueController *controllers.CatalogueController, userController *controllers.UserController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/perfumes", http.HandlerFunc(catalogueController.Search))
	routers.Get("/perfume", http.HandlerFunc(catalogueController.Detail))
	routers.Get("/suggestions", http.HandlerFunc(catalogueController.Suggestions))
	routers.Get("/prices", http.HandlerFunc(catalogueController.Prices))
	routers.Get("/safety", http.HandlerFunc(catalogueController.Safety))

	routers.Get("/favorites", http.HandlerFunc(userController.ListFavorites))
	routers.Post("/favorites", http.HandlerFunc(userController.AddFavorite))
	routers.Delete("/favorites", http.HandlerFunc(userController.RemoveFavorite))
	routers.Get("/favorite", http.HandlerFunc(userController.IsFavorite))

	routers.Get("/alerts", http.HandlerFunc(userController.ListAlerts))
	routers.Post("/alerts", http.HandlerFunc(userController.CreateAlert))
	routers.Delete("/alerts", http.HandlerFunc(userController.DeleteAlert))
	routers.Post("/alerts/price", http.HandlerFunc(userController.UpdateAlertPrice))
	routers.Post("/alerts/active", http.HandlerFunc(userController.SetAlertActive))
	routers.Post("/alerts/refresh", http.HandlerFunc(userController.RefreshAlerts))
	return routers
}
