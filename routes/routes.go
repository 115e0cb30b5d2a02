package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SciSaif/seller-app/configs"
	"github.com/SciSaif/seller-app/controllers"
	"github.com/SciSaif/seller-app/middlewares"
	"github.com/SciSaif/seller-app/notify"
	"github.com/SciSaif/seller-app/repository"
	"github.com/SciSaif/seller-app/services"
	"github.com/SciSaif/seller-app/storage"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, assets storage.AssetResolver, notifier notify.Notifier) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	customizationRepo := repository.NewCustomizationRepository(db)
	menuRepo := repository.NewCustomMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	orgSvc := services.NewOrganizationService(orgRepo, userRepo, assets, notifier)
	productSvc := services.NewProductService(productRepo, assets)
	customizationSvc := services.NewCustomizationService(customizationRepo)
	menuSvc := services.NewCustomMenuService(menuRepo, assets)
	orderSvc := services.NewOrderService(orderRepo)
	catalogSvc := services.NewCatalogService(orgRepo, productRepo, customizationRepo, menuRepo, assets)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orgCtrl := controllers.NewOrganizationController(orgSvc)
	productCtrl := controllers.NewProductController(productSvc)
	customizationCtrl := controllers.NewCustomizationController(customizationSvc)
	menuCtrl := controllers.NewCustomMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)

	api := r.Group("/api/v1")

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/login", authCtrl.Login)
	}
	authed := auth.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		authed.GET("/me", authCtrl.Me)
		authed.PATCH("/me", authCtrl.UpdateMe)
	}

	// Organizations: registration is open, management is role gated.
	api.POST("/organizations", orgCtrl.Create)
	admin := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/organizations", orgCtrl.List)
	}
	org := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, "admin", "Organization Admin"))
	{
		org.GET("/organizations/:id", orgCtrl.Get)
		org.PATCH("/organizations/:id", orgCtrl.Update)
		org.GET("/organizations/:id/store", orgCtrl.GetStoreDetails)
		org.PUT("/organizations/:id/store", orgCtrl.SetStoreDetails)
	}

	// Seller catalog management
	seller := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, "Organization Admin"))
	{
		seller.GET("/products", productCtrl.List)
		seller.POST("/products", productCtrl.Create)
		seller.GET("/products/:id", productCtrl.Get)
		seller.PATCH("/products/:id", productCtrl.Update)
		seller.DELETE("/products/:id", productCtrl.Delete)
		seller.PATCH("/products/:id/publish", productCtrl.SetPublished)
		seller.GET("/products/:id/customization-mappings", customizationCtrl.ListMappings)
		seller.PUT("/products/:id/customization-mappings", customizationCtrl.SetMappings)

		seller.GET("/customization-groups", customizationCtrl.ListGroups)
		seller.POST("/customization-groups", customizationCtrl.CreateGroup)
		seller.GET("/customization-groups/:id", customizationCtrl.GetGroup)
		seller.PATCH("/customization-groups/:id", customizationCtrl.UpdateGroup)
		seller.DELETE("/customization-groups/:id", customizationCtrl.DeleteGroup)

		seller.GET("/custom-menus", menuCtrl.List)
		seller.POST("/custom-menus", menuCtrl.Create)
		seller.GET("/custom-menus/:id", menuCtrl.Get)
		seller.PATCH("/custom-menus/:id", menuCtrl.Update)
		seller.DELETE("/custom-menus/:id", menuCtrl.Delete)
		seller.PUT("/custom-menus/:id/timings", menuCtrl.SetTiming)
		seller.POST("/custom-menus/:id/products", menuCtrl.AssignProduct)
		seller.DELETE("/custom-menus/:id/products/:productId", menuCtrl.UnassignProduct)

		seller.GET("/orders", orderCtrl.List)
		seller.GET("/orders/:id", orderCtrl.Get)
		seller.POST("/orders", orderCtrl.Create)
		seller.PATCH("/orders/:id", orderCtrl.Update)
	}

	// Network-facing catalog projection
	api.GET("/ondc/catalog", catalogCtrl.GetProviders)
}
