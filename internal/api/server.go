package api

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/inventory-api/docs"
	"github.com/vietanh2810/inventory-api/internal/api/handler/admin"
	v1 "github.com/vietanh2810/inventory-api/internal/api/handler/v1"
	"github.com/vietanh2810/inventory-api/internal/api/middleware"
	"github.com/vietanh2810/inventory-api/internal/config"
	"github.com/vietanh2810/inventory-api/internal/event"
	"github.com/vietanh2810/inventory-api/internal/repository"
	"github.com/vietanh2810/inventory-api/internal/repository/dao"
	"github.com/vietanh2810/inventory-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

// NewServer wires the item store held by db into the JSON API, the admin
// pages and the change feed published on hub.
func NewServer(conf *config.AppConfig, db *gorm.DB, hub *event.Hub) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	templates, err := admin.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("admin.LoadTemplates -> %w", err)
	}
	engine.HTMLRender = templates

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	svc := s.initItemService(db, hub)
	s.MountHandlers(
		v1.NewItemHandler(svc),
		v1.NewEventHandler(hub, conf.API.AllowedCORSDomains),
		admin.NewItemHandler(svc),
	)

	return s, nil
}

func (s *Server) initItemService(db *gorm.DB, hub *event.Hub) *service.ItemService {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewItemRepository(itemDAO)

	return service.NewItemService(repo, hub)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(itemHandler *v1.ItemHandler, eventHandler *v1.EventHandler, adminHandler *admin.ItemHandler) {
	const basePath = "/api/v1"

	items := s.Router.Group(basePath)
	{
		items.GET("/items", itemHandler.HandleListItems)
		items.POST("/items", itemHandler.HandleCreateItem)
		items.GET("/items/events", eventHandler.HandleItemEvents)
		items.POST("/items/validate", itemHandler.HandleValidateItem)
		items.POST("/items/dispatch", itemHandler.HandleDispatch)
		items.POST("/items/update", itemHandler.HandleUpdateItem)
		items.POST("/items/quantity", itemHandler.HandleAdjustQuantity)
		items.POST("/items/delete", itemHandler.HandleDeleteItem)
		items.GET("/items/:id", itemHandler.HandleGetItem)
		items.PATCH("/items/:id", itemHandler.HandleUpdateItem)
		items.DELETE("/items/:id", itemHandler.HandleDeleteItem)
		items.POST("/items/:id/quantity", itemHandler.HandleAdjustQuantity)
	}

	pages := s.Router.Group("/admin")
	{
		pages.GET("", adminHandler.HandleDashboard)
		pages.GET("/items", adminHandler.HandleListItems)
		pages.GET("/items/new", adminHandler.HandleNewItemForm)
		pages.POST("/items/new", adminHandler.HandleCreateItem)
		pages.GET("/items/:id/edit", adminHandler.HandleEditItemForm)
		pages.POST("/items/:id/edit", adminHandler.HandleUpdateItem)
		pages.GET("/items/:id/delete", adminHandler.HandleDeleteConfirm)
		pages.POST("/items/:id/delete", adminHandler.HandleDeleteItem)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Inventory API"
	docs.SwaggerInfo.Description = "Items CRUD with a strict validation and mutation contract."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
