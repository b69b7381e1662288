package api

import (
	"context"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vietanh2810/ticket-desk/docs"
	v1 "github.com/vietanh2810/ticket-desk/internal/api/handler/v1"
	"github.com/vietanh2810/ticket-desk/internal/api/middleware"
	"github.com/vietanh2810/ticket-desk/internal/config"
	"github.com/vietanh2810/ticket-desk/internal/core"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

// NewServer mounts every route over c. The live availability hub runs until ctx is done.
func NewServer(ctx context.Context, conf *config.AppConfig, c *core.Core) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	sessionHandler := s.initSessionHandler(c)
	ticketHandler := v1.NewTicketHandler(c.Inventory)
	liveHandler := s.initLiveHandler(ctx, c)
	venueHandler := v1.NewVenueHandler(c.Venue)
	cartHandler := v1.NewCartHandler(c.Carts)
	checkoutHandler := v1.NewCheckoutHandler(c.Orders)
	s.MountHandlers(sessionHandler, ticketHandler, liveHandler, venueHandler, cartHandler, checkoutHandler)

	return s
}

func (s *Server) initSessionHandler(c *core.Core) *v1.SessionHandler {
	return v1.NewSessionHandler(s.Config.API, c.Carts, c.Orders)
}

func (s *Server) initLiveHandler(ctx context.Context, c *core.Core) *v1.LiveHandler {
	handler := v1.NewLiveHandler(c.Inventory)
	c.Inventory.OnChange(handler.Publish)
	go handler.Run(ctx)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	sessionHandler *v1.SessionHandler,
	ticketHandler *v1.TicketHandler,
	liveHandler *v1.LiveHandler,
	venueHandler *v1.VenueHandler,
	cartHandler *v1.CartHandler,
	checkoutHandler *v1.CheckoutHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/sessions", sessionHandler.HandleCreateSession)
		public.GET("/tickets", ticketHandler.HandleGetTickets)
		public.GET("/tickets/live", liveHandler.HandleLive)
		public.GET("/tickets/:category", ticketHandler.HandleGetTicket)
		public.GET("/venue/map", venueHandler.HandleGetMap)
		public.GET("/orders/:reference", checkoutHandler.HandleGetOrder)
	}

	session := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.SessionSigningKey).VerifySession())
	{
		session.DELETE("/sessions", sessionHandler.HandleCloseSession)

		session.GET("/cart", cartHandler.HandleGetCart)
		session.DELETE("/cart", cartHandler.HandleClearCart)
		session.POST("/cart/lines", cartHandler.HandleAddLine)
		session.DELETE("/cart/lines/:index", cartHandler.HandleDeleteLine)

		session.GET("/checkout", checkoutHandler.HandleGetCheckout)
		session.POST("/checkout", checkoutHandler.HandleBeginCheckout)
		session.DELETE("/checkout", checkoutHandler.HandleCancelCheckout)
		session.POST("/checkout/confirm", checkoutHandler.HandleConfirmCheckout)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Ticket desk API"
	docs.SwaggerInfo.Description = "Grandstand ticket sales: availability, shopping cart and order checkout."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
