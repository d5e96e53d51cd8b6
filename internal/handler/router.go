package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sportfields/internal/handler/api"
	"sportfields/internal/handler/middleware"
	"sportfields/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Field       *api.FieldHandler
	Reservation *api.ReservationHandler
	Assistant   *api.AssistantHandler
	Payment     *api.PaymentHandler
	Geo         *api.GeoHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, rdb *redis.Client, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, rdb, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, rdb *redis.Client, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	rateLimit := middleware.NewRateLimiter(cfg.RateLimit, rdb)

	// The SPA consumes these paths as-is.
	addRoutes(engine.Group(""), []route{
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{rateLimit}},
		{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{rateLimit}},
		{Method: http.MethodPost, Path: "/reset-password", Handler: h.Auth.ResetPassword, Mw: []gin.HandlerFunc{rateLimit}},
		{Method: http.MethodPost, Path: "/confirm-password-reset", Handler: h.Auth.ConfirmPasswordReset, Mw: []gin.HandlerFunc{rateLimit}},
		{Method: http.MethodGet, Path: "/get-user-profile/:username", Handler: h.Auth.GetProfile},
		{Method: http.MethodGet, Path: "/get-statut/:username", Handler: h.Auth.GetStatut},
		{Method: http.MethodPost, Path: "/search-fields", Handler: h.Field.SearchFields},
		{Method: http.MethodGet, Path: "/get-sports-fields", Handler: h.Field.GetSportsFields},
		{Method: http.MethodGet, Path: "/get-owner-sports-fields/:username", Handler: h.Field.GetOwnerSportsFields},
		{Method: http.MethodGet, Path: "/get-field-reservations/:id_teren", Handler: h.Reservation.GetFieldReservations},
		{Method: http.MethodGet, Path: "/get-field-availability/:id_teren", Handler: h.Reservation.GetFieldAvailability},
		{Method: http.MethodGet, Path: "/get-coordinates", Handler: h.Geo.GetCoordinates},
	})

	authRequired := engine.Group("")
	authRequired.Use(authMiddleware.RequireAuth())
	addRoutes(authRequired, []route{
		{Method: http.MethodPost, Path: "/make-reservation", Handler: h.Reservation.MakeReservation},
		{Method: http.MethodDelete, Path: "/cancel-reservation/:id", Handler: h.Reservation.CancelReservation},
		{Method: http.MethodGet, Path: "/get-reservations/:username", Handler: h.Reservation.GetReservations},
		{Method: http.MethodGet, Path: "/get-user-reservations", Handler: h.Reservation.GetUserReservations},
		{Method: http.MethodGet, Path: "/get-user-reservations-for-field", Handler: h.Reservation.GetUserReservationsForField},
		{Method: http.MethodPut, Path: "/update-favourite-sports/:username", Handler: h.Auth.UpdateFavouriteSports},
		{Method: http.MethodGet, Path: "/get-training-plan", Handler: h.Assistant.GetTrainingPlan, Mw: []gin.HandlerFunc{rateLimit}},
		{Method: http.MethodPost, Path: "/create-checkout-session", Handler: h.Payment.CreateCheckoutSession},
		{Method: http.MethodPost, Path: "/create-checkout-session-new", Handler: h.Payment.CreateCheckoutSessionNew},
	})

	ownerRequired := engine.Group("")
	ownerRequired.Use(authMiddleware.RequireAuth(), authMiddleware.RequireOwner())
	addRoutes(ownerRequired, []route{
		{Method: http.MethodPost, Path: "/add-field", Handler: h.Field.AddField},
		{Method: http.MethodPut, Path: "/update-field", Handler: h.Field.UpdateField},
		{Method: http.MethodDelete, Path: "/delete-field/:id", Handler: h.Field.DeleteField},
		{Method: http.MethodPost, Path: "/get-owner-fields", Handler: h.Field.GetOwnerFields},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
