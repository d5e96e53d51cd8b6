package components

import (
	"sportfields/internal/handler"
	"sportfields/internal/handler/api"
	"sportfields/internal/handler/middleware"
	"sportfields/internal/infra/external"
	"sportfields/internal/pkg/config"
	"sportfields/internal/usecase/assistant"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewFieldHandler,
		api.NewReservationHandler,
		func(planner *assistant.Service, cfg config.Config) *api.AssistantHandler {
			return api.NewAssistantHandler(planner, cfg.External.TrainingPlanTimeout)
		},
		func(stripe *external.StripeClient, cfg config.Config) *api.PaymentHandler {
			return api.NewPaymentHandler(stripe, cfg.Server.FrontendURL)
		},
		api.NewGeoHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, field *api.FieldHandler, reservation *api.ReservationHandler, assistantHandler *api.AssistantHandler, payment *api.PaymentHandler, geo *api.GeoHandler) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				Field:       field,
				Reservation: reservation,
				Assistant:   assistantHandler,
				Payment:     payment,
				Geo:         geo,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
