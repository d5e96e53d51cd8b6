package bootstrap

import (
	"sportfields/internal/infra/external"
	"sportfields/internal/pkg/config"
	"sportfields/internal/usecase/assistant"
	"sportfields/internal/usecase/commands"

	"go.uber.org/fx"
)

var ExternalModule = fx.Module("external",
	fx.Provide(
		func(cfg config.Config) *external.GeocodingClient {
			return external.NewGeocodingClient(cfg.External.GoogleMapsAPIKey)
		},
		func(cfg config.Config) *external.StripeClient {
			return external.NewStripeClient(cfg.External.StripeSecretKey)
		},
		fx.Annotate(
			func(cfg config.Config) *external.SMTPMailer {
				return external.NewSMTPMailer(cfg.Mail)
			},
			fx.As(new(commands.Mailer)),
		),
		fx.Annotate(
			func(cfg config.Config) *external.ChatClient {
				return external.NewChatClient(cfg.External.OpenAIAPIKey, cfg.External.OpenAIModel)
			},
			fx.As(new(assistant.ChatCompleter)),
		),
		fx.Annotate(
			func(cfg config.Config) *external.TranslateClient {
				return external.NewTranslateClient(cfg.External.GoogleTranslateAPIKey)
			},
			fx.As(new(assistant.Translator)),
		),
		fx.Annotate(
			func(cfg config.Config) *external.YouTubeClient {
				return external.NewYouTubeClient(cfg.External.YouTubeAPIKey)
			},
			fx.As(new(assistant.TutorialFinder)),
		),
		assistant.NewService,
	),
)
