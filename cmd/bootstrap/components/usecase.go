package components

import (
	"gembank/internal/infra/mailer"
	"gembank/internal/pkg/clock"
	"gembank/internal/pkg/config"
	"gembank/internal/usecase/commands"
	"gembank/internal/usecase/queries"
	"gembank/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		mailer.NewSimulatedMailer,
		fx.As(new(mailer.Mailer)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewDepositUseCase,
		commands.NewCardUseCase,
		commands.NewOutboxWorker,
		func(cfg config.Config, events shared.WebhookEventRepository) commands.WebhookCommands {
			return commands.NewWebhookUseCase(events, cfg.Webhook.BankingSecret)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDepositQueries,
		queries.NewCardQueries,
		queries.NewOperationsQueries,
	),
)
