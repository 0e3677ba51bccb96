package components

import (
	"gembank/internal/handler"
	"gembank/internal/handler/api"
	"gembank/internal/handler/middleware"
	"gembank/internal/pkg/clock"
	"gembank/internal/pkg/config"
	"gembank/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDepositHandler,
		api.NewCardHandler,
		api.NewWebhookHandler,
		api.NewAdminHandler,
		func(cfg config.Config, worker commands.OutboxWorker) *api.CronHandler {
			return api.NewCronHandler(worker, cfg.Cron.Secret)
		},
		func(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit.DepositMaxRequests, cfg.RateLimit.Window, clk)
		},
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(auth *api.AuthHandler, deposit *api.DepositHandler, card *api.CardHandler, webhook *api.WebhookHandler, cron *api.CronHandler, admin *api.AdminHandler) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Deposit: deposit,
		Card:    card,
		Webhook: webhook,
		Cron:    cron,
		Admin:   admin,
	}
}
