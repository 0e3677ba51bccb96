package components

import (
	"gembank/internal/infra/repository"
	"gembank/internal/infra/uow"
	"gembank/internal/usecase/queries"
	"gembank/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewDepositRepository,
			fx.As(new(shared.DepositRepository)),
			fx.As(new(queries.DepositReadStore)),
		),
		fx.Annotate(
			repository.NewCardRepository,
			fx.As(new(shared.CardRepository)),
			fx.As(new(queries.CardReadStore)),
		),
		fx.Annotate(
			repository.NewOperationsRepository,
			fx.As(new(queries.OperationsReadStore)),
		),
		fx.Annotate(
			repository.NewWebhookEventRepository,
			fx.As(new(shared.WebhookEventRepository)),
		),
		fx.Annotate(
			repository.NewProfileRepository,
			fx.As(new(shared.ProfileRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DB {
	return pool
}
