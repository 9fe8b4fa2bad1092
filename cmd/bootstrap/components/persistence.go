package components

import (
	"parkhub/internal/infra"
	"parkhub/internal/infra/cache"
	"parkhub/internal/infra/readstore"
	"parkhub/internal/infra/repository"
	"parkhub/internal/pkg/config"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		NewTxStarter,
		// Write side
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(commands.SlotRepository)),
			fx.As(new(commands.SlotReserver)),
		),
		fx.Annotate(
			repository.NewRateRepository,
			fx.As(new(commands.RateRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(commands.ProfileRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		fx.Annotate(
			readstore.NewRateReadStore,
			fx.As(new(queries.RateReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Slot counters go through the redis read-through cache.
		fx.Annotate(
			NewSlotCountCache,
			fx.As(new(queries.SlotCountsReadStore)),
			fx.As(new(commands.CountInvalidator)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

func NewTxStarter(pool *pgxpool.Pool) shared.TxStarter {
	return pool
}

func NewSlotCountCache(rdb *redis.Client, db infra.DBTX, cfg config.Config) *cache.SlotCountCache {
	return cache.NewSlotCountCache(rdb, readstore.NewSlotReadStore(db), cfg.Redis.CountTTL)
}
