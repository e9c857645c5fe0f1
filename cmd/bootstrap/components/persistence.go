package components

import (
	"bookwise/internal/infra/db"
	"bookwise/internal/infra/readstore"
	"bookwise/internal/infra/uow"
	"bookwise/internal/usecase/commands"
	"bookwise/internal/usecase/queries"
	"bookwise/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		NewCommandReads,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.LastLoginRecorder)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewCommandReads exposes the pooled (non-transactional) validation reads.
func NewCommandReads(u shared.UnitOfWork) shared.CommandReads {
	return u.CommandReads()
}
