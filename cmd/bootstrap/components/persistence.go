package components

import (
	"marketplace-moderation/internal/infra/db"
	"marketplace-moderation/internal/infra/readstore"
	"marketplace-moderation/internal/infra/uow"
	"marketplace-moderation/internal/usecase/queries"
	"marketplace-moderation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

// Read stores here run on the pool, outside of any transaction; the unit of
// work builds its own transactional instances.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewVendorReadStore,
			fx.As(new(queries.VendorReadStore)),
		),
		fx.Annotate(
			readstore.NewStatusApplicationReadStore,
			fx.As(new(queries.StatusApplicationReadStore)),
		),
		fx.Annotate(
			readstore.NewRoleApplicationReadStore,
			fx.As(new(queries.RoleApplicationReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
