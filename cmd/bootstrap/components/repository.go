package components

import (
	"tourmate/internal/infra/db"
	repo_impl "tourmate/internal/infra/repository"
	"tourmate/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewGuideApplicationRepository,
			fx.As(new(commands.GuideApplicationRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
