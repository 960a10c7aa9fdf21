package components

import (
	"shareit/internal/infra/query"
	"shareit/internal/infra/uow"

	"go.uber.org/fx"
)

// PersistenceModule exposes the unit of work; repositories and read stores
// are built per transaction inside it.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		query.New,
		uow.NewPostgresUoW,
	),
)
