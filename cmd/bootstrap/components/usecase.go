package components

import (
	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/infra/external"
	"marketplace-moderation/internal/pkg/clock"
	"marketplace-moderation/internal/pkg/config"
	"marketplace-moderation/internal/usecase/commands"
	"marketplace-moderation/internal/usecase/queries"
	"marketplace-moderation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	roleapp.NewRandomCodeGenerator,
	external.NewVendorWriteAdapter,
	external.NewUserDirectoryAdapter,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewVendorUseCase,
		func(
			uow shared.UnitOfWork,
			vendorWrite commands.VendorWriteService,
			clk clock.Clock,
			cfg config.Config,
		) commands.StatusApplicationCommands {
			return commands.NewStatusApplicationUseCase(uow, vendorWrite, clk, cfg.External.CallTimeout)
		},
		func(
			uow shared.UnitOfWork,
			userDirectory commands.UserDirectory,
			codeGen roleapp.CodeGenerator,
			clk clock.Clock,
			cfg config.Config,
		) commands.RoleApplicationCommands {
			return commands.NewRoleApplicationUseCase(uow, userDirectory, codeGen, clk, cfg.External.CallTimeout)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewVendorQueries,
		queries.NewStatusApplicationQueries,
		queries.NewRoleApplicationQueries,
	),
)
