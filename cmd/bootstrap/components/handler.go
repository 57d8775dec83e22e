package components

import (
	"marketplace-moderation/internal/handler"
	"marketplace-moderation/internal/handler/api"
	"marketplace-moderation/internal/handler/middleware"
	"marketplace-moderation/internal/pkg/config"
	"marketplace-moderation/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(svc *jwt.Service) middleware.TokenValidator { return svc },
		api.NewAuthHandler,
		api.NewVendorHandler,
		api.NewStatusApplicationHandler,
		api.NewRoleApplicationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
