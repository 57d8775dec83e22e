package bootstrap

import (
	"log/slog"
	"os"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(handler).With(slog.String("service", "marketplace-moderation"))
	slog.SetDefault(logger)
	return logger
}
