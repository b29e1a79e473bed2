package logger

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module wires slog logger for dependency injection and installs it as the process default.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(setDefault),
)

func setDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}
