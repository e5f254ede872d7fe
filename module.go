package yamlconf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-yamlconf/config"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("configuration name must not be empty")

// NewModule creates an Fx module providing the configuration file at path as a named
// *config.Configuration. The name is used as both the module name and the DI named tag.
// An optional *slog.Logger from the container replaces the default stderr logger.
// With WithSaveOnStop the configuration is saved when the application stops.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, path string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	options := newOptions(opts)

	provide := func(lifecycle fx.Lifecycle, logger *slog.Logger) (*config.Configuration, error) {
		if logger == nil {
			logger = createLogger(&options, os.Stderr)
		}

		cfg, err := open(path, &options, logger)
		if err != nil {
			return nil, fmt.Errorf("loading configuration %q: %w", name, err)
		}

		if options.SaveOnStop {
			lifecycle.Append(fx.Hook{
				OnStop: func(context.Context) error {
					logger.Info("saving configuration on stop", "name", name, "path", cfg.Path())

					return cfg.Save()
				},
			})
		}

		return cfg, nil
	}

	return fx.Module(name, fx.Provide(
		fx.Annotate(
			provide,
			fx.ParamTags("", `optional:"true"`),
			fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
		),
	))
}
