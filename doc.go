// Package yamlconf opens YAML configuration files as typed, path-addressed trees.
//
// Open wires the config package to its defaults: the goccy/go-yaml codec, the OS filesystem and a
// JSON slog logger on stderr. NewModule does the same inside an Fx application and supplies the
// configuration under a named tag:
//
//	app := fx.New(
//	    yamlconf.NewModule("settings", "/etc/app/settings.yml",
//	        yamlconf.WithDefaultResource(defaults, "settings.yml"),
//	        yamlconf.WithSaveOnStop(),
//	    ),
//	    fx.Invoke(fx.Annotate(func(cfg *config.Configuration) error {
//	        port, err := cfg.GetIntDefault("server.port", 8080)
//	        ...
//	    }, fx.ParamTags(`name:"settings"`))),
//	)
package yamlconf
