package main

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/to-dy/pgapex-builder/api/client"
	"github.com/to-dy/pgapex-builder/api/pages/navigationregion"
	"github.com/to-dy/pgapex-builder/api/router"
	"github.com/to-dy/pgapex-builder/api/services"
	"github.com/to-dy/pgapex-builder/initializers"
)

// env holds what every command needs once the configuration is loaded.
type env struct {
	cfg         initializers.Config
	templates   *services.TemplateService
	databases   *services.DatabaseService
	navigations *services.NavigationService
	regions     *services.RegionService
}

func newEnv(cfg initializers.Config) *env {
	opts := []client.Option{client.WithTimeout(cfg.APITimeout)}
	if cfg.APIToken != "" {
		opts = append(opts, client.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIToken})))
	}
	api := client.New(cfg.APIURL, opts...)

	return &env{
		cfg:         cfg,
		templates:   services.NewTemplateService(api),
		databases:   services.NewDatabaseService(api),
		navigations: services.NewNavigationService(api),
		regions:     services.NewRegionService(api),
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the application builder API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Infow("starting server", "addr", e.cfg.Addr(), "api", e.cfg.APIURL)

			return router.SetupServer(e.cfg.Addr(), navigationregion.Deps{
				Templates:   e.templates,
				Navigations: e.navigations,
				Regions:     e.regions,
			})
		},
	}

	root := &cobra.Command{
		Use:           "app",
		Short:         "pgapex application builder backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializers.LoadEnv(); err != nil {
				return err
			}

			cfg, err := initializers.LoadConfig()
			if err != nil {
				return err
			}
			log.SetLevel(cfg.LogLevel)

			*e = *newEnv(cfg)
			return nil
		},
		Args: cobra.NoArgs,
		RunE: serve.RunE,
	}

	root.AddCommand(serve)
	root.AddCommand(listCommands(e)...)

	return root
}
