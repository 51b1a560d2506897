package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/harshu1705/NSSS-Certificate/certificate"
	"github.com/harshu1705/NSSS-Certificate/config"
	"github.com/harshu1705/NSSS-Certificate/global"
	"github.com/harshu1705/NSSS-Certificate/repositories"
	"github.com/harshu1705/NSSS-Certificate/routes"
	"github.com/harshu1705/NSSS-Certificate/services"
	"github.com/harshu1705/NSSS-Certificate/utils/redislog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "certdrive",
		Short: "Look up participants and issue their certificates",
		RunE:  func(cmd *cobra.Command, args []string) error { return serve() },
	}
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE:  func(cmd *cobra.Command, args []string) error { return serve() },
	})
	root.AddCommand(newImportCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve() error {
	// 1) Load config from file and/or env
	cfg := config.Load()
	log.Printf("[boot] %s %s starting in %s on :%s (events required: %t)", cfg.AppName, global.AppVersion, cfg.Env, cfg.HTTPPort, cfg.RequireEvent())

	// 2) Infrastructure: Redis is optional (cache + audit list).
	rdb := config.InitRedis(cfg)
	rlog := redislog.New(rdb, global.AuditLogKey, 1000, 7*24*time.Hour)
	rlog.Info("app boot", redislog.Fields{
		"env":           cfg.Env,
		"port":          cfg.HTTPPort,
		"roster_source": cfg.RosterSource,
	})

	// 3) Load the roster exactly once. Failure leaves it empty.
	repo, err := rosterRepository(cfg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	roster := services.LoadRoster(ctx, repo, rlog)
	cancel()

	// 4) Renderer + service (dependency injection).
	renderer := certificate.NewRenderer(
		certificate.NewTemplateLoader(cfg.TemplatePath, cfg.TemplateMaxWidth),
		certificate.NewComposer(certificate.Options{
			PageSize:   cfg.PageSize,
			FontFamily: cfg.FontFamily,
			FontStyle:  cfg.FontStyle,
			FontSize:   cfg.FontSize,
			NameY:      cfg.NameY,
		}),
		cfg.RenderTimeoutDuration,
	)
	svc := services.NewCertificateService(roster, cfg.Events, renderer, rdb, rlog, cfg.CacheTTLDuration)

	// 5) Gin engine and routes
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	_ = r.SetTrustedProxies(nil) // trust none
	routes.Setup(r, svc, cfg.DownloadSecret, cfg.DownloadExpiresDuration)

	// 6) Serve; a bind failure ends the process.
	rlog.Info("http server start", redislog.Fields{"port": cfg.HTTPPort})
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		rlog.Error("http server error", redislog.Fields{"err": err.Error()})
		return err
	}
	return nil
}

// rosterRepository picks the roster resource named by roster_source.
func rosterRepository(cfg *config.Config) (repositories.RosterRepository, error) {
	switch cfg.RosterSource {
	case "file":
		return repositories.NewFileRosterRepository(cfg.RosterPath, cfg.RosterHasHeader), nil
	case "url":
		client := &http.Client{Timeout: 15 * time.Second}
		return repositories.NewURLRosterRepository(cfg.RosterURL, client, cfg.RosterHasHeader), nil
	case "db":
		return repositories.NewParticipantRepository(config.InitDB(cfg)), nil
	default:
		return nil, fmt.Errorf("unknown roster_source %q (want file|url|db)", cfg.RosterSource)
	}
}

// newImportCmd copies a CSV/XLSX roster into the participants table.
func newImportCmd() *cobra.Command {
	var (
		file      string
		hasHeader bool
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import names from a CSV or XLSX file into the database roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			ctx := cmd.Context()

			names, err := repositories.NewFileRosterRepository(file, hasHeader).Names(ctx)
			if err != nil {
				return err
			}
			repo := repositories.NewParticipantRepository(config.InitDB(cfg))
			n, err := repo.Import(ctx, names)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			total, err := repo.Count(ctx)
			if err != nil {
				return err
			}
			log.Printf("[import] wrote %d names from %s (%d rows in table)", n, file, total)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "participants.csv", "roster file (.csv or .xlsx)")
	cmd.Flags().BoolVar(&hasHeader, "header", false, "skip the first record")
	return cmd
}
