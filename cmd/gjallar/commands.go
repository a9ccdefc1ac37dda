package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/gjallar/internal/adapters/cli"
	"github.com/3-lines-studio/gjallar/internal/adapters/esbuild"
	"github.com/3-lines-studio/gjallar/internal/adapters/fs"
	"github.com/3-lines-studio/gjallar/internal/app"
	"github.com/3-lines-studio/gjallar/internal/config"
	"github.com/3-lines-studio/gjallar/internal/config/logger"
	"github.com/3-lines-studio/gjallar/internal/errors"
	"github.com/3-lines-studio/gjallar/internal/telemetry"
	"github.com/3-lines-studio/gjallar/internal/templates"
	"github.com/3-lines-studio/gjallar/internal/usecase"
)

const probeTimeout = 2 * time.Second

var errDoctorFailed = errors.New("doctor found problems")

// rootFlags holds flag values shared by every subcommand
type rootFlags struct {
	config string
}

// newRootCmd builds the gjallar command tree writing to out
func newRootCmd(out *cli.Output) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "gjallar",
		Short: "Build tool and dev server for multi-page frontends",
		Long: `Gjallar bundles named entry points into hashed assets, serves them
from memory with live reload during development, and previews the
production build.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(out.Out())
	cmd.SetErr(out.Err())
	cmd.PersistentFlags().StringVarP(&flags.config, "config", "c", config.DefaultFile, "Path to the config file")

	cmd.AddCommand(
		buildBuildCommand(out, &flags),
		buildDevCommand(out, &flags),
		buildPreviewCommand(out, &flags),
		buildInitCommand(out),
		buildDoctorCommand(out, &flags),
		buildVersionCommand(out),
	)

	return cmd
}

// buildBuildCommand creates the build subcommand
func buildBuildCommand(out *cli.Output, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Bundle every entry point into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(out, flags.config)
			if err != nil {
				return err
			}

			log := logger.NewLogger(cfg.Logging)

			reporter, err := telemetry.NewReporter(cfg.Sentry, log)
			if err != nil {
				out.PrintError("Failed to initialize error reporting: %v", err)
				return err
			}
			defer reporter.Flush()

			svc := usecase.NewBuildService(esbuild.NewBundler(log), fs.NewOSFileSystem(), out)
			result, err := svc.Build(cmd.Context(), cfg)
			if err != nil {
				reporter.Capture(err)
				return err
			}

			log.Debug().Str("outDir", result.OutDir).Strs("files", result.Files).Msg("Build written")

			return nil
		},
	}
}

// buildDevCommand creates the dev subcommand
func buildDevCommand(out *cli.Output, flags *rootFlags) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server with live reload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(out, flags.config)
			if err != nil {
				return err
			}

			if port != 0 {
				cfg.Server.Port = port
			}

			if err := validate(out, cfg); err != nil {
				return err
			}

			log := logger.NewLogger(cfg.Logging)
			out.PrintHeader("gjallar dev")
			out.PrintStep("Listening on http://%s", cfg.Addr())
			app.NewDev(cfg, log).Run()

			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Override server.port")

	return cmd
}

// buildPreviewCommand creates the preview subcommand
func buildPreviewCommand(out *cli.Output, flags *rootFlags) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve the production build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(out, flags.config)
			if err != nil {
				return err
			}

			if port != 0 {
				cfg.Server.PreviewPort = port
			}

			if err := validate(out, cfg); err != nil {
				return err
			}

			log := logger.NewLogger(cfg.Logging)
			out.PrintHeader("gjallar preview")
			out.PrintStep("Listening on http://%s", cfg.PreviewAddr())
			app.NewPreview(cfg, log).Run()

			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Override server.previewPort")

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(out *cli.Output) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a new project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				out.PrintError("Failed to resolve project directory: %v", err)
				return err
			}

			starter, err := templates.Starter()
			if err != nil {
				out.PrintError("Failed to load project template: %v", err)
				return err
			}

			svc := usecase.NewInitService(fs.NewEmbedFileSystem(starter), fs.NewOSFileSystem(), out)
			if _, err := svc.InitProject(usecase.InitInput{ProjectDir: absDir, Name: name}); err != nil {
				out.PrintError("%v", err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (defaults to the directory name)")

	return cmd
}

// buildDoctorCommand creates the doctor subcommand
func buildDoctorCommand(out *cli.Output, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the config, entry points and proxy targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out.PrintHeader("gjallar doctor")

			cfg, err := config.Load(flags.config)
			if err != nil {
				out.PrintError("%v", err)
				return fmt.Errorf("%w: %w", errDoctorFailed, err)
			}

			out.PrintSuccess("Config %s is valid", flags.config)

			for _, e := range cfg.Entries {
				out.PrintStep("%s %s", e.Name, out.Gray(e.Source))
			}

			if _, err := os.Stat(cfg.ManifestPath()); err != nil {
				out.PrintWarning("No production build at %s, run gjallar build before preview", cfg.Build.OutDir)
			}

			client := &http.Client{Timeout: probeTimeout}
			for _, rule := range cfg.Server.Proxy {
				if err := probe(cmd.Context(), client, rule.Target); err != nil {
					out.PrintWarning("Proxy %s -> %s is unreachable: %v", rule.Prefix, rule.Target, err)
					continue
				}

				out.PrintSuccess("Proxy %s -> %s is reachable", rule.Prefix, rule.Target)
			}

			return nil
		},
	}
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(out *cli.Output) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out.Out(), "gjallar %s\n", config.Version)
		},
	}
}

func loadConfig(out *cli.Output, path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		out.PrintError("%v", err)
		return config.Config{}, err
	}

	return cfg, nil
}

func validate(out *cli.Output, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		out.PrintError("%v", err)
		return err
	}

	return nil
}

// probe treats any HTTP response as reachable; only transport errors fail
func probe(ctx context.Context, client *http.Client, target string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}

	return resp.Body.Close()
}
