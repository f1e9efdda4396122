package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	publish "github.com/goliatone/go-publish"
	staticcmd "github.com/goliatone/go-publish/internal/commands/static"
	command "github.com/goliatone/go-command"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const defaultConfigFile = "publish.yaml"

type handlerSet struct {
	build command.Commander[staticcmd.BuildSiteCommand]
	clean command.Commander[staticcmd.CleanSiteCommand]
}

type moduleResources struct {
	handlers handlerSet
	articles func(ctx context.Context) ([]*publish.Article, error)
}

var moduleBuilder = buildModule

func buildModule(cfg publish.Config) (*moduleResources, error) {
	module, err := publish.New(cfg)
	if err != nil {
		return nil, err
	}
	handlers := module.Container().StaticHandlers()
	return &moduleResources{
		handlers: handlerSet{
			build: handlers.Build,
			clean: handlers.Clean,
		},
		articles: module.Articles,
	}, nil
}

type cliFlags struct {
	config   string
	articles string
	output   string
	baseURL  string
	drafts   bool
	dryRun   bool
}

func run(args []string, stdout io.Writer) error {
	root := newRootCommand(stdout)
	root.SetArgs(args)
	return root.Execute()
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	flags := &cliFlags{}

	root := &cobra.Command{
		Use:           "publish",
		Short:         "Build a static site from dated, tagged Markdown articles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.PersistentFlags().StringVar(&flags.config, "config", defaultConfigFile, "path to the YAML config file")
	root.PersistentFlags().StringVar(&flags.articles, "articles", "", "articles directory, relative to the project root")
	root.PersistentFlags().StringVar(&flags.output, "out", "", "output directory")
	root.PersistentFlags().BoolVar(&flags.drafts, "drafts", false, "include articles marked as drafts")

	build := &cobra.Command{
		Use:   "build",
		Short: "Render every article, the index and the static assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, flags)
		},
	}
	build.Flags().BoolVar(&flags.dryRun, "dry-run", false, "render in memory and list the outputs without writing")
	build.Flags().StringVar(&flags.baseURL, "base-url", "", "absolute site URL used by the feed and sitemap")

	clean := &cobra.Command{
		Use:   "clean",
		Short: "Remove the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClean(cmd, flags)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the articles that would be published",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "publish %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}

	root.AddCommand(build, clean, list, versionCmd)
	return root
}

func loadConfig(cmd *cobra.Command, flags *cliFlags) (publish.Config, error) {
	if cmd.Flags().Changed("config") {
		if _, err := os.Stat(flags.config); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return publish.Config{}, fmt.Errorf("config file %s not found", flags.config)
			}
			return publish.Config{}, err
		}
	}

	cfg, err := publish.LoadConfig(flags.config)
	if err != nil {
		return publish.Config{}, err
	}
	if value := strings.TrimSpace(flags.articles); value != "" {
		cfg.Articles = value
	}
	if value := strings.TrimSpace(flags.output); value != "" {
		cfg.Output = value
	}
	if value := strings.TrimSpace(flags.baseURL); value != "" {
		cfg.Site.BaseURL = value
	}
	if flags.drafts {
		cfg.IncludeDrafts = true
	}
	return cfg, nil
}

func loadModule(cmd *cobra.Command, flags *cliFlags) (*moduleResources, error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	resources, err := moduleBuilder(cfg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return resources, nil
}

func runBuild(cmd *cobra.Command, flags *cliFlags) error {
	resources, err := loadModule(cmd, flags)
	if err != nil {
		return err
	}
	if resources.handlers.build == nil {
		return errors.New("build handler not configured")
	}

	out := cmd.OutOrStdout()
	msg := staticcmd.BuildSiteCommand{
		DryRun: flags.dryRun,
		ResultCallback: func(env staticcmd.ResultEnvelope) {
			printBuildResult(out, env.Result)
		},
	}
	return resources.handlers.build.Execute(cmd.Context(), msg)
}

func runClean(cmd *cobra.Command, flags *cliFlags) error {
	resources, err := loadModule(cmd, flags)
	if err != nil {
		return err
	}
	if resources.handlers.clean == nil {
		return errors.New("clean handler not configured")
	}
	if err := resources.handlers.clean.Execute(cmd.Context(), staticcmd.CleanSiteCommand{}); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "output removed")
	return nil
}

func runList(cmd *cobra.Command, flags *cliFlags) error {
	resources, err := loadModule(cmd, flags)
	if err != nil {
		return err
	}
	if resources.articles == nil {
		return errors.New("article listing not configured")
	}
	list, err := resources.articles(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, article := range list {
		fmt.Fprintf(out, "%s  %-24s  %s  [%s]\n",
			article.Published.Format("2006-01-02"),
			article.Name,
			article.Title(),
			strings.Join(article.Tags, ", "),
		)
	}
	return nil
}

func printBuildResult(w io.Writer, result *publish.BuildResult) {
	if result == nil {
		return
	}
	if result.DryRun {
		for _, output := range result.Outputs {
			fmt.Fprintf(w, "%-8s %8d  %s\n", output.Category, output.Size, output.Path)
		}
	}
	verb := "built"
	if result.DryRun {
		verb = "would build"
	}
	fmt.Fprintf(w, "%s %d articles, %d pages, %d assets in %s\n",
		verb, result.Articles, result.Pages, result.Assets, result.Duration.Round(time.Millisecond))
}
