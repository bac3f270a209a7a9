package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/pagelint/pagelint/internal/config"
	"github.com/pagelint/pagelint/internal/database"
	"github.com/pagelint/pagelint/internal/log"
	"github.com/pagelint/pagelint/internal/model"
	"github.com/pagelint/pagelint/internal/pipeline"
	"github.com/pagelint/pagelint/internal/report"
	"github.com/spf13/cobra"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [site]",
		Short: "Audit page content and site documents for publishing issues",
		Long: `Audit runs diagnostic checks over locally supplied documents and reports
findings grouped by severity.

Each check reads one input document, so only the checks whose inputs are
provided actually run:

  seo, social  --page      page HTML (title, description, social tags)
  robots       --robots    robots.txt content
  sitemap      --sitemap   sitemap.xml content
  headers      --headers   HTTP response header dump, one per line
  jsonld       --jsonld    JSON-LD snippet
  contrast     --fg/--bg   brand colors as hex values
  imagemeta    --image     image files checked for embedded metadata

The optional site argument selects a site section from the .pagelint
configuration file, which can supply brand colors and per-site check
exclusions. With --all, every site section in the configuration file is
audited against the same input documents instead. Results are saved to
a local database for later comparison with the compare command.

Examples:
  # Audit a page with its robots.txt and sitemap
  pagelint audit --page index.html --robots robots.txt --sitemap sitemap.xml example.com

  # Check brand color contrast only
  pagelint audit --fg "#333333" --bg "#f5f5f5"

  # Inspect uploaded images for embedded camera metadata
  pagelint audit --image hero.jpg --image team.png example.com

  # Audit every configured site with its own colors and exclusions
  pagelint audit --all --page index.html

  # Write the report as JSON to a file without saving history
  pagelint audit --page index.html --json -o report.json --no-save example.com`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAuditCmd,
	}

	// Input document flags
	cmd.Flags().StringP("page", "p", "", "Path to the page HTML file")
	cmd.Flags().String("robots", "", "Path to the robots.txt file")
	cmd.Flags().String("robots-path", "/", "URL path evaluated against robots.txt")
	cmd.Flags().String("sitemap", "", "Path to the sitemap.xml file")
	cmd.Flags().String("headers", "", "Path to a response header dump (one header per line)")
	cmd.Flags().String("jsonld", "", "Path to a JSON-LD snippet file")
	cmd.Flags().StringSlice("image", nil, "Image file to inspect for embedded metadata (repeatable)")

	// Contrast flags
	cmd.Flags().String("fg", "", "Foreground color as hex (e.g. #333333)")
	cmd.Flags().String("bg", "", "Background color as hex (e.g. #ffffff)")
	cmd.Flags().Bool("large-text", false, "Use the relaxed contrast thresholds for large text")

	// Check selection flags
	cmd.Flags().StringSlice("checks", nil, "Checks to run (default: all checks with inputs)")
	cmd.Flags().Bool("all", false, "Audit every site section in the configuration file")

	// Configuration flags
	cmd.Flags().StringP("config", "c", "", "Path to configuration file (default: .pagelint)")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false, "Output report in JSON format")
	cmd.Flags().BoolP("markdown", "m", false, "Output report in Markdown format")
	cmd.Flags().StringP("output", "o", "", "Write report to file instead of stdout")

	// Database flags
	cmd.Flags().Bool("no-save", false, "Do not save the audit result to the history database")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildAuditConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	if all && cfg.Site != "" {
		return errors.New("--all audits every configured site and cannot be combined with a site argument")
	}

	docs, fgFlag, bgFlag, err := readAuditDocuments(cmd)
	if err != nil {
		return err
	}

	// Cancel the audit on Ctrl+C or SIGTERM so a partial report can
	// still be written.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Warn("interrupt received, stopping audit")
			cancel()
		case <-ctx.Done():
		}
	}()

	if all {
		return runBatchAudit(ctx, cfg, logger, docs, fgFlag, bgFlag)
	}

	input, checks := applySiteConfig(docs, fgFlag, bgFlag, cfg, cfg.SiteConfig())
	if len(checks) == 0 {
		return config.ErrNoInput
	}

	p := pipeline.DefaultPipeline(input, checks,
		pipeline.WithLogger(logger),
		pipeline.WithContinueOnError(true),
	)

	auditReport := model.NewAuditReport(cfg.Site)
	if err := p.Execute(ctx, auditReport); err != nil {
		// A cancelled or failed audit still produces a report with the
		// findings collected so far.
		logger.Warn("audit did not complete", "error", err)
	}

	if err := outputReports(cfg, auditReport); err != nil {
		return err
	}

	if cfg.SaveToDB {
		saveReport(ctx, logger, cfg, auditReport)
	}
	return nil
}

// runBatchAudit audits every site section in the configuration file
// against the same input documents, with each site's colors and check
// exclusions applied.
func runBatchAudit(ctx context.Context, cfg *config.Config, logger *slog.Logger, docs *pipeline.Input, fgFlag, bgFlag string) error {
	sites := make([]string, 0, len(cfg.SiteConfigs.Sites))
	for site := range cfg.SiteConfigs.Sites {
		sites = append(sites, site)
	}
	if len(sites) == 0 {
		return fmt.Errorf("no sites configured: add site sections to the %s file to use --all", config.DefaultConfigFile)
	}
	slices.Sort(sites)

	// Each target gets its own Input copy, so the pipeline factory can
	// look up the per-site check list by that pointer.
	checksFor := make(map[*pipeline.Input][]string, len(sites))
	targets := make([]pipeline.Target, 0, len(sites))
	for _, site := range sites {
		input, checks := applySiteConfig(docs, fgFlag, bgFlag, cfg, cfg.SiteConfigs.GetSiteConfig(site))
		if len(checks) == 0 {
			logger.Warn("no checks with inputs for site, skipping", "site", site)
			continue
		}
		checksFor[input] = checks
		targets = append(targets, pipeline.Target{Site: site, Input: input})
	}
	if len(targets) == 0 {
		return config.ErrNoInput
	}

	bp := pipeline.NewBatchProcessor(func(input *pipeline.Input) *pipeline.Pipeline {
		return pipeline.DefaultPipeline(input, checksFor[input],
			pipeline.WithLogger(logger),
			pipeline.WithContinueOnError(true),
		)
	}, pipeline.WithBatchLogger(logger))

	reports, err := bp.ProcessBatch(ctx, targets)
	if err != nil {
		logger.Warn("batch audit did not complete", "error", err)
	}

	// Targets cancelled before they ran leave nil slots behind.
	done := make([]*model.AuditReport, 0, len(reports))
	for _, r := range reports {
		if r != nil {
			done = append(done, r)
		}
	}

	if err := outputReports(cfg, done...); err != nil {
		return err
	}

	if cfg.SaveToDB {
		for _, r := range done {
			saveReport(ctx, logger, cfg, r)
		}
	}
	return nil
}

// buildAuditConfig assembles the run configuration from flags, arguments,
// and the configuration file.
func buildAuditConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if len(args) > 0 {
		cfg.Site = args[0]
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}
	cfg.Verbose = verbose

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = configPath

	checks, err := cmd.Flags().GetStringSlice("checks")
	if err != nil {
		return nil, err
	}
	if len(checks) > 0 {
		cfg.Checks = checks
	}

	jsonReport, err := cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	cfg.JSONReport = jsonReport

	markdownReport, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	cfg.MarkdownReport = markdownReport

	reportFile, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	cfg.ReportFile = reportFile

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave
	cfg.DBDir = config.XDGDataDir()

	largeText, err := cmd.Flags().GetBool("large-text")
	if err != nil {
		return nil, err
	}
	cfg.LargeText = largeText

	if err := loadSiteConfigs(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSiteConfigs loads the .pagelint file into cfg. An explicitly
// specified path must exist; otherwise a missing file just means no
// site-specific configuration.
func loadSiteConfigs(cfg *config.Config) error {
	foundPath := config.FindConfigFile(cfg.ConfigFilePath)
	if foundPath == "" {
		if cfg.ConfigFilePath != "" {
			return fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
		}
		cfg.SiteConfigs = &config.File{Sites: make(map[string]config.SiteConfig)}
		return nil
	}

	siteConfigs, err := config.LoadConfigFile(foundPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration file: %w", err)
	}
	cfg.SiteConfigs = siteConfigs
	return nil
}

// readAuditDocuments reads the input documents named by flags. The raw
// fg/bg flag values are returned alongside so per-site defaults can be
// resolved later without losing track of which colors were explicit.
func readAuditDocuments(cmd *cobra.Command) (*pipeline.Input, string, string, error) {
	input := &pipeline.Input{}

	pagePath, err := cmd.Flags().GetString("page")
	if err != nil {
		return nil, "", "", err
	}
	if input.Page, err = readInputFile(pagePath); err != nil {
		return nil, "", "", err
	}

	robotsPath, err := cmd.Flags().GetString("robots")
	if err != nil {
		return nil, "", "", err
	}
	if input.RobotsTxt, err = readInputFile(robotsPath); err != nil {
		return nil, "", "", err
	}

	if input.RobotsPath, err = cmd.Flags().GetString("robots-path"); err != nil {
		return nil, "", "", err
	}

	sitemapPath, err := cmd.Flags().GetString("sitemap")
	if err != nil {
		return nil, "", "", err
	}
	if input.Sitemap, err = readInputFile(sitemapPath); err != nil {
		return nil, "", "", err
	}

	headersPath, err := cmd.Flags().GetString("headers")
	if err != nil {
		return nil, "", "", err
	}
	if input.Headers, err = readInputFile(headersPath); err != nil {
		return nil, "", "", err
	}

	jsonldPath, err := cmd.Flags().GetString("jsonld")
	if err != nil {
		return nil, "", "", err
	}
	if input.JSONLD, err = readInputFile(jsonldPath); err != nil {
		return nil, "", "", err
	}

	imagePaths, err := cmd.Flags().GetStringSlice("image")
	if err != nil {
		return nil, "", "", err
	}
	if len(imagePaths) > 0 {
		input.Images = make(map[string][]byte, len(imagePaths))
		for _, path := range imagePaths {
			data, err := os.ReadFile(path) //nolint:gosec // user-supplied input path
			if err != nil {
				return nil, "", "", fmt.Errorf("failed to read image file: %w", err)
			}
			input.Images[filepath.Base(path)] = data
		}
	}

	fg, err := cmd.Flags().GetString("fg")
	if err != nil {
		return nil, "", "", err
	}
	bg, err := cmd.Flags().GetString("bg")
	if err != nil {
		return nil, "", "", err
	}
	return input, fg, bg, nil
}

// applySiteConfig resolves the per-site colors and the effective check
// list over the shared documents. Checks without inputs are dropped, as
// are checks the site configuration excludes. The returned Input is a
// copy, so batch targets never share mutable state.
func applySiteConfig(docs *pipeline.Input, fgFlag, bgFlag string, cfg *config.Config, siteCfg config.SiteConfig) (*pipeline.Input, []string) {
	input := *docs

	// Colors: flags win over the site configuration, which wins over
	// the built-in defaults.
	contrastRequested := fgFlag != "" || bgFlag != "" || siteCfg.Foreground != "" || siteCfg.Background != ""
	input.Foreground = firstNonEmpty(fgFlag, siteCfg.Foreground, config.DefaultForeground)
	input.Background = firstNonEmpty(bgFlag, siteCfg.Background, config.DefaultBackground)
	input.LargeText = cfg.LargeText || siteCfg.LargeText

	hasInput := map[string]bool{
		"seo":       input.Page != "",
		"social":    input.Page != "",
		"robots":    input.RobotsTxt != "",
		"sitemap":   input.Sitemap != "",
		"headers":   input.Headers != "",
		"jsonld":    input.JSONLD != "",
		"contrast":  contrastRequested,
		"imagemeta": len(input.Images) > 0,
	}

	var checks []string
	for _, check := range cfg.Checks {
		if !hasInput[check] {
			continue
		}
		if slices.Contains(siteCfg.SkipChecks, check) {
			continue
		}
		checks = append(checks, check)
	}
	return &input, checks
}

// readInputFile reads the file at path, or returns an empty string when
// no path was given.
func readInputFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied input path
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// setupLogger creates the default logger with sensitive value masking.
func setupLogger(verbose bool) *slog.Logger {
	return log.NewSecureLogger(os.Stderr, verbose)
}

// outputReports writes the audit reports in the configured format to
// stdout or the configured report file, one after another through the
// same writer.
func outputReports(cfg *config.Config, reports ...*model.AuditReport) error {
	out := os.Stdout
	if cfg.ReportFile != "" {
		if dir := filepath.Dir(cfg.ReportFile); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // user-supplied output path
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewFullJSONWriter(out, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(out)
	default:
		writer = report.NewSimpleWriter(out, report.WithVerbose(cfg.Verbose))
	}

	for _, auditReport := range reports {
		if _, err := writer.Write(auditReport); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// saveReport stores the audit result in the history database. Save
// failures are logged but do not fail the audit.
func saveReport(ctx context.Context, logger *slog.Logger, cfg *config.Config, auditReport *model.AuditReport) {
	// History is keyed by site, so anonymous runs are not recorded.
	if auditReport.Site == "" {
		logger.Debug("no site name given, skipping history save")
		return
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		logger.Warn("failed to open history database", "error", err)
		return
	}
	defer db.Close()

	if err := db.SaveAuditReport(ctx, auditReport); err != nil {
		logger.Warn("failed to save audit report", "error", err)
		return
	}
	logger.Debug("audit report saved", "site", auditReport.Site)
}
