package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Bluscream/acedocs"
	"github.com/Bluscream/acedocs/build"
	"github.com/Bluscream/acedocs/fs"
	"github.com/Bluscream/acedocs/goquery"
	"github.com/Bluscream/acedocs/html"
	"github.com/Bluscream/acedocs/htmltomarkdown"
	acehttp "github.com/Bluscream/acedocs/http"
	aceslog "github.com/Bluscream/acedocs/slog"
	"github.com/Bluscream/acedocs/sqlite"
	aceyaml "github.com/Bluscream/acedocs/yaml"
	"github.com/Bluscream/acedocs/zip"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Directory holding the extracted documentation. Set before calling Run().
	DataDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		DataDir: defaultDataDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("acedocs"),
		kong.Description("Index AutoHotkey documentation and render entries for chat."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'acedocs --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	deps.Renderer = html.NewRenderer()
	if logger != nil {
		deps.Renderer = aceslog.NewLoggingRenderer(deps.Renderer, logger)
	}

	// Rendering a local file needs neither the plan nor the index.
	if cmd == "render" {
		return kongCtx.Run(deps)
	}

	if deps.Plan, err = loadPlan(cli.Plan); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", acedocs.ErrorMessage(err))
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ACEDOCS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.Records = sqlite.NewRecordService(m.DB)
	if logger != nil {
		deps.Records = aceslog.NewLoggingRecordService(deps.Records, logger)
	}

	if cmd == "build" {
		deps.Builder = m.newBuilder(deps, logger)
		defer deps.Builder.Fetcher.Close()
	}

	return kongCtx.Run(deps)
}

// newBuilder wires the build pipeline for the loaded plan.
func (m *Main) newBuilder(deps *Dependencies, logger *slog.Logger) *build.Builder {
	workspace := fs.NewWorkspace(m.DataDir, "docs")
	pages := fs.NewDir(filepath.Join(workspace.Dir(), filepath.FromSlash(deps.Plan.Folder)), deps.Plan.DocsURL)

	var fetcher acedocs.Fetcher = acehttp.NewFetcher(acehttp.WithUserAgent("acedocs"), acehttp.WithRateLimit(1))
	var parsers acedocs.ParserFactory = goquery.NewFactory(htmltomarkdown.NewConverter(), pages)
	var logf build.LogFunc
	if logger != nil {
		fetcher = aceslog.NewLoggingFetcher(fetcher, logger)
		parsers = aceslog.NewLoggingParserFactory(parsers, logger)
		logf = func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		}
	}

	return &build.Builder{
		Fetcher:   fetcher,
		Extractor: zip.NewExtractor(),
		Workspace: workspace,
		Pages:     pages,
		Parsers:   parsers,
		Records:   deps.Records,
		Plan:      deps.Plan,
		Logf:      logf,
	}
}

func loadPlan(path string) (*acedocs.Plan, error) {
	if path == "" {
		return aceyaml.DefaultPlan()
	}
	return aceyaml.LoadPlan(path)
}

func defaultDBPath() string {
	if path := os.Getenv("ACEDOCS_DB"); path != "" {
		return path
	}
	return filepath.Join(defaultDataDir(), "acedocs.db")
}

func defaultDataDir() string {
	if dir := os.Getenv("ACEDOCS_DATA"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".acedocs"
	}
	dir := filepath.Join(home, ".acedocs")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
