package cli

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"

	"clock-watch/internal/api"
	"clock-watch/internal/config"
	"clock-watch/internal/display"
	"clock-watch/internal/validation"
)

// App represents the main CLI application
type App struct {
	config   *config.Config
	renderer *display.Renderer

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// injected API for tests; production builds one per command run
	injected api.API

	warnColor *color.Color
}

// NewApp creates a new CLI application instance
func NewApp(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		warnColor: color.New(color.FgYellow),
	}
}

// NewAppWithAPI creates a CLI application with an injected API instance,
// used by tests to avoid touching the filesystem.
func NewAppWithAPI(cfg *config.Config, apiInstance api.API) *App {
	app := NewApp(cfg)
	app.injected = apiInstance
	return app
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	// The renderer is built after flag parsing so --color takes effect;
	// see RootCommand's PersistentPreRunE.
	root := NewRootCommand(a)
	return root.Execute(ctx, args)
}

// getAPI returns the API to drive and a cleanup function releasing its
// resources. Flag overrides must already be applied to the config.
func (a *App) getAPI() (api.API, func(), error) {
	if a.injected != nil {
		a.injected.SetWarningSink(a.printWarning)
		return a.injected, func() {}, nil
	}

	repo, err := config.CreateArchive(a.config)
	if err != nil {
		return nil, nil, err
	}

	apiInstance := api.New(a.config, repo)
	apiInstance.SetWarningSink(a.printWarning)

	cleanup := func() {
		if repo != nil {
			repo.Close()
		}
	}
	return apiInstance, cleanup, nil
}

// getRenderer lazily builds the renderer from the effective configuration.
func (a *App) getRenderer() *display.Renderer {
	if a.renderer == nil {
		a.renderer = display.NewRenderer(a.config.Display.Color, a.config.Display.TimeFormat)
	}
	return a.renderer
}

// printWarning surfaces one warning inline on stderr, without
// interrupting the live display on stdout.
func (a *App) printWarning(w validation.Warning) {
	if a.config.Display.Color {
		a.warnColor.Fprintf(a.errOut, "warning: %s\n", w.String())
		return
	}
	io.WriteString(a.errOut, "warning: "+w.String()+"\n")
}
