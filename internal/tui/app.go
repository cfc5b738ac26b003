package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/eshop/internal/shell"
)

const (
	// RouteEntry is the signed-out landing screen.
	RouteEntry = shell.RootRoute
	RouteShop  = "/shop"

	anchorMore shell.Anchor = "more-button"
)

// Options configure the shell. Zero values fall back to the defaults in
// withDefaults.
type Options struct {
	Role        shell.Role
	Title       string
	Breakpoint  int
	DrawerWidth int
	Callbacks   shell.Callbacks
	Logger      *zap.Logger
	// Output hosts the rendered shell, including the drawer overlay. Nil
	// means the terminal's stdout.
	Output io.Writer
}

func withDefaults(o Options) Options {
	if o.Title == "" {
		o.Title = "Eshop Upgrad"
	}
	if o.Breakpoint <= 0 {
		o.Breakpoint = 80
	}
	if o.DrawerWidth <= 0 {
		o.DrawerWidth = 26
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// RoleMsg re-supplies the signed-in role while the shell is running.
type RoleMsg struct {
	Role shell.Role
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

// App is the Bubble Tea model for the storefront shell.
type App struct {
	ctx    context.Context
	opts   Options
	log    *zap.Logger
	ctrl   *shell.Controller
	keys   *KeyRegistry
	search textinput.Model

	route      string
	width      int
	height     int
	navCursor  int
	menuCursor int
	status     string
	statusKind statusKind
}

// New mounts the shell controller against store and returns the model.
func New(ctx context.Context, store shell.PreferenceStore, opts Options) *App {
	opts = withDefaults(opts)
	a := &App{
		ctx:   ctx,
		opts:  opts,
		log:   opts.Logger,
		keys:  NewKeyRegistry(),
		route: RouteShop,
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search…"
	search.CharLimit = 64
	search.Width = 16
	a.search = search

	a.ctrl = shell.New(ctx, store, shell.Options{
		Role: opts.Role,
		Callbacks: shell.Callbacks{
			OnAddProductRequested: a.addProductRequested,
			OnAddAddressRequested: a.addAddressRequested,
		},
		Navigator:      shell.NavigatorFunc(a.navigate),
		Logger:         a.log,
		OnPersistError: a.persistFailed,
	})
	a.navCursor = filterIndex(a.ctrl.Filter())
	return a
}

// Controller exposes the view-state controller driving this model.
func (a *App) Controller() *shell.Controller { return a.ctrl }

// Route returns the current route.
func (a *App) Route() string { return a.route }

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.search.Width = searchWidth(m.Width)
		return a, nil
	case RoleMsg:
		a.ctrl.SetRole(m.Role)
		a.clampMenuCursor()
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	if a.search.Focused() {
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) wide() bool {
	return a.width >= a.opts.Breakpoint
}

func (a *App) navVisible() bool {
	return shell.NavVisible(a.width, a.opts.Breakpoint, a.ctrl.DrawerOpen())
}

// drawerOverlay reports whether the temporary drawer is covering the main
// area on a narrow viewport.
func (a *App) drawerOverlay() bool {
	return !a.wide() && a.ctrl.DrawerOpen()
}

func (a *App) scope() string {
	switch {
	case a.route == RouteEntry:
		return scopeEntry
	case a.search.Focused():
		return scopeSearch
	case a.ctrl.MenuVisible():
		return scopeMenu
	case a.drawerOverlay():
		return scopeDrawer
	default:
		return scopeShell
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := msg.String()
	scope := a.scope()

	if scope == scopeSearch {
		// Typing must not trigger global bindings.
		b := a.keys.lookupInScope(normalizeKeyName(keyName), scopeSearch)
		if b == nil {
			var cmd tea.Cmd
			a.search, cmd = a.search.Update(msg)
			return a, cmd
		}
		return a.runAction(b.Action, keyName, scope)
	}

	b := a.keys.Lookup(keyName, scope)
	if b == nil {
		return a, nil
	}
	return a.runAction(b.Action, keyName, scope)
}

func (a *App) runAction(action Action, keyName, scope string) (tea.Model, tea.Cmd) {
	switch action {
	case actionQuit:
		return a, tea.Quit
	case actionSignIn:
		a.route = RouteShop
		a.setStatus("signed in as "+a.ctrl.Role().String(), statusInfo)
	case actionToggleDrawer:
		// The toggle button only exists below the breakpoint.
		if !a.wide() {
			a.ctrl.ToggleDrawer()
		}
	case actionClose:
		switch scope {
		case scopeMenu:
			a.ctrl.CloseMenu()
		case scopeDrawer:
			a.ctrl.ToggleDrawer()
		case scopeSearch:
			a.search.Blur()
			a.search.Reset()
		}
	case actionNavigate:
		delta := navDelta(keyName)
		if scope == scopeMenu {
			a.menuCursor = wrapIndex(a.menuCursor+delta, len(a.ctrl.Items()))
		} else if a.navVisible() {
			a.navCursor = wrapIndex(a.navCursor+delta, len(shell.Filters()))
		}
	case actionSelect:
		if scope == scopeMenu {
			a.selectMenuItem()
		} else if a.navVisible() {
			a.applyFilter(shell.Filters()[a.navCursor])
		}
	case actionQuickFilter:
		idx := int(keyName[0] - '1')
		if idx >= 0 && idx < len(shell.Filters()) {
			a.navCursor = idx
			a.applyFilter(shell.Filters()[idx])
		}
	case actionOpenMenu:
		if err := a.ctrl.OpenMenu(anchorMore); err != nil {
			a.setStatus(err.Error(), statusError)
			return a, nil
		}
		a.menuCursor = 0
	case actionSearch:
		return a, a.search.Focus()
	case actionSubmit:
		query := strings.TrimSpace(a.search.Value())
		a.search.Blur()
		if query != "" {
			a.log.Info("search submitted", zap.String("query", query))
			a.setStatus(fmt.Sprintf("searching for %q", query), statusInfo)
		}
	}
	return a, nil
}

func (a *App) applyFilter(f shell.Filter) {
	if err := a.ctrl.SetFilter(f); err != nil {
		// persistFailed has already reported store errors.
		if !errors.Is(err, shell.ErrPersist) {
			a.setStatus(err.Error(), statusError)
		}
		a.navCursor = filterIndex(a.ctrl.Filter())
		return
	}
	a.setStatus("sorted by "+f.Label(), statusSuccess)
}

func (a *App) selectMenuItem() {
	items := a.ctrl.Items()
	if a.menuCursor < 0 || a.menuCursor >= len(items) {
		a.ctrl.CloseMenu()
		return
	}
	if err := a.ctrl.Select(items[a.menuCursor].ID); err != nil {
		a.setStatus(err.Error(), statusError)
	}
}

func (a *App) clampMenuCursor() {
	if n := len(a.ctrl.Items()); a.menuCursor >= n {
		a.menuCursor = n - 1
	}
	if a.menuCursor < 0 {
		a.menuCursor = 0
	}
}

func (a *App) addProductRequested() {
	a.setStatus("add product requested", statusInfo)
	if cb := a.opts.Callbacks.OnAddProductRequested; cb != nil {
		cb()
	}
}

func (a *App) addAddressRequested() {
	a.setStatus("add address requested", statusInfo)
	if cb := a.opts.Callbacks.OnAddAddressRequested; cb != nil {
		cb()
	}
}

func (a *App) navigate(route string) {
	a.route = route
	a.search.Blur()
	if route == RouteEntry {
		a.setStatus("signed out", statusInfo)
	}
}

func (a *App) persistFailed(err error) {
	a.setStatus("preference not saved: "+err.Error(), statusWarning)
}

func (a *App) setStatus(text string, kind statusKind) {
	a.status = text
	a.statusKind = kind
}

// Run starts the Bubble Tea program for app and blocks until it exits.
func Run(ctx context.Context, app *App) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if app.opts.Output != nil {
		opts = append(opts, tea.WithOutput(app.opts.Output))
	}
	_, err := tea.NewProgram(app, opts...).Run()
	return err
}

func filterIndex(f shell.Filter) int {
	for i, candidate := range shell.Filters() {
		if candidate == f {
			return i
		}
	}
	return 0
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func searchWidth(total int) int {
	switch {
	case total >= 100:
		return 24
	case total >= 60:
		return 16
	default:
		return 8
	}
}
