package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/eshop/internal/prefs"
	"github.com/jask/eshop/internal/shell"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func applyMsg(t *testing.T, a *App, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := a.Update(msg)
	got, ok := next.(*App)
	require.True(t, ok, "Update returned %T", next)
	require.Same(t, a, got)
	return cmd
}

func press(t *testing.T, a *App, keys ...string) {
	t.Helper()
	for _, k := range keys {
		applyMsg(t, a, keyMsg(k))
	}
}

func newTestApp(t *testing.T, role shell.Role, width int) (*App, *prefs.MemoryStore) {
	t.Helper()
	store := prefs.NewMemoryStore()
	a := New(context.Background(), store, Options{Role: role, Breakpoint: 80})
	applyMsg(t, a, tea.WindowSizeMsg{Width: width, Height: 24})
	return a, store
}

func storedFilter(t *testing.T, store shell.PreferenceStore) string {
	t.Helper()
	v, ok, err := store.Get(context.Background(), shell.FilterKey)
	require.NoError(t, err)
	require.True(t, ok)
	return v
}

type failingStore struct {
	*prefs.MemoryStore
	failSet bool
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.failSet {
		return errors.New("quota exceeded")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func TestWideViewportAlwaysShowsNavigation(t *testing.T) {
	a, _ := newTestApp(t, shell.User{}, 120)

	require.False(t, a.ctrl.DrawerOpen())
	view := a.View()
	require.Contains(t, view, "Filter")
	require.Contains(t, view, "Low to High")

	press(t, a, "m")
	require.False(t, a.ctrl.DrawerOpen(), "toggle is hidden on wide viewports")
	view = a.View()
	require.NotContains(t, view, toggleButton)
	require.Contains(t, view, "Low to High")
}

func TestNarrowViewportDrawerToggle(t *testing.T) {
	a, _ := newTestApp(t, shell.User{}, 60)

	require.NotContains(t, a.View(), "Low to High")
	require.Equal(t, scopeShell, a.scope())

	press(t, a, "m")
	require.True(t, a.ctrl.DrawerOpen())
	require.Equal(t, scopeDrawer, a.scope())
	require.Contains(t, a.View(), "Low to High")

	press(t, a, "esc")
	require.False(t, a.ctrl.DrawerOpen())
	require.NotContains(t, a.View(), "Low to High")
}

func TestResizeAcrossBreakpoint(t *testing.T) {
	a, _ := newTestApp(t, shell.User{}, 60)
	press(t, a, "m")
	require.Equal(t, scopeDrawer, a.scope())

	applyMsg(t, a, tea.WindowSizeMsg{Width: 100, Height: 24})
	require.Equal(t, scopeShell, a.scope(), "wide layout ignores the drawer state")
	require.True(t, a.navVisible())
}

func TestFilterSelectionPersists(t *testing.T) {
	a, store := newTestApp(t, shell.User{}, 120)
	require.Equal(t, "default", storedFilter(t, store))

	press(t, a, "j", "enter")
	require.Equal(t, shell.FilterLowToHigh, a.ctrl.Filter())
	require.Equal(t, "low-to-high", storedFilter(t, store))
	require.Contains(t, a.status, "sorted by Low to High")

	press(t, a, "enter")
	require.Equal(t, shell.FilterLowToHigh, a.ctrl.Filter(), "reselecting keeps the value")

	press(t, a, "4")
	require.Equal(t, shell.FilterNewest, a.ctrl.Filter())
	require.Equal(t, "newest", storedFilter(t, store))
	require.Equal(t, 3, a.navCursor)
}

func TestFilterRestoredOnRemount(t *testing.T) {
	a, store := newTestApp(t, shell.User{}, 120)
	press(t, a, "4")

	b := New(context.Background(), store, Options{Role: shell.User{}})
	require.Equal(t, shell.FilterNewest, b.ctrl.Filter())
	require.Equal(t, 3, b.navCursor)
}

func TestPersistFailureShowsWarning(t *testing.T) {
	store := &failingStore{MemoryStore: prefs.NewMemoryStore()}
	a := New(context.Background(), store, Options{Role: shell.User{}})
	applyMsg(t, a, tea.WindowSizeMsg{Width: 120, Height: 24})

	store.failSet = true
	press(t, a, "3")
	require.Equal(t, shell.FilterDefault, a.ctrl.Filter())
	require.Equal(t, statusWarning, a.statusKind)
	require.Contains(t, a.status, "preference not saved")
	require.Equal(t, 0, a.navCursor)
}

func TestAdminMenuAddProduct(t *testing.T) {
	store := prefs.NewMemoryStore()
	calls := 0
	var a *App
	menuOpenAtCall := true
	a = New(context.Background(), store, Options{
		Role: shell.Admin{},
		Callbacks: shell.Callbacks{OnAddProductRequested: func() {
			calls++
			menuOpenAtCall = a.ctrl.MenuVisible()
		}},
	})
	applyMsg(t, a, tea.WindowSizeMsg{Width: 120, Height: 24})

	press(t, a, ".")
	require.True(t, a.ctrl.MenuVisible())
	require.Equal(t, scopeMenu, a.scope())
	view := a.View()
	require.Contains(t, view, "Add Product")
	require.Contains(t, view, "Logout")
	require.NotContains(t, view, "Add Address")

	press(t, a, "enter")
	require.Equal(t, 1, calls)
	require.False(t, menuOpenAtCall)
	require.False(t, a.ctrl.MenuVisible())
	require.Equal(t, "add product requested", a.status)
}

func TestUserMenuAddAddress(t *testing.T) {
	calls := 0
	a := New(context.Background(), prefs.NewMemoryStore(), Options{
		Role:      shell.User{},
		Callbacks: shell.Callbacks{OnAddAddressRequested: func() { calls++ }},
	})
	applyMsg(t, a, tea.WindowSizeMsg{Width: 120, Height: 24})

	press(t, a, ".")
	require.Contains(t, a.View(), "Add Address")
	press(t, a, "enter")
	require.Equal(t, 1, calls)
}

func TestGuestMenuLogoutAndSignIn(t *testing.T) {
	a, _ := newTestApp(t, shell.ParseRole("guest"), 120)

	press(t, a, ".")
	view := a.View()
	require.Contains(t, view, "Logout")
	require.NotContains(t, view, "Add Product")
	require.NotContains(t, view, "Add Address")

	press(t, a, "enter")
	require.False(t, a.ctrl.MenuVisible())
	require.Equal(t, RouteEntry, a.Route())
	require.Equal(t, scopeEntry, a.scope())
	require.Contains(t, a.View(), "signed out")

	press(t, a, "enter")
	require.Equal(t, RouteShop, a.Route())
}

func TestMenuNavigationWrapsAndCloses(t *testing.T) {
	a, _ := newTestApp(t, shell.Admin{}, 120)

	press(t, a, ".", "j")
	require.Equal(t, 1, a.menuCursor)
	press(t, a, "j")
	require.Equal(t, 0, a.menuCursor)
	press(t, a, "k")
	require.Equal(t, 1, a.menuCursor)

	press(t, a, "esc")
	require.False(t, a.ctrl.MenuVisible())
	require.Equal(t, RouteShop, a.Route())

	press(t, a, ".")
	require.Equal(t, 0, a.menuCursor, "reopening resets the cursor")
	press(t, a, ".")
	require.False(t, a.ctrl.MenuVisible())
}

func TestRoleMsgRecomputesItems(t *testing.T) {
	a, _ := newTestApp(t, shell.Admin{}, 120)
	press(t, a, ".", "j")
	require.Equal(t, 1, a.menuCursor)

	applyMsg(t, a, RoleMsg{Role: shell.ParseRole("guest")})
	require.Len(t, a.ctrl.Items(), 1)
	require.Equal(t, 0, a.menuCursor)
	require.NotContains(t, a.View(), "Add Product")
}

func TestSearchCapturesTyping(t *testing.T) {
	a, _ := newTestApp(t, shell.User{}, 120)

	press(t, a, "/")
	require.Equal(t, scopeSearch, a.scope())

	press(t, a, "q", "u", "i")
	require.Equal(t, scopeSearch, a.scope(), "typing q in search must not leave it")
	require.Equal(t, "qui", a.search.Value())

	press(t, a, "enter")
	require.Equal(t, scopeShell, a.scope())
	require.True(t, strings.Contains(a.status, `"qui"`), "status = %q", a.status)
}

func TestQuit(t *testing.T) {
	a, _ := newTestApp(t, shell.User{}, 120)
	cmd := applyMsg(t, a, keyMsg("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}

func TestViewFitsWindow(t *testing.T) {
	a, _ := newTestApp(t, shell.Admin{}, 100)
	press(t, a, ".")
	lines := strings.Split(a.View(), "\n")
	require.Len(t, lines, 24)
}
