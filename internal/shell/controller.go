package shell

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// RootRoute is the application entry route logout navigates to.
const RootRoute = "/"

var (
	ErrNoAnchor        = errors.New("menu anchor required")
	ErrMenuClosed      = errors.New("menu is not open")
	ErrItemUnavailable = errors.New("menu item not offered for role")
	ErrPersist         = errors.New("persist preference")
)

// PreferenceStore is the key-value store the filter preference lives in.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Navigator issues route changes on behalf of the shell.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

// Callbacks are the external flows reached from the menu. Nil fields are
// ignored.
type Callbacks struct {
	OnAddProductRequested func()
	OnAddAddressRequested func()
}

// Options configure a Controller. Every field is optional.
type Options struct {
	Role      Role
	Callbacks Callbacks
	Navigator Navigator
	Logger    *zap.Logger
	// OnPersistError receives every store failure. The controller keeps
	// running; the error is informational.
	OnPersistError func(error)
}

// Controller owns the shell's view state. It is driven from a single event
// loop and is not safe for concurrent use.
type Controller struct {
	ctx          context.Context
	store        PreferenceStore
	role         Role
	callbacks    Callbacks
	nav          Navigator
	log          *zap.Logger
	onPersistErr func(error)

	drawerOpen bool
	filter     Filter
	menu       MenuState
}

// New mounts a controller: the filter is restored from store (Default when
// absent or unreadable). Anything other than a stored canonical value is
// written back once so the store matches memory.
func New(ctx context.Context, store PreferenceStore, opts Options) *Controller {
	if ctx == nil {
		ctx = context.Background()
	}
	c := &Controller{
		ctx:          ctx,
		store:        store,
		callbacks:    opts.Callbacks,
		nav:          opts.Navigator,
		log:          opts.Logger,
		onPersistErr: opts.OnPersistError,
		filter:       FilterDefault,
		menu:         MenuClosed{},
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.SetRole(opts.Role)

	restored, stored := c.restoreFilter()
	if stored {
		// Already durable: no write-back, so a read-only store still restores.
		c.filter = restored
		return c
	}
	if err := c.commitFilter(restored); err != nil {
		c.log.Warn("filter not persisted at mount", zap.Error(err))
	}
	return c
}

// restoreFilter reads the persisted filter. stored reports whether the store
// already holds exactly the returned value.
func (c *Controller) restoreFilter() (f Filter, stored bool) {
	raw, ok, err := c.store.Get(c.ctx, FilterKey)
	if err != nil {
		c.reportPersistErr(fmt.Errorf("%w: read %s: %w", ErrPersist, FilterKey, err))
		return FilterDefault, false
	}
	if !ok {
		return FilterDefault, false
	}
	f, err = ParseFilter(raw)
	if err != nil {
		c.log.Warn("resetting unrecognised filter", zap.String("stored", raw))
		return FilterDefault, false
	}
	return f, raw == string(f)
}

// commitFilter is the single write path for the filter preference. The store
// is written before memory changes, so a failed write leaves both on the
// previous value.
func (c *Controller) commitFilter(f Filter) error {
	if err := c.store.Set(c.ctx, FilterKey, string(f)); err != nil {
		err = fmt.Errorf("%w: write %s=%s: %w", ErrPersist, FilterKey, f, err)
		c.reportPersistErr(err)
		return err
	}
	if c.filter != f {
		c.log.Debug("filter changed", zap.Stringer("from", c.filter), zap.Stringer("to", f))
	}
	c.filter = f
	return nil
}

func (c *Controller) reportPersistErr(err error) {
	c.log.Warn("preference store failure", zap.Error(err))
	if c.onPersistErr != nil {
		c.onPersistErr(err)
	}
}

// ToggleDrawer flips the mobile drawer.
func (c *Controller) ToggleDrawer() {
	c.drawerOpen = !c.drawerOpen
}

// DrawerOpen reports whether the narrow-viewport drawer is open.
func (c *Controller) DrawerOpen() bool { return c.drawerOpen }

// SetFilter selects f. Selecting the active filter again keeps it selected.
func (c *Controller) SetFilter(f Filter) error {
	if !f.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownFilter, string(f))
	}
	return c.commitFilter(f)
}

// Filter returns the active filter, which always matches the store.
func (c *Controller) Filter() Filter { return c.filter }

// OpenMenu anchors the menu to a. Opening an open menu moves the anchor.
func (c *Controller) OpenMenu(a Anchor) error {
	if a == "" {
		return ErrNoAnchor
	}
	c.menu = MenuOpen{Anchor: a}
	return nil
}

// CloseMenu is safe to call when the menu is already closed.
func (c *Controller) CloseMenu() {
	c.menu = MenuClosed{}
}

// Menu returns the menu state, MenuClosed or MenuOpen.
func (c *Controller) Menu() MenuState { return c.menu }

// MenuVisible reports whether an anchor is set.
func (c *Controller) MenuVisible() bool {
	_, ok := c.menu.(MenuOpen)
	return ok
}

// Anchor returns the element the menu is open against.
func (c *Controller) Anchor() (Anchor, bool) {
	open, ok := c.menu.(MenuOpen)
	return open.Anchor, ok
}

// SetRole replaces the caller-supplied role. A nil role is treated as an
// unrecognised one.
func (c *Controller) SetRole(r Role) {
	if r == nil {
		r = Other{}
	}
	c.role = r
}

// Role returns the current role.
func (c *Controller) Role() Role { return c.role }

// Items is recomputed from the current role on every call.
func (c *Controller) Items() []MenuItem {
	return MenuItems(c.role)
}

// Select closes the menu and then runs the item's action. Nothing runs if
// the menu was not open or the role does not offer the item.
func (c *Controller) Select(id ItemID) error {
	if !c.MenuVisible() {
		return ErrMenuClosed
	}
	items := c.Items()
	c.CloseMenu()
	if !hasItem(items, id) {
		return fmt.Errorf("%w: %s (role %s)", ErrItemUnavailable, id, c.role)
	}
	c.log.Info("menu item selected", zap.String("item", string(id)), zap.Stringer("role", c.role))
	switch id {
	case ItemAddProduct:
		if c.callbacks.OnAddProductRequested != nil {
			c.callbacks.OnAddProductRequested()
		}
	case ItemAddAddress:
		if c.callbacks.OnAddAddressRequested != nil {
			c.callbacks.OnAddAddressRequested()
		}
	case ItemLogout:
		c.Logout()
	}
	return nil
}

// Logout navigates to the root route. Session teardown belongs to whoever
// owns authentication.
func (c *Controller) Logout() {
	c.log.Info("logout", zap.String("route", RootRoute))
	if c.nav != nil {
		c.nav.Navigate(RootRoute)
	}
}
