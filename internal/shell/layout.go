package shell

// NavVisible reports whether the navigation panel is drawn at the given
// viewport width. At or above breakpoint the panel is permanent; below it the
// drawer state decides.
func NavVisible(width, breakpoint int, drawerOpen bool) bool {
	if width >= breakpoint {
		return true
	}
	return drawerOpen
}
