package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/eshop/internal/shell"
)

const (
	menuWidth     = 20
	chromeHeight  = 3 // top bar, status line, footer
	toggleButton  = "≡"
	moreButton    = "⋮"
	selectedGlyph = "›"
)

func (a *App) View() string {
	if a.route == RouteEntry {
		return a.renderEntry()
	}
	view := a.placeWithChrome(a.renderTopBar(), a.renderBody(), a.renderStatus(), a.renderFooter(a.footerBindings()))
	if anchor, ok := a.ctrl.Anchor(); ok {
		view = a.overlayMenu(view, anchor)
	}
	return view
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func (a *App) renderTopBar() string {
	var left []string
	if !a.wide() {
		style := topBarButtonStyle
		if a.ctrl.DrawerOpen() {
			style = topBarActiveButtonStyle
		}
		left = append(left, style.Render(" "+toggleButton+" "))
	}
	left = append(left, topBarAppStyle.Render(a.opts.Title))
	left = append(left, searchStyle.Render(a.search.View()))
	leftText := strings.Join(left, topBarStyle.Render(" "))

	moreStyle := topBarButtonStyle
	if a.ctrl.MenuVisible() {
		moreStyle = topBarActiveButtonStyle
	}
	right := moreStyle.Render(" " + moreButton + " ")

	if a.width <= 0 {
		return topBarStyle.Render(leftText + " " + right)
	}
	inner := a.width - 2 // topBarStyle horizontal padding
	gap := inner - ansi.StringWidth(leftText) - ansi.StringWidth(right)
	if gap < 1 {
		leftText = ansi.Truncate(leftText, max(0, inner-ansi.StringWidth(right)-1), "…")
		gap = 1
	}
	return topBarStyle.Width(a.width).Render(leftText + strings.Repeat(" ", gap) + right)
}

func (a *App) footerBindings() []key.Binding {
	scope := a.scope()
	bindings := a.keys.HelpBindings(scope)
	if scope != scopeShell || !a.wide() {
		return bindings
	}
	out := bindings[:0]
	for _, b := range bindings {
		if b.Help().Desc == "menu" {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (a *App) renderFooter(bindings []key.Binding) string {
	// Build help text where every character carries the footer background.
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if a.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(a.width).Render(truncate(content, a.width-4))
}

func (a *App) renderStatus() string {
	text := a.status
	style := statusBarStyle
	switch a.statusKind {
	case statusInfo:
		style = statusInfoStyle
	case statusSuccess:
		style = statusSuccessStyle
	case statusWarning:
		style = statusWarningStyle
	case statusError:
		style = statusErrorStyle
	}
	if text == "" {
		style = statusBarStyle
		text = fmt.Sprintf("sort: %s · role: %s", a.ctrl.Filter().Label(), roleLabel(a.ctrl.Role()))
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	if a.width == 0 {
		return style.Render(flat)
	}
	return style.Width(a.width).Render(truncate(flat, a.width-4))
}

// placeWithChrome stacks the top bar, body, status and footer, padding the
// body so the footer sits on the last line.
func (a *App) placeWithChrome(top, body, statusLine, footer string) string {
	if a.height == 0 {
		return top + "\n" + body + "\n" + statusLine + "\n" + footer
	}
	bodyHeight := a.bodyHeight()
	if lipgloss.Height(body) > bodyHeight {
		body = strings.Join(rows(body)[:bodyHeight], "\n")
	}
	main := lipgloss.Place(a.width, bodyHeight, lipgloss.Left, lipgloss.Top, body)
	// Every line full-width so earlier frames do not bleed through.
	lines := rows(main)
	for i, line := range lines {
		lines[i] = fitWidth(line, a.width)
	}
	return top + "\n" + strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}

func (a *App) bodyHeight() int {
	if a.height == 0 {
		return 0
	}
	return max(1, a.height-chromeHeight)
}

// ---------------------------------------------------------------------------
// Body: navigation + main area
// ---------------------------------------------------------------------------

func (a *App) renderBody() string {
	if a.width == 0 {
		if a.navVisible() {
			return a.renderNav(0) + "\n" + a.renderMain(0)
		}
		return a.renderMain(0)
	}
	if a.wide() {
		nav := a.renderNav(a.bodyHeight())
		main := a.renderMain(a.width - lipgloss.Width(nav))
		return lipgloss.JoinHorizontal(lipgloss.Top, nav, main)
	}
	main := a.renderMain(a.width)
	if !a.ctrl.DrawerOpen() {
		return main
	}
	// Temporary drawer drawn over the main area.
	height := max(a.bodyHeight(), lipgloss.Height(main))
	base := lipgloss.Place(a.width, height, lipgloss.Left, lipgloss.Top, main)
	return compose(base, a.width, height, drawerLayer(a.renderNav(height)))
}

func (a *App) renderNav(height int) string {
	var b strings.Builder
	b.WriteString(navHeadingStyle.Render("Filter"))
	b.WriteString("\n")
	inner := a.opts.DrawerWidth - 3 // border + padding
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(1, inner))))
	current := a.ctrl.Filter()
	for i, f := range shell.Filters() {
		b.WriteString("\n")
		marker := " "
		if i == a.navCursor {
			marker = cursorStyle.Render(selectedGlyph)
		}
		label := filterStyle.Render(f.Label())
		if f == current {
			label = filterSelectedStyle.Render(f.Label())
		}
		b.WriteString(marker + label)
	}
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(1, inner))))

	style := navStyle.Width(a.opts.DrawerWidth - 1)
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(b.String())
}

func (a *App) renderMain(width int) string {
	var lines []string
	heading := titleStyle.Render("Products")
	if _, ok := a.ctrl.Role().(shell.Admin); ok {
		heading += " " + badgeStyle.Render("[admin]")
	}
	lines = append(lines, heading)
	lines = append(lines, hintStyle.Render("sorted by "+a.ctrl.Filter().Label()))
	if !a.navVisible() {
		lines = append(lines, "", hintStyle.Render("press m to choose a filter"))
	}
	content := strings.Join(lines, "\n")
	if width > 0 {
		return mainStyle.Width(width).Render(content)
	}
	return mainStyle.Render(content)
}

// ---------------------------------------------------------------------------
// Anchored menu
// ---------------------------------------------------------------------------

func (a *App) renderMenu() string {
	items := a.ctrl.Items()
	lines := make([]string, 0, len(items))
	for i, it := range items {
		label := it.Label
		if it.ID == shell.ItemLogout {
			label += " ⇥"
		}
		if i == a.menuCursor {
			lines = append(lines, menuItemActiveStyle.Render(selectedGlyph+" "+label))
		} else {
			lines = append(lines, menuItemStyle.Render("  "+label))
		}
	}
	return menuStyle.Width(menuWidth).Render(strings.Join(lines, "\n"))
}

func (a *App) overlayMenu(view string, anchor shell.Anchor) string {
	menu := a.renderMenu()
	if a.width == 0 || a.height == 0 {
		return view + "\n" + menu
	}
	return compose(view, a.width, a.height, a.menuLayer(anchor, menu))
}

// ---------------------------------------------------------------------------
// Entry route
// ---------------------------------------------------------------------------

func (a *App) renderEntry() string {
	content := strings.Join([]string{
		titleStyle.Render(a.opts.Title),
		"",
		"You are signed out.",
		"",
		a.renderStatusHint(),
	}, "\n")
	box := landingStyle.Render(content)
	if a.width == 0 || a.height == 0 {
		return box
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

func (a *App) renderStatusHint() string {
	var parts []string
	for _, b := range a.keys.HelpBindings(scopeEntry) {
		h := b.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

func roleLabel(r shell.Role) string {
	if s := r.String(); s != "" {
		return s
	}
	return "guest"
}
