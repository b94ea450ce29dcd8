package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hiromasa5450/tetlris/internal/tetris"
)

type Theme struct {
	Name        string
	BorderColor lipgloss.Color
	TextColor   lipgloss.Color
	AccentColor lipgloss.Color
	// PieceColors is indexed by tetris.Kind. Empty means the catalog colors.
	PieceColors []lipgloss.Color
}

var themes = []Theme{
	{
		Name:        "Original",
		BorderColor: lipgloss.Color("15"),
		TextColor:   lipgloss.Color("250"),
		AccentColor: lipgloss.Color("226"),
	},
	{
		Name:        "Amber Terminal",
		BorderColor: lipgloss.Color("214"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("208"),
		PieceColors: []lipgloss.Color{"220", "214", "222", "208", "215", "216", "223"},
	},
	{
		Name:        "Ocean Neon",
		BorderColor: lipgloss.Color("33"),
		TextColor:   lipgloss.Color("159"),
		AccentColor: lipgloss.Color("39"),
		PieceColors: []lipgloss.Color{"45", "39", "51", "44", "50", "75", "81"},
	},
	{
		Name:        "Forest CRT",
		BorderColor: lipgloss.Color("22"),
		TextColor:   lipgloss.Color("120"),
		AccentColor: lipgloss.Color("34"),
		PieceColors: []lipgloss.Color{"47", "64", "77", "48", "71", "35", "106"},
	},
	{
		Name:        "Mono Matrix",
		BorderColor: lipgloss.Color("250"),
		TextColor:   lipgloss.Color("245"),
		AccentColor: lipgloss.Color("82"),
		PieceColors: []lipgloss.Color{"236", "239", "242", "245", "248", "251", "254"},
	},
}

func themeIndexByName(name string) int {
	for i, theme := range themes {
		if theme.Name == name {
			return i
		}
	}
	return -1
}

// cellColor maps a settled or falling block to the theme palette.
func cellColor(theme Theme, color tetris.Color) lipgloss.Color {
	kind, ok := tetris.KindOf(color)
	if !ok || len(theme.PieceColors) == 0 {
		return lipgloss.Color(string(color))
	}
	return theme.PieceColors[int(kind)%len(theme.PieceColors)]
}

func viewMenu(m Model) string {
	theme := themes[m.themeIndex]
	content := renderMenu("TETLRIS", menuItems, m.menuIndex, "Enter to select, Q to quit", theme)
	return center(m.width, m.height, content)
}

func viewThemes(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(themes))
	for _, t := range themes {
		items = append(items, t.Name)
	}
	preview := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle(theme).Render("Theme Preview"),
		renderPreviewPieceGrid(theme),
	)
	menu := renderMenu("Themes", items, m.themeIndex, "Enter to apply, Esc to back", theme)
	content := lipgloss.JoinVertical(lipgloss.Left, preview, "", menu)
	return center(m.width, m.height, content)
}

func renderPreviewPieceGrid(theme Theme) string {
	items := make([]string, 0, tetris.KindCount)
	for kind := tetris.Kind(0); kind < tetris.KindCount; kind++ {
		items = append(items, lipgloss.NewStyle().MarginRight(1).Render(renderMiniPiece(kind, theme, 1)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func viewConfig(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(configItems))
	for i, item := range configItems {
		switch i {
		case 0:
			items = append(items, fmt.Sprintf("%s: %s", item, onOff(m.config.Shadow)))
		case 1:
			items = append(items, fmt.Sprintf("%s: %dx", item, clampScale(m.config.Scale)))
		case 2:
			items = append(items, fmt.Sprintf("%s: %dms", item, clampDropInterval(m.config.DropIntervalMS)))
		case 3:
			items = append(items, fmt.Sprintf("%s: %s", item, onOff(m.config.InputWhilePaused)))
		}
	}
	content := renderMenu("Config", items, m.configIndex, "Enter to toggle, Left/Right to adjust, Esc to back", theme)
	return center(m.width, m.height, content)
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func viewGame(m Model) string {
	if m.game == nil {
		return ""
	}
	theme := themes[m.themeIndex]
	scale := clampScale(m.config.Scale)
	minWidth, minHeight := minGameSize(m.game, scale)
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		message := fmt.Sprintf("Terminal too small. Need at least %dx%d. Current %dx%d.", minWidth, minHeight, m.width, m.height)
		return center(m.width, m.height, message)
	}
	board := renderBoard(m.game, theme, scale, m.config.Shadow)
	lastEvent, lastDelta := m.eventLabel()
	info := renderInfo(m.game, theme, scale, lastEvent, lastDelta)
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, info)
	if m.width > 0 && m.width < minWidth+24 {
		content = lipgloss.JoinVertical(lipgloss.Left, board, info)
	}
	return center(m.width, m.height, content)
}

func renderBoard(g *tetris.Game, theme Theme, scale int, showShadow bool) string {
	border := lipgloss.NewStyle().Foreground(theme.BorderColor)
	cellEmpty := lipgloss.NewStyle()
	cellText := strings.Repeat(" ", cellWidth(scale))
	rows, columns := g.Rows(), g.Columns()
	board := g.BoardCells()
	ghost := make([][]bool, rows)
	for y := range ghost {
		ghost[y] = make([]bool, columns)
	}
	piece := g.ActivePiece()
	if !g.IsGameOver() {
		ghostY := g.GhostY()
		for dy, row := range piece.Shape {
			for dx, filled := range row {
				if !filled {
					continue
				}
				bx, by := piece.X+dx, piece.Y+dy
				gy := ghostY + dy
				if showShadow && ghostY != piece.Y && gy >= 0 && gy < rows && board[gy][bx] == tetris.Empty {
					ghost[gy][bx] = true
				}
				if by >= 0 && by < rows {
					board[by][bx] = piece.Color
				}
			}
		}
	}
	var b strings.Builder
	b.WriteString(border.Render("+" + strings.Repeat("-", columns*cellWidth(scale)) + "+"))
	b.WriteString("\n")
	for y := 0; y < rows; y++ {
		for repeat := 0; repeat < scale; repeat++ {
			b.WriteString(border.Render("|"))
			for x := 0; x < columns; x++ {
				val := board[y][x]
				if val == tetris.Empty {
					if ghost[y][x] {
						ghostText := strings.Repeat(".", cellWidth(scale))
						b.WriteString(lipgloss.NewStyle().Foreground(cellColor(theme, piece.Color)).Faint(true).Render(ghostText))
					} else {
						b.WriteString(cellEmpty.Render(cellText))
					}
					continue
				}
				style := lipgloss.NewStyle().Background(cellColor(theme, val))
				b.WriteString(style.Render(cellText))
			}
			b.WriteString(border.Render("|"))
			b.WriteString("\n")
		}
	}
	b.WriteString(border.Render("+" + strings.Repeat("-", columns*cellWidth(scale)) + "+"))
	return b.String()
}

func renderInfo(g *tetris.Game, theme Theme, scale int, lastEvent string, lastDelta int) string {
	var b strings.Builder
	pad := lipgloss.NewStyle().PaddingLeft(2)
	b.WriteString(pad.Render(titleStyle(theme).Render("Next")))
	b.WriteString("\n")
	b.WriteString(pad.Render(renderMiniPiece(g.Next(), theme, scale)))
	b.WriteString("\n\n")
	b.WriteString(pad.Render(fmt.Sprintf("Score: %d", g.Score())))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Lines: %d", g.Lines())))
	b.WriteString("\n\n")
	if lastEvent != "" {
		b.WriteString(pad.Render(highlightStyle(theme).Render(lastEvent)))
		b.WriteString("\n")
		b.WriteString(pad.Render(highlightStyle(theme).Render(fmt.Sprintf("+%d", lastDelta))))
		b.WriteString("\n\n")
	}
	keys := []string{
		"Arrows/HJL: move",
		"X or Up: rotate right",
		"Z: rotate left",
		"Space: hard drop",
		"P: pause",
		"R: restart",
		"Q: menu",
	}
	for _, line := range keys {
		b.WriteString(pad.Render(helpStyle(theme).Render(line)))
		b.WriteString("\n")
	}
	switch g.State() {
	case tetris.Paused:
		b.WriteString("\n")
		b.WriteString(pad.Render(highlightStyle(theme).Render("Paused")))
	case tetris.GameOver:
		b.WriteString("\n")
		b.WriteString(pad.Render(warningStyle(theme).Render("Game Over")))
		b.WriteString("\n")
		b.WriteString(pad.Render(helpStyle(theme).Render("R to restart")))
	}
	return b.String()
}

func renderMiniPiece(kind tetris.Kind, theme Theme, scale int) string {
	def := tetris.Lookup(kind)
	cellEmpty := lipgloss.NewStyle()
	cellText := strings.Repeat(" ", cellWidth(scale))
	filledStyle := lipgloss.NewStyle().Background(cellColor(theme, def.Color))
	var b strings.Builder
	for _, row := range def.Shape() {
		for repeat := 0; repeat < scale; repeat++ {
			for _, filled := range row {
				if filled {
					b.WriteString(filledStyle.Render(cellText))
				} else {
					b.WriteString(cellEmpty.Render(cellText))
				}
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func minGameSize(g *tetris.Game, scale int) (int, int) {
	width := g.Columns()*cellWidth(scale) + 4
	height := g.Rows()*scale + 4
	return width, height
}

func titleStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func highlightStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func helpStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextColor)
}

func warningStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func clampScale(value int) int {
	if value < 1 {
		return 1
	}
	if value > 3 {
		return 3
	}
	return value
}

func cellWidth(scale int) int {
	if scale < 1 {
		scale = 1
	}
	return 2 * scale
}

func renderMenu(title string, items []string, selected int, footer string, theme Theme) string {
	maxWidth := lipgloss.Width(title)
	for _, item := range items {
		if width := lipgloss.Width(item); width > maxWidth {
			maxWidth = width
		}
	}
	if width := lipgloss.Width(footer); width > maxWidth {
		maxWidth = width
	}
	lineStyle := lipgloss.NewStyle().Width(maxWidth).Align(lipgloss.Center)
	var b strings.Builder
	b.WriteString(lineStyle.Render(titleStyle(theme).Render(title)))
	b.WriteString("\n\n")
	for i, line := range items {
		if i == selected {
			b.WriteString(lineStyle.Render(highlightStyle(theme).Render(line)))
		} else {
			b.WriteString(lineStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lineStyle.Render(helpStyle(theme).Render(footer)))
	return b.String()
}
