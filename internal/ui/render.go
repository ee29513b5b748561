package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/carousel/internal/carousel"
)

const imagePlaceholder = "[ image unavailable ]"

// renderHeader renders the one-line status bar.
func (m Model) renderHeader(f carousel.Frame) string {
	styles := m.theme.Styles()
	surface := lipgloss.Color(m.theme.Surface)

	parts := []string{styles.Logo.Background(surface).Render("carousel")}
	switch {
	case f.Loading:
		parts = append(parts, styles.MutedText.Background(surface).Render("loading"))
	case len(f.Dots) > 0:
		parts = append(parts, styles.Text.Background(surface).Render(
			fmt.Sprintf("%d/%d", activeDot(f)+1, len(f.Dots))))
	case len(f.Track) == 1:
		parts = append(parts, styles.Text.Background(surface).Render("1/1"))
	}
	parts = append(parts, styles.MutedText.Background(surface).Render(f.Class.String()))
	if m.snapshot.LastError != nil {
		label := "feed error"
		if m.snapshot.IsStale() {
			label = "feed stale"
		}
		parts = append(parts, styles.DangerText.Background(surface).Render(label))
	}

	sep := lipgloss.NewStyle().Background(surface).Render("  ")
	return styles.Header.Width(m.width).MaxHeight(1).Render(strings.Join(parts, sep))
}

// renderTrack renders the visible window of the slide strip, gutters
// included.
func (m Model) renderTrack(f carousel.Frame) []string {
	styles := m.theme.Styles()
	height := trackRows(m.height)
	width := containerWidth(m.width)
	gutter := styles.Background.Render(strings.Repeat(" ", framePadding))

	var body []string
	switch {
	case width == 0:
		body = make([]string, height)
	case f.Loading:
		body = m.placeholderLines(width, height, m.spinner.View()+" Loading slides")
	case len(f.Track) == 0:
		msg := "No slides"
		if m.snapshot.LastError != nil {
			msg = "No slides: " + m.snapshot.LastError.Error()
		}
		body = m.placeholderLines(width, height, msg)
	default:
		body = m.windowLines(f, width, height)
	}

	lines := make([]string, height)
	for i := range lines {
		lines[i] = gutter + body[i] + gutter
	}
	return lines
}

func (m Model) placeholderLines(width, height int, msg string) []string {
	style := m.theme.Styles().SurfaceAlt
	blank := style.Render(strings.Repeat(" ", width))
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	// The spinner frame is already styled; center on its printable width.
	pad := maxInt(width-lipgloss.Width(msg), 0)
	left := pad / 2
	lines[height/2] = style.Render(strings.Repeat(" ", left)) +
		style.Render(msg) +
		style.Render(strings.Repeat(" ", pad-left))
	return lines
}

// windowLines cuts the [start, start+width) column window out of the strip
// of slots, each width columns wide, at the painted offset.
func (m Model) windowLines(f carousel.Frame, width, height int) []string {
	styles := m.theme.Styles()
	slot := width
	start := int(math.Round(-m.pos))
	end := start + width

	cache := make(map[int][][]string, 2)
	slotText := func(k int) [][]string {
		if rows, ok := cache[k]; ok {
			return rows
		}
		text := slideLines(f.Track[k].Slide, slot, height, m.captions)
		rows := make([][]string, len(text))
		for i, line := range text {
			rows[i] = cells(line)
		}
		cache[k] = rows
		return rows
	}

	lines := make([]string, height)
	for row := range lines {
		var b strings.Builder
		for col := start; col < end; {
			k := floorDiv(col, slot)
			within := col - k*slot
			span := minInt(slot-within, end-col)
			if k < 0 || k >= len(f.Track) {
				// Spring overshoot past either end of the strip.
				b.WriteString(styles.SurfaceAlt.Render(strings.Repeat(" ", span)))
			} else {
				text := slotText(k)[row]
				b.WriteString(styles.SlideStyle(f.Track[k].Logical).Render(joinCells(text, within, within+span)))
			}
			col += span
		}
		lines[row] = b.String()
	}
	return lines
}

// slideLines lays out one slide as height lines of exactly width cells.
func slideLines(s carousel.DisplaySlide, width, height int, captions bool) []string {
	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	if height == 0 {
		return lines
	}

	image := imagePlaceholder
	if s.HasImage() {
		image = "▣ " + *s.ImageURL
	}
	mid := height / 2
	lines[mid] = center(image, width)

	if !captions {
		return lines
	}
	if alt := strings.TrimSpace(s.Alt); alt != "" && mid > 0 {
		lines[mid-1] = center(alt, width)
	}
	if s.HasLink() && mid+1 < height {
		lines[mid+1] = center("↗ "+*s.Link, width)
	}
	return lines
}

// dotsLayout returns the first column of the dot row and its width. Dots
// sit on even offsets, separated by one space.
func (m Model) dotsLayout(n int) (left, span int) {
	if n == 0 {
		return 0, 0
	}
	span = 2*n - 1
	return maxInt((m.width-span)/2, 0), span
}

func (m Model) renderDots(f carousel.Frame) string {
	styles := m.theme.Styles()
	surface := lipgloss.Color(m.theme.Surface)
	row := styles.Surface.Width(m.width).MaxHeight(1)
	if len(f.Dots) == 0 {
		return row.Render("")
	}

	left, _ := m.dotsLayout(len(f.Dots))
	gap := lipgloss.NewStyle().Background(surface).Render(" ")
	dots := make([]string, len(f.Dots))
	for i, d := range f.Dots {
		if d.Active {
			dots[i] = styles.DotActive.Background(surface).Render("●")
		} else {
			dots[i] = styles.DotIdle.Background(surface).Render("○")
		}
	}
	return row.Render(strings.Repeat(" ", left) + strings.Join(dots, gap))
}

// renderCountdown shows time left until the next autoplay advance.
func (m Model) renderCountdown(f carousel.Frame) string {
	bar := ""
	if m.autoplay.armed && len(f.Dots) > 0 && !f.Dragging && !f.MidTeleport && m.progress.Width > 0 {
		bar = m.progress.ViewAs(m.autoplay.fraction(m.now()))
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	content := m.status
	if content == "" {
		content = m.help.ShortHelpView(m.keys.ShortHelp())
	} else {
		content = truncate(content, maxInt(m.width-2, 0))
	}
	return styles.Footer.Width(m.width).MaxHeight(1).Render(content)
}

func activeDot(f carousel.Frame) int {
	for _, d := range f.Dots {
		if d.Active {
			return d.Index
		}
	}
	return f.Index
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
