package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"iconpack/pkg/app/styles"
	"iconpack/pkg/data"
)

// IconList is a scrolling card list over icon records.
type IconList struct {
	Items         []*data.IconRecord
	SelectedIndex int
	Width         int
	Height        int
}

func NewIconList() *IconList {
	return &IconList{
		Items:  []*data.IconRecord{},
		Width:  80,
		Height: 20,
	}
}

func (l *IconList) SetItems(items []*data.IconRecord) {
	l.Items = items
	if l.SelectedIndex >= len(items) {
		l.SelectedIndex = len(items) - 1
	}
	if l.SelectedIndex < 0 {
		l.SelectedIndex = 0
	}
}

func (l *IconList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
}

func (l *IconList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *IconList) Selected() *data.IconRecord {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return l.Items[l.SelectedIndex]
}

func (l *IconList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No icons to show")
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	// Show a window of cards around the selection so long lists stay usable.
	const window = 6
	start := l.SelectedIndex - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(l.Items) {
		end = len(l.Items)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		icon := l.Items[i]
		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := styles.TitleStyle.Render(icon.Name)
		badge := styles.BadgeFor(icon.Category).Render(icon.Category)
		origin := styles.MutedStyle.Render(fmt.Sprintf("%s · %s", icon.Library, icon.Type))

		meta := origin
		if len(icon.Tags) > 0 {
			meta = origin + styles.MutedStyle.Render("  tags: "+strings.Join(icon.Tags, ", "))
		}

		card := cardStyle.Width(l.Width - 4).Render(
			lipgloss.JoinVertical(lipgloss.Left, title+" "+badge, meta),
		)
		b.WriteString(card)
		b.WriteString("\n")
	}

	b.WriteString(styles.MutedStyle.Render(
		fmt.Sprintf("%d/%d", l.SelectedIndex+1, len(l.Items)),
	))
	return b.String()
}
