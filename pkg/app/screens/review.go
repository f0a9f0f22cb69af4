package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"iconpack/pkg/app/components"
	"iconpack/pkg/app/styles"
	"iconpack/pkg/categories"
	"iconpack/pkg/data"
)

// ReviewScreen walks the uncategorized (misc) subset and lets the operator
// assign each icon a real category, persisting into the catalog.
type ReviewScreen struct {
	catalog *data.Catalog
	list    *components.IconList

	paletteIdx int
	total      int
	reviewed   int
	status     string
	err        error
}

type reviewLoadedMsg struct {
	icons []*data.IconRecord
	err   error
}

type assignedMsg struct {
	id  string
	err error
}

func NewReviewScreen(catalog *data.Catalog) *ReviewScreen {
	return &ReviewScreen{
		catalog: catalog,
		list:    components.NewIconList(),
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return s.load
}

func (s *ReviewScreen) load() tea.Msg {
	icons, err := s.catalog.Uncategorized()
	return reviewLoadedMsg{icons: icons, err: err}
}

func (s *ReviewScreen) assign() tea.Cmd {
	icon := s.list.Selected()
	if icon == nil {
		return nil
	}
	category := categories.All[s.paletteIdx].ID
	if category == categories.Misc {
		return nil
	}
	id := icon.ID
	return func() tea.Msg {
		return assignedMsg{id: id, err: s.catalog.SetCategory(id, category)}
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.list.Width = msg.Width
		s.list.Height = msg.Height - 10

	case reviewLoadedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.list.SetItems(msg.icons)
			s.total = len(msg.icons) + s.reviewed
		}

	case assignedMsg:
		if msg.err != nil {
			s.status = fmt.Sprintf("Failed to assign %s: %v", msg.id, msg.err)
			return s, nil
		}
		s.reviewed++
		s.status = fmt.Sprintf("Assigned %s", msg.id)
		return s, s.load

	case tea.KeyMsg:
		switch msg.String() {
		case "down", "j":
			s.list.Next()
		case "up", "k":
			s.list.Prev()
		case "right", "l":
			s.paletteIdx = (s.paletteIdx + 1) % len(categories.All)
		case "left", "h":
			s.paletteIdx--
			if s.paletteIdx < 0 {
				s.paletteIdx = len(categories.All) - 1
			}
		case "enter":
			return s, s.assign()
		}
	}

	return s, nil
}

func (s *ReviewScreen) View() string {
	if s.err != nil {
		return styles.MutedStyle.Render(fmt.Sprintf("Failed to load review queue: %v", s.err))
	}

	header := styles.TitleStyle.Render("Review uncategorized icons")

	var progress string
	if s.total > 0 {
		progress = components.ProgressBar(s.reviewed, s.total, 40) +
			styles.MutedStyle.Render(fmt.Sprintf(" %d/%d", s.reviewed, s.total))
	}

	palette := s.renderPalette()
	help := styles.HelpStyle.Render("↑/↓ icon · ←/→ category · enter assign · tab browse · q quit")

	if s.status != "" {
		help = styles.MutedStyle.Render(s.status) + "\n" + help
	}

	return strings.Join([]string{header, progress, s.list.View(), palette, help}, "\n")
}

func (s *ReviewScreen) renderPalette() string {
	var parts []string
	for i, def := range categories.All {
		label := def.ID
		if i == s.paletteIdx {
			label = styles.PaletteSelectedStyle.Render(label)
		} else {
			label = styles.MutedStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}
