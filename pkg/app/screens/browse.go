package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"iconpack/pkg/app/components"
	"iconpack/pkg/app/styles"
	"iconpack/pkg/categories"
	"iconpack/pkg/data"
)

// BrowseScreen pages through the indexed icons, one category at a time.
type BrowseScreen struct {
	catalog *data.Catalog
	list    *components.IconList

	// index into categories.All; -1 means all categories
	categoryIdx int
	err         error
}

type iconsLoadedMsg struct {
	icons []*data.IconRecord
	err   error
}

func NewBrowseScreen(catalog *data.Catalog) *BrowseScreen {
	return &BrowseScreen{
		catalog:     catalog,
		list:        components.NewIconList(),
		categoryIdx: -1,
	}
}

func (s *BrowseScreen) Init() tea.Cmd {
	return s.load
}

func (s *BrowseScreen) load() tea.Msg {
	var icons []*data.IconRecord
	var err error
	if s.categoryIdx < 0 {
		icons, err = s.catalog.ListIcons()
	} else {
		icons, err = s.catalog.ListByCategory(categories.All[s.categoryIdx].ID)
	}
	return iconsLoadedMsg{icons: icons, err: err}
}

func (s *BrowseScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.list.Width = msg.Width
		s.list.Height = msg.Height - 6

	case iconsLoadedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.list.SetItems(msg.icons)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "down", "j":
			s.list.Next()
		case "up", "k":
			s.list.Prev()
		case "right", "l":
			s.categoryIdx++
			if s.categoryIdx >= len(categories.All) {
				s.categoryIdx = -1
			}
			return s, s.load
		case "left", "h":
			s.categoryIdx--
			if s.categoryIdx < -1 {
				s.categoryIdx = len(categories.All) - 1
			}
			return s, s.load
		}
	}

	return s, nil
}

func (s *BrowseScreen) View() string {
	if s.err != nil {
		return styles.MutedStyle.Render(fmt.Sprintf("Failed to load icons: %v", s.err))
	}

	filter := "all categories"
	if s.categoryIdx >= 0 {
		filter = categories.All[s.categoryIdx].Label
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("Icons · %s", filter))
	help := styles.HelpStyle.Render("↑/↓ select · ←/→ category · tab review · q quit")
	return header + "\n" + s.list.View() + "\n" + help
}
