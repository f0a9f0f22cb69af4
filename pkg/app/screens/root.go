package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"iconpack/pkg/app/styles"
	"iconpack/pkg/data"
)

type screenType int

const (
	browseView screenType = iota
	reviewView
)

// SwitchScreenMsg asks the root screen to change the active view.
type SwitchScreenMsg struct {
	Screen string
}

type RootScreen struct {
	catalog *data.Catalog

	currentView screenType
	browse      *BrowseScreen
	review      *ReviewScreen

	width  int
	height int
}

func NewRootScreen(catalog *data.Catalog) *RootScreen {
	return &RootScreen{
		catalog:     catalog,
		currentView: browseView,
		browse:      NewBrowseScreen(catalog),
		review:      NewReviewScreen(catalog),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.browse.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		case "tab":
			r.currentView = (r.currentView + 1) % 2
			if r.currentView == reviewView {
				cmd = r.review.Init()
			} else {
				cmd = r.browse.Init()
			}
			return r, cmd
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "browse":
			r.currentView = browseView
			cmd = r.browse.Init()
		case "review":
			r.currentView = reviewView
			cmd = r.review.Init()
		}
		return r, cmd
	}

	switch r.currentView {
	case browseView:
		newModel, newCmd := r.browse.Update(msg)
		r.browse = newModel.(*BrowseScreen)
		return r, newCmd
	case reviewView:
		newModel, newCmd := r.review.Update(msg)
		r.review = newModel.(*ReviewScreen)
		return r, newCmd
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var content string
	switch r.currentView {
	case browseView:
		content = r.browse.View()
	case reviewView:
		content = r.review.View()
	}

	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	browseTab := "Browse"
	reviewTab := "Review"

	if r.currentView == browseView {
		browseTab = styles.ActiveTabStyle.Render(browseTab)
		reviewTab = styles.InactiveTabStyle.Render(reviewTab)
	} else {
		browseTab = styles.InactiveTabStyle.Render(browseTab)
		reviewTab = styles.ActiveTabStyle.Render(reviewTab)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, browseTab, reviewTab)
}
