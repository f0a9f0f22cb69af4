package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"iconpack/pkg/app/screens"
	"iconpack/pkg/data"
)

type App struct {
	catalog *data.Catalog
}

func NewApp(catalog *data.Catalog) *App {
	return &App{catalog: catalog}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.catalog)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
