package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoraes/dexbook/internal/app"
	"github.com/lmoraes/dexbook/internal/catalog"
)

// Service is the slice of the application layer the panel consumes.
type Service interface {
	Categories(ctx context.Context) ([]catalog.Category, error)
	Refresh(ctx context.Context, categoryID string) (app.ItemSummary, error)
	Detail(ctx context.Context, ref string) (catalog.Detail, error)
	Description(ctx context.Context, ref string) (catalog.Description, error)
}

type categoriesSuccessMsg struct {
	categories []catalog.Category
}

type categoriesErrorMsg struct {
	err error
}

// refresh messages carry the generation token captured when the command was
// issued; the model drops results whose token is no longer current.
type refreshSuccessMsg struct {
	token int
	item  app.ItemSummary
}

type refreshErrorMsg struct {
	token int
	err   error
}

type overlayDetailMsg struct {
	gen    int
	detail catalog.Detail
	err    error
}

type overlayDescriptionMsg struct {
	gen  int
	text string
	err  error
}

type settleMsg struct {
	token int
}

func categoriesCmd(service Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		categories, err := service.Categories(ctx)
		if err != nil {
			return categoriesErrorMsg{err: err}
		}
		return categoriesSuccessMsg{categories: categories}
	}
}

func refreshCmd(service Service, categoryID string, token int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		item, err := service.Refresh(ctx, categoryID)
		if err != nil {
			return refreshErrorMsg{token: token, err: err}
		}
		return refreshSuccessMsg{token: token, item: item}
	}
}

func overlayDetailCmd(service Service, ref string, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		detail, err := service.Detail(ctx, ref)
		return overlayDetailMsg{gen: gen, detail: detail, err: err}
	}
}

func overlayDescriptionCmd(service Service, ref string, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		description, err := service.Description(ctx, ref)
		return overlayDescriptionMsg{gen: gen, text: description.Text, err: err}
	}
}

func settleCmd(token int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return settleMsg{token: token}
	})
}
