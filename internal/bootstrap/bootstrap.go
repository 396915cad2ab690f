package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	rosterinadapter "turma/internal/modules/roster/adapter/in"
	rosteroutadapter "turma/internal/modules/roster/adapter/out"
	rosterin "turma/internal/modules/roster/port/in"
	rosterservice "turma/internal/modules/roster/service"
	rosterusecase "turma/internal/modules/roster/usecase"
	sessioninadapter "turma/internal/modules/session/adapter/in"
	sessionoutadapter "turma/internal/modules/session/adapter/out"
	sessionin "turma/internal/modules/session/port/in"
	sessionservice "turma/internal/modules/session/service"
	sessionusecase "turma/internal/modules/session/usecase"
	"turma/internal/platform/config"
	"turma/internal/platform/logging"
	uiapp "turma/internal/ui/app"
)

type App struct {
	SessionCLI sessioninadapter.CLIHandler
	RosterCLI  rosterinadapter.CLIHandler

	sessionUC sessionin.Usecase
	rosterUC  rosterin.Usecase
	logger    *logrus.Logger
}

func New(cfg config.Config) (*App, error) {
	logger, err := logging.NewFileLogger(cfg.LogPath)
	if err != nil {
		return nil, err
	}

	tokenStore, err := sessionoutadapter.NewSQLiteTokenStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new token store: %w", err)
	}
	authGateway := sessionoutadapter.NewHTTPAuthGateway(cfg.BaseURL, cfg.HTTPTimeout)
	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(authGateway, tokenStore))

	gateway := rosteroutadapter.NewHTTPGateway(
		cfg.BaseURL,
		rosteroutadapter.NewSessionSourceAdapter(sessionUC),
		cfg.HTTPTimeout,
	)
	rosterUC := rosterusecase.NewInteractor(rosterservice.NewRosterService(gateway))

	return &App{
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		RosterCLI:  rosterinadapter.NewCLIHandler(rosterUC),
		sessionUC:  sessionUC,
		rosterUC:   rosterUC,
		logger:     logger,
	}, nil
}

func RunTUI(app *App) error {
	_, err := app.sessionUC.Current(context.Background())
	model := uiapp.NewModel(app.sessionUC, app.rosterUC, app.logger, err == nil)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := program.Run()
	return runErr
}
