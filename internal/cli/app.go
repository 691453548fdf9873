package cli

import (
	"fmt"

	"taskdeck/config"
	"taskdeck/internal/notify"
	notifyRest "taskdeck/internal/notify/rest"
	"taskdeck/internal/session"
	"taskdeck/internal/task"
	taskRest "taskdeck/internal/task/repository/rest"
	"taskdeck/internal/task/usecase"
	pkgLog "taskdeck/pkg/log"
	"taskdeck/pkg/taskapi"
)

// app is the wired object graph shared by the TUI and the headless
// subcommands: config, logger, session, gateway, usecases, poller.
type app struct {
	cfg     *config.Config
	l       pkgLog.Logger
	session *session.Store
	client  *taskapi.Client
	tasks   task.UseCase
	notes   notify.Repository
	poller  *notify.Poller
}

// newApp loads configuration and builds the dependency graph. The
// poller's onChange hook may be nil for headless use.
func newApp(onChange func()) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l := pkgLog.Init(pkgLog.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		File:         cfg.Logger.File,
	})

	sess, err := session.Open(l, cfg.Storage.Dir)
	if err != nil {
		return nil, err
	}

	client := taskapi.NewClient(cfg.API.BaseURL, sess, cfg.API.Timeout)
	sess.BindAPI(client)

	taskUC := usecase.New(l, taskRest.New(l, client))
	notes := notifyRest.New(l, client)
	poller := notify.New(l, notes, cfg.Notifier.PollInterval, onChange)

	return &app{
		cfg:     cfg,
		l:       l,
		session: sess,
		client:  client,
		tasks:   taskUC,
		notes:   notes,
		poller:  poller,
	}, nil
}

// requireSession guards authenticated subcommands.
func (a *app) requireSession() error {
	if !a.session.IsAuthenticated() {
		return fmt.Errorf("not logged in, run `taskdeck login` first")
	}
	return nil
}
