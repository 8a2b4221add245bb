package commands

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

// session bundles everything a command needs to work on the saved planner.
type session struct {
	Settings *store.Settings
	Disk     *store.Disk
	Planner  *planner.Planner
	Log      *zap.Logger

	closeLog func() error
}

func (s *session) Close() {
	if s.closeLog != nil {
		_ = s.closeLog()
	}
}

// load reads the configuration, opens the store and loads the planner. A nil
// notifier prints toasts to the terminal.
func load(notifier planner.Notifier) (*session, error) {
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := logging.New(logging.Config{
		File:   settings.LogFile,
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
	})
	if err != nil {
		return nil, err
	}
	disk, err := store.Open(settings)
	if err != nil {
		_ = closeLog()
		return nil, err
	}
	if notifier == nil {
		pp := printers.PrettyPrint{}
		notifier = pp.Notifier()
	}

	p := planner.New(
		planner.WithStore(disk),
		planner.WithLogger(logger),
		planner.WithNotifier(notifier),
	)
	p.Load()
	defaultLanguage(p, disk, settings.Language)
	logger.Debug("planner loaded",
		zap.String("path", disk.BasePath()),
		zap.Int("tasks", len(p.Tasks())),
	)

	return &session{
		Settings: settings,
		Disk:     disk,
		Planner:  p,
		Log:      logger,
		closeLog: closeLog,
	}, nil
}

// defaultLanguage applies the configured language only until one is saved,
// so `planner set language` wins over the config file.
func defaultLanguage(p *planner.Planner, kv store.KV, lang string) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return
	}
	if _, err := kv.Get(store.KeyLanguage); !errors.Is(err, store.ErrNotFound) {
		return
	}
	p.SetLanguage(lang)
}

// quiet drops toasts for commands whose own output already says what
// happened.
var quiet = planner.NotifierFunc(func(planner.Toast) {})
