package planner

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/planner/pkg/i18n"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

// Load reads the persisted state. Missing or malformed values fall back to
// an empty task list, the default categories and default preferences; the
// problem is logged and never returned. Load records the visit, reports
// WelcomeBack when the previous visit is at least a day old, and opens the
// onboarding dialog until onboarding is complete.
func (p *Planner) Load() {
	now := p.now()

	p.tasks = nil
	if raw, ok := p.get(store.KeyTasks); ok {
		var tasks []task.Task
		if err := json.Unmarshal(raw, &tasks); err != nil {
			p.log.Warn("discarding malformed tasks", zap.Error(err))
		} else {
			p.tasks = tasks
		}
	}

	p.categories = task.DefaultCategories()
	if raw, ok := p.get(store.KeyCategories); ok {
		var categories []task.Category
		if err := json.Unmarshal(raw, &categories); err != nil {
			p.log.Warn("discarding malformed categories", zap.Error(err))
		} else {
			p.categories = categories
		}
	}

	p.prefs = Preferences{Language: i18n.English}
	if raw, ok := p.get(store.KeyLanguage); ok {
		p.prefs.Language = i18n.Match(string(raw))
	}
	p.tr = i18n.New(p.prefs.Language)
	p.params.Locale = p.prefs.Language

	p.prefs.NotificationsEnabled = p.getBool(store.KeyNotificationsEnabled)
	p.prefs.OnboardingComplete = p.getBool(store.KeyOnboardingComplete)

	p.theme = ThemeLight
	if raw, ok := p.get(store.KeyTheme); ok && Theme(raw) == ThemeDark {
		p.theme = ThemeDark
	}

	p.welcomeBack = false
	if raw, ok := p.get(store.KeyLastVisit); ok {
		last, err := task.ParseTime(string(raw))
		if err != nil {
			p.log.Warn("discarding malformed last visit", zap.Error(err))
		} else {
			p.prefs.LastVisit = last
			if diff := now.Sub(last); diff >= 24*time.Hour || diff <= -24*time.Hour {
				p.welcomeBack = true
			}
		}
	}
	p.set(store.KeyLastVisit, []byte(now.UTC().Format(time.RFC3339Nano)))

	p.dialogs = nil
	if !p.prefs.OnboardingComplete {
		p.OpenDialog(Dialog{Kind: DialogOnboarding})
	}
	if p.welcomeBack {
		p.toast(i18n.WelcomeBack, p.tr.T(i18n.WelcomeBackMessage), VariantDefault)
	}
	p.reconcile()
}

// Reload rereads tasks and categories after another process changed them.
// View parameters, cursor and dialogs are kept.
func (p *Planner) Reload() {
	if raw, ok := p.get(store.KeyTasks); ok {
		var tasks []task.Task
		if err := json.Unmarshal(raw, &tasks); err != nil {
			p.log.Warn("ignoring malformed tasks on reload", zap.Error(err))
		} else {
			p.tasks = tasks
		}
	} else {
		p.tasks = nil
	}
	if raw, ok := p.get(store.KeyCategories); ok {
		var categories []task.Category
		if err := json.Unmarshal(raw, &categories); err != nil {
			p.log.Warn("ignoring malformed categories on reload", zap.Error(err))
		} else {
			p.categories = categories
		}
	}
	p.reconcile()
}

func (p *Planner) get(key string) ([]byte, bool) {
	raw, err := p.kv.Get(key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.log.Warn("read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return raw, true
}

func (p *Planner) getBool(key string) bool {
	raw, ok := p.get(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(string(raw))
	if err != nil {
		p.log.Warn("discarding malformed flag", zap.String("key", key), zap.Error(err))
		return false
	}
	return b
}

func (p *Planner) set(key string, value []byte) {
	if err := p.kv.Set(key, value); err != nil {
		p.log.Error("write failed", zap.String("key", key), zap.Error(err))
	}
}

func (p *Planner) saveTasks() {
	tasks := p.tasks
	if tasks == nil {
		tasks = []task.Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		p.log.Error("encode tasks", zap.Error(err))
		return
	}
	p.set(store.KeyTasks, raw)
	p.log.Debug("saved tasks", zap.Int("count", len(tasks)))
}

func (p *Planner) saveCategories() {
	raw, err := json.Marshal(p.categories)
	if err != nil {
		p.log.Error("encode categories", zap.Error(err))
		return
	}
	p.set(store.KeyCategories, raw)
}

func (p *Planner) saveBool(key string, v bool) {
	p.set(key, []byte(strconv.FormatBool(v)))
}
