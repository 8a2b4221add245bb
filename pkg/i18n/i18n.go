// Package i18n holds the translated user-facing messages of the planner.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The key is the English text.
const (
	TaskAdded                = "Task added"
	TaskUpdated              = "Task updated"
	TaskDeleted              = "Task deleted"
	TaskCompleted            = "Task completed"
	CategoryAdded            = "Category added"
	TaskReordered            = "Task reordered"
	TaskReorderedDescription = "Your task list has been reordered"
	WelcomeBack              = "Welcome back!"
	WelcomeBackMessage       = "Great to see you again. Your tasks are ready for you."
	TomorrowTask             = "New task for tomorrow"
	Due                      = "Due"
	DueIn                    = "in %s"
	Priority                 = "Priority"
	TaskTitle                = "Task title"
	EnableNotifications      = "Enable Notifications"
	DisableNotifications     = "Disable Notifications"
)

var (
	English = language.English
	Spanish = language.Spanish
	French  = language.French
	German  = language.German
	Hindi   = language.Hindi
)

// Supported lists the languages with a catalog, English first.
func Supported() []language.Tag {
	return []language.Tag{English, Spanish, French, German, Hindi}
}

var translations = map[language.Tag]map[string]string{
	Spanish: {
		TaskAdded:            "Tarea añadida",
		TaskUpdated:          "Tarea actualizada",
		TaskDeleted:          "Tarea eliminada",
		TaskCompleted:        "Tarea completada",
		Due:                  "Vence",
		DueIn:                "en %s",
		Priority:             "Prioridad",
		TaskTitle:            "Título de la tarea",
		EnableNotifications:  "Activar notificaciones",
		DisableNotifications: "Desactivar notificaciones",
	},
	French: {
		TaskAdded:            "Tâche ajoutée",
		TaskUpdated:          "Tâche mise à jour",
		TaskDeleted:          "Tâche supprimée",
		TaskCompleted:        "Tâche terminée",
		Due:                  "Échéance",
		DueIn:                "dans %s",
		Priority:             "Priorité",
		TaskTitle:            "Titre de la tâche",
		EnableNotifications:  "Activer les notifications",
		DisableNotifications: "Désactiver les notifications",
	},
	German: {
		TaskAdded:            "Aufgabe hinzugefügt",
		TaskUpdated:          "Aufgabe aktualisiert",
		TaskDeleted:          "Aufgabe gelöscht",
		TaskCompleted:        "Aufgabe abgeschlossen",
		Due:                  "Fällig",
		DueIn:                "in %s",
		Priority:             "Priorität",
		TaskTitle:            "Aufgabentitel",
		EnableNotifications:  "Benachrichtigungen aktivieren",
		DisableNotifications: "Benachrichtigungen deaktivieren",
	},
	Hindi: {
		TaskAdded:            "कार्य जोड़ा गया",
		TaskUpdated:          "कार्य अपडेट किया गया",
		TaskDeleted:          "कार्य हटाया गया",
		TaskCompleted:        "कार्य पूरा हुआ",
		Due:                  "नियत",
		DueIn:                "%s में",
		Priority:             "प्राथमिकता",
		TaskTitle:            "कार्य शीर्षक",
		EnableNotifications:  "सूचनाएं सक्षम करें",
		DisableNotifications: "सूचनाएं अक्षम करें",
	},
}

var (
	cat     = buildCatalog()
	matcher = language.NewMatcher(Supported())
)

// Messages missing from a language fall back to English.
func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(English))
	for _, tag := range Supported() {
		for _, key := range keys() {
			msg := key
			if tr, ok := translations[tag][key]; ok {
				msg = tr
			}
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

func keys() []string {
	return []string{
		TaskAdded, TaskUpdated, TaskDeleted, TaskCompleted, CategoryAdded,
		TaskReordered, TaskReorderedDescription, WelcomeBack, WelcomeBackMessage,
		TomorrowTask, Due, DueIn, Priority, TaskTitle, EnableNotifications, DisableNotifications,
	}
}

// Match picks the supported language closest to s ("es", "fr-CA", "de_DE").
// Unknown or empty input yields English.
func Match(s string) language.Tag {
	if s == "" {
		return English
	}
	tag, err := language.Parse(s)
	if err != nil {
		return English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English
	}
	return Supported()[idx]
}

// Translator renders message keys in one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for the supported language closest to tag.
func New(tag language.Tag) *Translator {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	chosen := Supported()[idx]
	return &Translator{
		tag:     chosen,
		printer: message.NewPrinter(chosen, message.Catalog(cat)),
	}
}

// Language reports the language this translator renders.
func (t *Translator) Language() language.Tag {
	if t == nil {
		return English
	}
	return t.tag
}

// T translates key. Keys without a translation are returned unchanged.
func (t *Translator) T(key string) string {
	if t == nil {
		return key
	}
	return t.printer.Sprintf(key)
}

// Tf translates a key holding format verbs and fills them with args.
func (t *Translator) Tf(key string, args ...any) string {
	if t == nil {
		return fmt.Sprintf(key, args...)
	}
	return t.printer.Sprintf(key, args...)
}
