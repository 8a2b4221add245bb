package planner

// Variant styles a toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSuccess     Variant = "success"
	VariantDestructive Variant = "destructive"
)

// Toast is a short acknowledgment shown after a mutation.
type Toast struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier is the toast sink.
type Notifier interface {
	Notify(Toast)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Toast)

func (f NotifierFunc) Notify(t Toast) {
	f(t)
}

type discard struct{}

func (discard) Notify(Toast) {}

func (p *Planner) toast(title, description string, variant Variant) {
	p.notify.Notify(Toast{
		Title:       p.tr.T(title),
		Description: description,
		Variant:     variant,
	})
}
