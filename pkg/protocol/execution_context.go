package protocol

import (
	"github.com/pageforge/pageforge/pkg/models"
)

// ExecutionContext carries everything one event firing may touch. It is
// built per firing and passed explicitly through every action, so tests
// and concurrent sessions stay isolated: there is no process-global state.
type ExecutionContext struct {
	ID     string
	PageID string

	Widgets   WidgetStore
	Variables VariableStore
	Notifier  Notifier
	Navigator Navigator
	Queries   QueryExecutor
	API       APIClient
	Events    EventInvoker

	// active is the set of (widget, trigger) pairs on the current
	// invocation stack; the engine refuses to re-enter one of them.
	active map[triggerKey]bool
}

type triggerKey struct {
	widgetID string
	trigger  models.EventTrigger
}

// EnterTrigger records a (widget, trigger) pair as executing. It reports
// false when the pair is already on the stack, which means firing it again
// would recurse forever.
func (e *ExecutionContext) EnterTrigger(widgetID string, trigger models.EventTrigger) bool {
	if e.active == nil {
		e.active = make(map[triggerKey]bool)
	}

	key := triggerKey{widgetID: widgetID, trigger: trigger}
	if e.active[key] {
		return false
	}

	e.active[key] = true

	return true
}

// LeaveTrigger removes a pair from the stack once its chains finished.
func (e *ExecutionContext) LeaveTrigger(widgetID string, trigger models.EventTrigger) {
	delete(e.active, triggerKey{widgetID: widgetID, trigger: trigger})
}
