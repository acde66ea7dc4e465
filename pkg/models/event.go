package models

// EventTrigger is the user interaction that fires a widget event.
type EventTrigger string

const (
	TriggerClick  EventTrigger = "onClick"
	TriggerChange EventTrigger = "onChange"
	TriggerSubmit EventTrigger = "onSubmit"
)

// ActionType is one kind of effect an event can perform.
type ActionType string

const (
	ActionShowComponent    ActionType = "showComponent"
	ActionHideComponent    ActionType = "hideComponent"
	ActionUpdateComponent  ActionType = "updateComponent"
	ActionAPICall          ActionType = "apiCall"
	ActionRunQuery         ActionType = "runQuery"
	ActionNavigateTo       ActionType = "navigateTo"
	ActionShowNotification ActionType = "showNotification"
	ActionSetVariable      ActionType = "setVariable"
	ActionTriggerEvent     ActionType = "triggerEvent"
)

// Event binds a trigger to an ordered chain of actions. A widget may carry
// several events with the same trigger; all fire in declaration order.
type Event struct {
	ID      string        `json:"id"      validate:"required"`
	Trigger EventTrigger  `json:"trigger" validate:"required,oneof=onClick onChange onSubmit"`
	Actions []EventAction `json:"actions"`
}

// Clone returns a deep copy of the event and its actions.
func (e Event) Clone() Event {
	clone := e
	clone.Actions = make([]EventAction, len(e.Actions))

	for i, act := range e.Actions {
		clone.Actions[i] = act.Clone()
	}

	return clone
}

// EventAction is a tagged variant over the action vocabulary. Only the
// fields relevant to Type are interpreted; the rest stay zero.
type EventAction struct {
	ID   string     `json:"id"   validate:"required"`
	Type ActionType `json:"type" validate:"required"`

	TargetComponentID string         `json:"targetComponentId,omitempty"`
	APIEndpoint       string         `json:"apiEndpoint,omitempty"`
	APIMethod         string         `json:"apiMethod,omitempty"         validate:"omitempty,oneof=GET POST PUT DELETE"`
	APIData           map[string]any `json:"apiData,omitempty"`
	UpdateProps       map[string]any `json:"updateProps,omitempty"`
	QueryID           string         `json:"queryId,omitempty"`
	QueryParams       map[string]any `json:"queryParams,omitempty"`
	NavigationPath    string         `json:"navigationPath,omitempty"`
	NotificationMsg   string         `json:"notificationMessage,omitempty"`
	NotificationType  Severity       `json:"notificationType,omitempty"`
	VariableName      string         `json:"variableName,omitempty"`
	VariableValue     any            `json:"variableValue,omitempty"`
	TargetEventID     string         `json:"targetEventId,omitempty"`
}

// Clone returns a copy whose maps share no memory with the receiver.
func (a EventAction) Clone() EventAction {
	clone := a

	if a.APIData != nil {
		clone.APIData = CloneMap(a.APIData)
	}

	if a.UpdateProps != nil {
		clone.UpdateProps = CloneMap(a.UpdateProps)
	}

	if a.QueryParams != nil {
		clone.QueryParams = CloneMap(a.QueryParams)
	}

	return clone
}
