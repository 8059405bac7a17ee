package hasura

// SessionVariables are the x-hasura-* values Hasura forwards with
// triggers and actions.
type SessionVariables struct {
	Role   string `json:"x-hasura-role"`
	UserID string `json:"x-hasura-user-id,omitempty"`
}

// TriggerInfo names the event trigger that fired
type TriggerInfo struct {
	Name string `json:"name"`
}

// TableInfo identifies the table the event originated from
type TableInfo struct {
	Schema string `json:"schema"`
	Name   string `json:"name"`
}

// EventData carries the row images. New is decoded into the row type of
// the endpoint; Old is kept untyped because no handler reads it.
type EventData[T any] struct {
	Old map[string]interface{} `json:"old"`
	New T                      `json:"new"`
}

// Event is the "event" section of an event trigger payload
type Event[T any] struct {
	Op               string           `json:"op"`
	SessionVariables SessionVariables `json:"session_variables"`
	Data             EventData[T]     `json:"data"`
}

// EventTrigger is the body Hasura posts for a database event trigger
type EventTrigger[T any] struct {
	ID        string      `json:"id"`
	CreatedAt string      `json:"created_at"` // Hasura omits the zone offset
	Trigger   TriggerInfo `json:"trigger"`
	Table     TableInfo   `json:"table"`
	Event     Event[T]    `json:"event"`
}

// Row returns the new row image
func (e *EventTrigger[T]) Row() T {
	return e.Event.Data.New
}

// ActionInfo names the action being executed
type ActionInfo struct {
	Name string `json:"name"`
}

// Action is the body Hasura posts for an action handler
type Action[T any] struct {
	Action           ActionInfo       `json:"action"`
	SessionVariables SessionVariables `json:"session_variables"`
	Input            T                `json:"input"`
}
