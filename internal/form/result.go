package form

// Outcome tells the opener of a modal what happened to the draft.
type Outcome int

const (
	Cancelled Outcome = iota
	Created
	Updated
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	default:
		return "cancelled"
	}
}

// Result is handed back to whoever opened the modal. Payload is the zero
// value when Outcome is Cancelled.
type Result[T any] struct {
	Outcome Outcome
	Payload T
}

func NewCreated[T any](payload T) Result[T] {
	return Result[T]{Outcome: Created, Payload: payload}
}

func NewUpdated[T any](payload T) Result[T] {
	return Result[T]{Outcome: Updated, Payload: payload}
}

func Cancel[T any]() Result[T] {
	return Result[T]{Outcome: Cancelled}
}
