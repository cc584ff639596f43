package form

import (
	"context"
	"time"
)

// DefaultDelay mimics the round trip of a real save.
const DefaultDelay = time.Second

// Schema describes one entity's edit form. Validate sees the raw input;
// Build turns valid input into the entity, copying whatever the form does
// not expose (id, nested collections, timestamps) from original. original
// is nil in create mode.
type Schema[T, In any] struct {
	Message  string
	Validate func(c *Checker, in In)
	Build    func(in In, original *T) (T, error)
}

// Modal runs a Schema with the simulated save delay.
type Modal[T, In any] struct {
	Schema Schema[T, In]
	Delay  time.Duration
}

func NewModal[T, In any](s Schema[T, In], delay time.Duration) Modal[T, In] {
	return Modal[T, In]{Schema: s, Delay: delay}
}

// Submit validates in, builds the payload and waits out the delay. A
// validation or build failure returns a Cancelled result with *Errors. A
// context cancelled during the delay returns Cancelled with no error, the
// same as the user closing the dialog.
func (m Modal[T, In]) Submit(ctx context.Context, original *T, in In) (Result[T], error) {
	var c Checker
	if m.Schema.Validate != nil {
		m.Schema.Validate(&c, in)
	}
	if err := c.Err(m.Schema.Message); err != nil {
		return Cancel[T](), err
	}

	payload, err := m.Schema.Build(in, original)
	if err != nil {
		return Cancel[T](), err
	}

	if err := Wait(ctx, m.Delay); err != nil {
		return Cancel[T](), nil
	}
	if original == nil {
		return NewCreated(payload), nil
	}
	return NewUpdated(payload), nil
}

// Wait blocks for d or until ctx is done, whichever comes first.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
