package settings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/jobs"
)

var ErrUnknownTask = errors.New("settings: unknown maintenance task")

// Task does the work behind one maintenance button. It returns a short
// summary for the operator.
type Task func(ctx context.Context) (string, error)

type TaskResult struct {
	Kind     string    `json:"kind"`
	Summary  string    `json:"summary"`
	Finished time.Time `json:"finished_at"`
}

type task struct {
	delay time.Duration
	run   Task
}

// Maintenance runs registered tasks, one at a time per kind.
type Maintenance struct {
	tasks map[string]task
	guard *jobs.Guard
	now   func() time.Time
}

func NewMaintenance() *Maintenance {
	return &Maintenance{tasks: map[string]task{}, guard: jobs.NewGuard(), now: time.Now}
}

// Register adds kind. The simulated delay runs before fn.
func (m *Maintenance) Register(kind string, delay time.Duration, fn Task) {
	m.tasks[kind] = task{delay: delay, run: fn}
}

func (m *Maintenance) Kinds() []string {
	out := make([]string, 0, len(m.tasks))
	for k := range m.tasks {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (m *Maintenance) Running(kind string) bool { return m.guard.Running(kind) }

// Run fails with jobs.ErrBusy while the same kind is still running.
func (m *Maintenance) Run(ctx context.Context, kind string) (TaskResult, error) {
	t, ok := m.tasks[kind]
	if !ok {
		return TaskResult{}, fmt.Errorf("%w: %q", ErrUnknownTask, kind)
	}
	release, err := m.guard.Start(kind)
	if err != nil {
		return TaskResult{}, err
	}
	defer release()

	if err := form.Wait(ctx, t.delay); err != nil {
		return TaskResult{}, err
	}
	summary, err := t.run(ctx)
	if err != nil {
		return TaskResult{}, fmt.Errorf("maintenance %s: %w", kind, err)
	}
	return TaskResult{Kind: kind, Summary: summary, Finished: m.now().UTC()}, nil
}
