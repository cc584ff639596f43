// Package settings keeps the system settings and runs maintenance tasks.
package settings

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

const (
	MinTimeoutMS = 100
	MaxTimeoutMS = 60000
)

type SecurityInput struct {
	FieldAuthEnabled   *bool  `json:"field_auth_enabled"`
	DefaultHandlerRole string `json:"default_handler_role"`
}

type UnitOfWorkInput struct {
	AtomicWritesEnabled *bool `json:"atomic_writes_enabled"`
	TimeoutMS           *int  `json:"timeout_ms"`
}

func Defaults() models.Settings {
	return models.Settings{
		Security:   models.SecuritySettings{FieldAuthEnabled: true, DefaultHandlerRole: "Editor"},
		UnitOfWork: models.UnitOfWorkSettings{AtomicWritesEnabled: true, TimeoutMS: 5000},
	}
}

// Store applies each save after a simulated round trip. A save whose
// context ends during the delay is dropped.
type Store struct {
	mu    sync.RWMutex
	s     models.Settings
	delay time.Duration
}

func NewStore(initial models.Settings, delay time.Duration) *Store {
	return &Store{s: initial, delay: delay}
}

func (st *Store) Get() models.Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s
}

func (st *Store) SaveSecurity(ctx context.Context, in SecurityInput) (models.SecuritySettings, error) {
	var c form.Checker
	if in.FieldAuthEnabled == nil {
		c.Add("field_auth_enabled", "required", "field_auth_enabled is required")
	}
	c.Text("default_handler_role", in.DefaultHandlerRole, 50)
	if err := c.Err(""); err != nil {
		return models.SecuritySettings{}, err
	}
	if err := form.Wait(ctx, st.delay); err != nil {
		return models.SecuritySettings{}, err
	}

	next := models.SecuritySettings{
		FieldAuthEnabled:   *in.FieldAuthEnabled,
		DefaultHandlerRole: strings.TrimSpace(in.DefaultHandlerRole),
	}
	st.mu.Lock()
	st.s.Security = next
	st.mu.Unlock()
	return next, nil
}

func (st *Store) SaveUnitOfWork(ctx context.Context, in UnitOfWorkInput) (models.UnitOfWorkSettings, error) {
	var c form.Checker
	if in.AtomicWritesEnabled == nil {
		c.Add("atomic_writes_enabled", "required", "atomic_writes_enabled is required")
	}
	c.IntRange("timeout_ms", in.TimeoutMS, MinTimeoutMS, MaxTimeoutMS)
	if err := c.Err(""); err != nil {
		return models.UnitOfWorkSettings{}, err
	}
	if err := form.Wait(ctx, st.delay); err != nil {
		return models.UnitOfWorkSettings{}, err
	}

	next := models.UnitOfWorkSettings{AtomicWritesEnabled: *in.AtomicWritesEnabled, TimeoutMS: *in.TimeoutMS}
	st.mu.Lock()
	st.s.UnitOfWork = next
	st.mu.Unlock()
	return next, nil
}
