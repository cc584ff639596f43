package admin

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/5w1tchy/nexus-admin/internal/audit"
	"github.com/5w1tchy/nexus-admin/internal/catalog"
	"github.com/5w1tchy/nexus-admin/internal/profile"
	"github.com/5w1tchy/nexus-admin/internal/reports"
	"github.com/5w1tchy/nexus-admin/internal/settings"
)

// Recorder queues audit events without blocking the request.
type Recorder interface {
	Record(actor, action, targetID string, meta map[string]any)
}

type Handler struct {
	Cat         *catalog.Catalog
	AuditLog    *audit.Log
	Recorder    Recorder
	Profile     *profile.Store
	Uploader    profile.Uploader // nil when object storage is off
	Settings    *settings.Store
	Maintenance *settings.Maintenance
	Reports     *reports.Service
	RDB         *redis.Client // nil disables the dashboard cache
	StatsTTL    time.Duration
	Actor       string
	Log         *zap.Logger
}

func NewHandler(cat *catalog.Catalog, auditLog *audit.Log, rec Recorder, rdb *redis.Client, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Cat:         cat,
		AuditLog:    auditLog,
		Recorder:    rec,
		Profile:     profile.NewStore(profile.Default()),
		Settings:    settings.NewStore(settings.Defaults(), 0),
		Maintenance: settings.NewMaintenance(),
		Reports:     reports.New(reports.Options{}),
		RDB:         rdb,
		StatsTTL:    StatsCacheDuration,
		Actor:       "admin",
		Log:         logger,
	}
}
