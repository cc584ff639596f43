// Package reports generates the downloadable system reports.
package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/jobs"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

var ErrUnknownReport = errors.New("reports: unknown report")

// Signer presigns downloads from object storage.
type Signer interface {
	PresignDownload(ctx context.Context, objectKey string) (string, error)
}

type Generated struct {
	ReportID    string    `json:"report_id"`
	RunID       string    `json:"run_id"`
	URL         string    `json:"url"`
	GeneratedAt time.Time `json:"generated_at"`
}

type Options struct {
	Delay       time.Duration
	Placeholder string // used when Signer is nil
	Signer      Signer
	Now         func() time.Time
}

type Service struct {
	opts    Options
	catalog []models.ReportOption
	guard   *jobs.Guard
}

func New(opts Options) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{opts: opts, catalog: DefaultOptions(), guard: jobs.NewGuard()}
}

func DefaultOptions() []models.ReportOption {
	return []models.ReportOption{
		{ID: "users", Title: "Users summary", Icon: "person", Description: "Registered users, roles and activity.", Endpoint: "/reports/users-summary"},
		{ID: "books", Title: "Inventory and catalog", Icon: "book", Description: "Full listing, stock and metadata.", Endpoint: "/reports/book-catalog"},
		{ID: "transactions", Title: "Sales detail", Icon: "trending_up", Description: "Transactions, revenue and regions.", Endpoint: "/reports/sales-transactions"},
		{ID: "publishers", Title: "Publisher performance", Icon: "apartment", Description: "Contribution and published titles.", Endpoint: "/reports/publisher-performance"},
	}
}

func (s *Service) Options() []models.ReportOption {
	out := make([]models.ReportOption, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *Service) Lookup(id string) (models.ReportOption, bool) {
	for _, o := range s.catalog {
		if o.ID == id {
			return o, true
		}
	}
	return models.ReportOption{}, false
}

func (s *Service) Generating(id string) bool { return s.guard.Running(id) }

// Generate waits out the generation delay and returns a download URL. A
// second call for the same report while the first runs fails with
// jobs.ErrBusy.
func (s *Service) Generate(ctx context.Context, id string) (Generated, error) {
	opt, ok := s.Lookup(id)
	if !ok {
		return Generated{}, fmt.Errorf("%w: %q", ErrUnknownReport, id)
	}
	release, err := s.guard.Start(opt.ID)
	if err != nil {
		return Generated{}, err
	}
	defer release()

	if err := form.Wait(ctx, s.opts.Delay); err != nil {
		return Generated{}, err
	}

	run := uuid.NewString()
	out := Generated{ReportID: opt.ID, RunID: run, GeneratedAt: s.opts.Now().UTC()}
	if s.opts.Signer != nil {
		u, err := s.opts.Signer.PresignDownload(ctx, "reports/"+opt.ID+".pdf")
		if err != nil {
			return Generated{}, fmt.Errorf("reports: presign %s: %w", opt.ID, err)
		}
		out.URL = u
		return out, nil
	}
	out.URL = s.opts.Placeholder + "#" + run
	return out, nil
}
