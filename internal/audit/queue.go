package audit

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Observer is told about every event the queue accepts or drops.
type Observer interface {
	Recorded(action string)
	Dropped()
}

const (
	batchSize  = 100
	flushEvery = 250 * time.Millisecond
)

type Queue struct {
	log    *Log
	obs    Observer
	logger *zap.Logger
	now    func() time.Time

	ch      chan Event
	done    chan struct{}
	wg      sync.WaitGroup
	start   sync.Once
	stop    sync.Once
	dropped atomic.Uint64
}

// NewQueue buffers up to buf events in front of log. obs may be nil.
func NewQueue(log *Log, buf int, obs Observer, logger *zap.Logger) *Queue {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Queue{
		log:    log,
		obs:    obs,
		logger: logger,
		now:    time.Now,
		ch:     make(chan Event, buf),
		done:   make(chan struct{}),
	}
}

// Start spins up the flush workers. Later calls do nothing.
func (q *Queue) Start(workers int) {
	q.start.Do(func() {
		for i := 0; i < workers; i++ {
			q.wg.Add(1)
			go q.worker()
		}
	})
}

// Record queues an event without blocking. When the buffer is full the
// event is dropped and counted.
func (q *Queue) Record(actor, action, targetID string, meta map[string]any) {
	if action == "" {
		return
	}
	ev := Event{Actor: actor, Action: action, TargetID: targetID, Meta: meta, At: q.now().UTC()}
	select {
	case q.ch <- ev:
		if q.obs != nil {
			q.obs.Recorded(action)
		}
	default:
		q.dropped.Add(1)
		if q.obs != nil {
			q.obs.Dropped()
		}
		q.logger.Warn("audit buffer full; event dropped", zap.String("action", action))
	}
}

func (q *Queue) Dropped() uint64 { return q.dropped.Load() }

// Shutdown stops the workers after they flush what is buffered.
func (q *Queue) Shutdown() {
	q.stop.Do(func() { close(q.done) })
	q.wg.Wait()
}

func (q *Queue) worker() {
	defer q.wg.Done()
	tk := time.NewTicker(flushEvery)
	defer tk.Stop()

	batch := make([]Event, 0, batchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		q.log.Append(batch...)
		batch = batch[:0]
	}

	for {
		select {
		case <-q.done:
			for {
				select {
				case ev := <-q.ch:
					batch = append(batch, ev)
					if len(batch) >= batchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		case ev := <-q.ch:
			batch = append(batch, ev)
			if len(batch) >= batchSize {
				flush()
			}
		case <-tk.C:
			flush()
		}
	}
}
