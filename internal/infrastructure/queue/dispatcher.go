package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/medconnect/portal-api/internal/api/metrics"
	"github.com/medconnect/portal-api/internal/core/ports"
	"github.com/medconnect/portal-api/internal/infrastructure/picture"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes picture conversion jobs to a fixed set of workers using
// consistent hashing on the draft ID. Jobs for one draft are therefore
// processed in order, so a re-selected picture's conversion lands after the
// first and its completion is the value the draft keeps: last completion
// wins.
type Dispatcher struct {
	workers []chan ports.ConversionJob
	drafts  ports.PictureDrafts
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, drafts ports.PictureDrafts, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ConversionJob, numWorkers),
		drafts:  drafts,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ConversionJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its draft ID.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.ConversionJob) {
	d.workers[d.shardIndex(job.DraftID)] <- job
}

// shardIndex maps a draft ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(draftID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(draftID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ConversionJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			d.process(id, job)
		}
	}
}

func (d *Dispatcher) process(workerID int, job ports.ConversionJob) {
	start := time.Now()

	dataURI, err := picture.EncodeDataURI(job.Data)
	if err != nil {
		metrics.PictureConversionsTotal.WithLabelValues("error").Inc()
		d.log.Error().Err(err).
			Str("draft_id", job.DraftID).
			Str("filename", job.Filename).
			Int("worker_id", workerID).
			Msg("picture conversion failed")
		return
	}

	d.drafts.SetPicture(job.DraftID, dataURI)

	metrics.PictureConversionsTotal.WithLabelValues("ok").Inc()
	metrics.PictureConversionDuration.Observe(time.Since(start).Seconds())
	d.log.Debug().
		Str("draft_id", job.DraftID).
		Int("bytes", len(job.Data)).
		Int("worker_id", workerID).
		Msg("picture converted")
}
