package archive

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/automoto/puppethands/recording"
)

// ErrQueueFull is returned by Writer.Save when the archive is behind.
var ErrQueueFull = errors.New("archive: queue full")

// recordingSaver is the part of ClickHouseDB the writer needs.
type recordingSaver interface {
	SaveRecording(ctx context.Context, id string, rec recording.Recording, sealedAt time.Time) error
}

type job struct {
	id       string
	rec      recording.Recording
	sealedAt time.Time
}

// Writer queues sealed recordings from the tick goroutine and writes them
// on its own goroutine so a slow database never stalls the simulation.
type Writer struct {
	db   recordingSaver
	jobs chan job
	now  func() time.Time
	done chan struct{}
}

func NewWriter(db recordingSaver, buffer int) *Writer {
	return &Writer{
		db:   db,
		jobs: make(chan job, buffer),
		now:  time.Now,
		done: make(chan struct{}),
	}
}

// Save queues rec for archiving. It never blocks.
func (w *Writer) Save(id string, rec recording.Recording) error {
	select {
	case w.jobs <- job{id: id, rec: rec, sealedAt: w.now()}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run writes queued recordings until ctx is cancelled, then drains what is
// left with a short deadline. Run must be called at most once.
func (w *Writer) Run(ctx context.Context) {
	defer close(w.done)
	log.Println("[archive] writer starting")
	for {
		select {
		case <-ctx.Done():
			w.drain()
			log.Println("[archive] writer stopped")
			return
		case j := <-w.jobs:
			w.write(ctx, j)
		}
	}
}

// Done is closed once Run has drained the queue and returned.
func (w *Writer) Done() <-chan struct{} {
	return w.done
}

func (w *Writer) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case j := <-w.jobs:
			w.write(ctx, j)
		default:
			return
		}
	}
}

func (w *Writer) write(ctx context.Context, j job) {
	if err := w.db.SaveRecording(ctx, j.id, j.rec, j.sealedAt); err != nil {
		log.Printf("[archive] %v", err)
		return
	}
	log.Printf("[archive] recording %s archived (%d snapshots)", j.id, j.rec.Len())
}
