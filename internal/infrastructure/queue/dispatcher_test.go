package queue

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medconnect/portal-api/internal/core/ports"
	"github.com/medconnect/portal-api/internal/infrastructure/picture"
)

func encodeForTest(data []byte) (string, error) {
	return picture.EncodeDataURI(data)
}

type recordingDrafts struct {
	mu       sync.Mutex
	pictures map[string]string
	writes   int
}

func newRecordingDrafts() *recordingDrafts {
	return &recordingDrafts{pictures: make(map[string]string)}
}

func (r *recordingDrafts) SetPicture(draftID, dataURI string) {
	r.mu.Lock()
	r.pictures[draftID] = dataURI
	r.writes++
	r.mu.Unlock()
}

func (r *recordingDrafts) Picture(draftID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pic, ok := r.pictures[draftID]
	return pic, ok
}

func waitForWrites(t *testing.T, drafts *recordingDrafts, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		drafts.mu.Lock()
		done := drafts.writes >= n
		drafts.mu.Unlock()
		if done {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d draft writes", n)
}

func TestDispatcher_ConvertsAndStores(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	drafts := newRecordingDrafts()
	d := NewDispatcher(2, drafts, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.ConversionJob{DraftID: "d1", Filename: "a.png", Data: []byte("\x89PNG\r\n\x1a\npayload")})
	waitForWrites(t, drafts, 1)

	pic, ok := drafts.Picture("d1")
	if !ok {
		t.Fatalf("draft picture missing")
	}
	if !strings.HasPrefix(pic, "data:image/png;base64,") {
		t.Fatalf("unexpected data URI: %s", pic)
	}
}

// Two uploads for the same draft land on the same worker and are processed
// in order, so the second completion is the value that sticks.
func TestDispatcher_LastCompletionWins(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	drafts := newRecordingDrafts()
	d := NewDispatcher(4, drafts, zerolog.Nop())
	d.Start(ctx)

	first := []byte("\x89PNG\r\n\x1a\nfirst")
	second := []byte("\x89PNG\r\n\x1a\nsecond-image")
	d.Enqueue(ports.ConversionJob{DraftID: "draft-9", Data: first})
	d.Enqueue(ports.ConversionJob{DraftID: "draft-9", Data: second})

	waitForWrites(t, drafts, 2)

	want, err := encodeForTest(second)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, _ := drafts.Picture("draft-9")
	if got != want {
		t.Fatalf("expected second conversion to win")
	}
}

func TestDispatcher_EmptyPayloadDropped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	drafts := newRecordingDrafts()
	d := NewDispatcher(1, drafts, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.ConversionJob{DraftID: "d-empty"})
	// Follow with a valid job on the same shard so we can observe the queue drain.
	d.Enqueue(ports.ConversionJob{DraftID: "d-empty2", Data: []byte("\x89PNG\r\n\x1a\nx")})
	waitForWrites(t, drafts, 1)

	if _, ok := drafts.Picture("d-empty"); ok {
		t.Fatalf("empty payload must not produce a picture")
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, newRecordingDrafts(), zerolog.Nop())
	for _, id := range []string{"a", "b", "draft-123"} {
		if d.shardIndex(id) != d.shardIndex(id) {
			t.Fatalf("shard index not deterministic for %s", id)
		}
		if idx := d.shardIndex(id); idx < 0 || idx >= 8 {
			t.Fatalf("shard index out of range: %d", idx)
		}
	}
}
