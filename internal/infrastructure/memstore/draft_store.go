package memstore

import "sync"

// DraftStore holds the converted profile picture for each signup draft.
// Writes overwrite unconditionally: when two conversions for the same draft
// race, the one that completes last is the one the signup will see.
type DraftStore struct {
	mu       sync.RWMutex
	pictures map[string]string
}

func NewDraftStore() *DraftStore {
	return &DraftStore{pictures: make(map[string]string)}
}

func (d *DraftStore) SetPicture(draftID, dataURI string) {
	d.mu.Lock()
	d.pictures[draftID] = dataURI
	d.mu.Unlock()
}

func (d *DraftStore) Picture(draftID string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	pic, ok := d.pictures[draftID]
	return pic, ok
}
