package collision

// Tracker records plate labels in encoding order and detects labels whose
// hashes collide. A stack may hold several plates under one label, so repeated
// labels are recorded but never count as a collision.
type Tracker struct {
	labels       map[uint64]string
	labelList    []string
	hasCollision bool
	hasRepeat    bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		labels:    make(map[uint64]string),
		labelList: make([]string, 0),
	}
}

// Track records label under hash. A different label already stored under the
// same hash sets the collision flag.
func (t *Tracker) Track(label string, hash uint64) {
	if existing, ok := t.labels[hash]; ok {
		if existing != label {
			t.hasCollision = true
		} else {
			t.hasRepeat = true
		}
	} else {
		t.labels[hash] = label
	}

	t.labelList = append(t.labelList, label)
}

// HasCollision reports whether two distinct labels share a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// HasRepeat reports whether a label was tracked more than once.
func (t *Tracker) HasRepeat() bool {
	return t.hasRepeat
}

// Labels returns the tracked labels in the order Track was called.
func (t *Tracker) Labels() []string {
	return t.labelList
}

// Count returns the number of tracked labels.
func (t *Tracker) Count() int {
	return len(t.labelList)
}

// Reset clears all state but keeps allocated capacity.
func (t *Tracker) Reset() {
	clear(t.labels)
	t.labelList = t.labelList[:0]
	t.hasCollision = false
	t.hasRepeat = false
}
