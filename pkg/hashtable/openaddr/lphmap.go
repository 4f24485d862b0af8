package openaddr

const (
	// DefaultTableSize is the slot count used when the caller does not
	// supply an initial capacity
	DefaultTableSize = 10

	// growth fires before a new entry is placed once the table is three
	// quarters full, expressed as a ratio to keep the check in integers
	loadFactorNum = 3
	loadFactorDen = 4
)

// slot states; an explicit state byte keeps key 0 usable and gives
// deleted slots a tombstone state distinct from never-used
const (
	slotEmpty uint8 = iota
	slotUsed
	slotDead
)

// slot is a single position in the HashTable array
type slot struct {
	state uint8
	key   int
	val   int
}

// HashTable represents an open addressing (linear probing) hashtable
// implementation mapping int keys to int values. Keys are assumed to be
// non-negative; negative keys inherit the sign of Go's native modulo and
// are out of contract. A HashTable is not safe for concurrent use.
type HashTable struct {
	capacity int
	used     int // live entries
	dead     int // tombstones still holding probe chains together
	slots    []slot
}

// NewHashTable returns a new HashTable instantiated with the specified
// capacity, or DefaultTableSize if size is not positive
func NewHashTable(size int) *HashTable {
	if size < 1 {
		size = DefaultTableSize
	}
	return &HashTable{
		capacity: size,
		slots:    make([]slot, size),
	}
}

// resize doubles the HashTable. It makes a new slot array of the new
// size and rehomes every live entry into it; tombstones are dropped
// along the way, so a resize doubles as a compaction. The table never
// shrinks.
func (t *HashTable) resize() {
	newCap := t.capacity * 2
	newSlots := make([]slot, newCap)
	for i := 0; i < len(t.slots); i++ {
		if t.slots[i].state != slotUsed {
			continue
		}
		// probe the new array for an empty slot
		j := t.slots[i].key % newCap
		for newSlots[j].state == slotUsed {
			j = (j + 1) % newCap
		}
		newSlots[j] = t.slots[i]
	}
	t.capacity = newCap
	t.dead = 0
	t.slots = newSlots
}

// Put inserts a key value entry. If the key is already present its value
// is overwritten in place and the entry count is unchanged.
// Put can be considered the exported version of the insert call
func (t *HashTable) Put(key, value int) {
	t.insert(key, value)
}

// insert places a key value entry, growing the table first if placing a
// new entry would push it past the load factor
func (t *HashTable) insert(key, value int) {
	// check and see if we need to resize before placing the entry
	if loadFactorDen*t.used >= loadFactorNum*t.capacity {
		t.resize()
	}
	// mod the key to get the initial index
	i := key % t.capacity
	start := i
	// first tombstone on the probe path, reclaimed for a new key
	reuse := -1
	// search the position linearly
	for {
		if t.slots[i].state == slotUsed && t.slots[i].key == key {
			// existing key, update the value in place
			t.slots[i].val = value
			return
		}
		if t.slots[i].state == slotDead && reuse < 0 {
			reuse = i
		}
		if t.slots[i].state == slotEmpty {
			break
		}
		// keep on probing
		i = (i + 1) % t.capacity
		if i == start {
			// full wrap with no empty slot; growth keeps the live count
			// under three quarters, so a tombstone was seen on the way
			break
		}
	}
	if reuse >= 0 {
		i = reuse
		t.dead--
	}
	t.slots[i] = slot{state: slotUsed, key: key, val: value}
	t.used++
}

// Get returns the value for a given key, or returns false if none could
// be found. Get can be considered the exported version of the lookup call
func (t *HashTable) Get(key int) (int, bool) {
	return t.lookup(key)
}

// lookup scans forward from the key's home index until it finds the key,
// hits a never-used slot, or wraps back around to where it started
func (t *HashTable) lookup(key int) (int, bool) {
	// mod the key to get the initial index
	i := key % t.capacity
	// remember the starting index to detect a full loop
	start := i
	for t.slots[i].state != slotEmpty {
		if t.slots[i].state == slotUsed && t.slots[i].key == key {
			return t.slots[i].val, true
		}
		// keep on probing, straight through any tombstones
		i = (i + 1) % t.capacity
		if i == start {
			break
		}
	}
	return 0, false
}

// Del removes the entry for a given key and returns the removed value,
// or returns false if none could be found; deleting an absent key is a
// no-op. Del can be considered the exported version of the delete call
func (t *HashTable) Del(key int) (int, bool) {
	return t.delete(key)
}

// delete runs the same bounded probe as lookup and swaps the matched
// slot for a tombstone
func (t *HashTable) delete(key int) (int, bool) {
	// mod the key to get the initial index
	i := key % t.capacity
	// remember the starting index to detect a full loop
	start := i
	for t.slots[i].state != slotEmpty {
		if t.slots[i].state == slotUsed && t.slots[i].key == key {
			oldval := t.slots[i].val
			// leave a tombstone so entries that probed past this slot
			// stay reachable
			t.slots[i] = slot{state: slotDead}
			t.used--
			t.dead++
			return oldval, true
		}
		// keep on probing
		i = (i + 1) % t.capacity
		if i == start {
			break
		}
	}
	return 0, false
}

// Len returns the number of live entries currently in the HashTable
func (t *HashTable) Len() int {
	return t.used
}

// Cap returns the current slot count of the HashTable
func (t *HashTable) Cap() int {
	return t.capacity
}

// PercentFull returns the current load factor of the HashTable
func (t *HashTable) PercentFull() float64 {
	return float64(t.used) / float64(t.capacity)
}

// Close releases the backing array. Calling any method on the HashTable
// after this will most likely result in a panic
func (t *HashTable) Close() {
	t.slots = nil
	t.capacity = 0
	t.used = 0
	t.dead = 0
}
