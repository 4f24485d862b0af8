package chained

const (
	// DefaultTableSize is the bucket count used when the caller does not
	// supply an initial capacity
	DefaultTableSize = 10

	// growth fires after an insert once the mean bucket depth, taken as
	// count over capacity under truncating integer division, reaches this
	maxMeanDepth = 3
)

// entry is a key value pair that is found in each bucket
type entry struct {
	key int
	val int
}

// entryNode is a node in part of our linked list
type entryNode struct {
	entry
	next *entryNode
}

// bucket represents a single slot in the HashTable array
type bucket struct {
	head *entryNode
}

// append adds an entry at the tail of the bucket. Entries sharing a key
// coexist; search and delete act on the oldest one.
func (b *bucket) append(key, val int) {
	newNode := &entryNode{
		entry: entry{
			key: key,
			val: val,
		},
	}
	if b.head == nil {
		b.head = newNode
		return
	}
	current := b.head
	for current.next != nil {
		current = current.next
	}
	current.next = newNode
}

// search returns the value of the first entry matching key
func (b *bucket) search(key int) (int, bool) {
	current := b.head
	for current != nil {
		if current.entry.key == key {
			return current.entry.val, true
		}
		current = current.next
	}
	return 0, false
}

// scan walks the bucket in insertion order for as long as the iterator
// function continues to be true
func (b *bucket) scan(it func(key, val int) bool) {
	current := b.head
	for current != nil {
		if !it(current.entry.key, current.entry.val) {
			return
		}
		current = current.next
	}
}

// delete unlinks the first entry matching key
func (b *bucket) delete(key int) (int, bool) {
	if b.head == nil {
		return 0, false
	}
	if b.head.entry.key == key {
		ret := b.head.entry.val
		b.head = b.head.next
		return ret, true
	}
	previous := b.head
	for previous.next != nil {
		if previous.next.entry.key == key {
			ret := previous.next.entry.val
			previous.next = previous.next.next
			return ret, true
		}
		previous = previous.next
	}
	return 0, false
}

// HashTable represents a separate chaining hashtable implementation
// mapping int keys to int values. Unlike the openaddr variant, putting a
// key that is already present appends a second entry instead of updating
// the first; Get and Del then act on the oldest entry for that key. Keys
// are assumed to be non-negative. A HashTable is not safe for concurrent
// use.
type HashTable struct {
	capacity int
	count    int
	buckets  []bucket
}

// NewHashTable returns a new HashTable instantiated with the specified
// capacity, or DefaultTableSize if size is not positive
func NewHashTable(size int) *HashTable {
	if size < 1 {
		size = DefaultTableSize
	}
	return &HashTable{
		capacity: size,
		buckets:  make([]bucket, size),
	}
}

// Put appends a key value entry to its bucket unconditionally.
// Put can be considered the exported version of the insert call
func (t *HashTable) Put(key, value int) {
	t.insert(key, value)
}

// insert appends the entry and then evaluates the growth check
func (t *HashTable) insert(key, value int) {
	// mod the key to get the bucket index
	i := key % t.capacity
	t.buckets[i].append(key, value)
	t.count++
	t.grow()
}

// grow is a no-op until the mean bucket depth reaches maxMeanDepth. When
// it fires the table doubles and every entry is rehomed by key mod the
// new capacity, walking the old buckets in index order and appending in
// bucket order. Relative order within a bucket is preserved; entries from
// different old buckets landing in the same new bucket interleave in old
// bucket iteration order. The table never shrinks.
func (t *HashTable) grow() {
	if t.count/t.capacity < maxMeanDepth {
		return
	}
	newCap := t.capacity * 2
	newBuckets := make([]bucket, newCap)
	for i := 0; i < len(t.buckets); i++ {
		t.buckets[i].scan(func(key, val int) bool {
			newBuckets[key%newCap].append(key, val)
			return true
		})
	}
	t.capacity = newCap
	t.buckets = newBuckets
}

// Get returns the value of the oldest entry for a given key, or returns
// false if none could be found.
// Get can be considered the exported version of the lookup call
func (t *HashTable) Get(key int) (int, bool) {
	return t.lookup(key)
}

// lookup scans the target bucket in order for the first match
func (t *HashTable) lookup(key int) (int, bool) {
	// mod the key to get the bucket index
	i := key % t.capacity
	// check if the chain is empty
	if t.buckets[i].head == nil {
		return 0, false
	}
	// not empty, lets look for it in the list
	return t.buckets[i].search(key)
}

// Del removes the oldest entry for a given key and returns the removed
// value, or returns false if none could be found; deleting an absent key
// is a no-op. Del can be considered the exported version of the delete
// call
func (t *HashTable) Del(key int) (int, bool) {
	return t.delete(key)
}

// delete unlinks the first match from the target bucket
func (t *HashTable) delete(key int) (int, bool) {
	// mod the key to get the bucket index
	i := key % t.capacity
	val, ok := t.buckets[i].delete(key)
	if ok {
		t.count--
	}
	return val, ok
}

// Len returns the number of entries currently in the HashTable, counting
// every coexisting duplicate
func (t *HashTable) Len() int {
	return t.count
}

// Cap returns the current bucket count of the HashTable
func (t *HashTable) Cap() int {
	return t.capacity
}

// PercentFull returns the mean bucket depth of the HashTable
func (t *HashTable) PercentFull() float64 {
	return float64(t.count) / float64(t.capacity)
}

// Close releases the backing array. Calling any method on the HashTable
// after this will most likely result in a panic
func (t *HashTable) Close() {
	t.buckets = nil
	t.capacity = 0
	t.count = 0
}
