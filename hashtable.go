package hashtable

// Table is the surface shared by the two hash table variants in this
// module. Both map integer keys to integer values and resolve collisions
// differently: the openaddr variant stores every entry directly in one
// slot array and probes linearly, the chained variant keeps a per-bucket
// list of entries.
//
// The two variants deliberately disagree on duplicate keys. Putting an
// existing key into an openaddr table overwrites the stored value in
// place; putting it into a chained table appends a second entry, and Get
// and Del operate on the oldest entry for that key.
type Table interface {
	Put(key, value int)
	Get(key int) (int, bool)
	Del(key int) (int, bool)
	Len() int
	Cap() int
}
