package openaddr

/*
	This hash table implementation uses a closed hashing (open addressing)
	technique with linear probing for resolving any collisions. The basic
	principal is:
	-----------------------
	1) Calculate the initial index of the entry as key mod capacity
	2) Search the slot array linearly from there, wrapping at the end
	3) An empty slot ends the search; a slot already holding the key is an
	   update in place
	4) Deleting leaves a tombstone instead of an empty slot, so probe
	   sequences that ran past the deleted entry stay intact; lookups and
	   inserts probe straight through tombstones
	5) The table doubles once it is three quarters full, rehoming every
	   live entry and dropping the tombstones
	Every probe loop is bounded by one full wrap of the slot array, so no
	operation can spin on a table with no empty slots left.
*/
