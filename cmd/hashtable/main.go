package main

import (
	"fmt"
	"strconv"

	"github.com/kvstructs/hashtable"
	"github.com/kvstructs/hashtable/pkg/hashtable/chained"
	"github.com/kvstructs/hashtable/pkg/hashtable/openaddr"
)

func main() {
	fmt.Println("open addressing (linear probing):")
	demo(openaddr.NewHashTable(5))

	fmt.Println("separate chaining:")
	demo(chained.NewHashTable(5))
}

// demo walks a table through the same script regardless of which
// collision strategy backs it
func demo(table hashtable.Table) {
	table.Put(1, 100)
	table.Put(2, 200)
	table.Put(3, 300)

	fmt.Printf("value for key 2: %s\n", lookup(table, 2))

	table.Del(2)

	fmt.Printf("value for key 2 after removal: %s\n", lookup(table, 2))

	for i := 4; i <= 20; i++ {
		table.Put(i, i*100)
	}

	fmt.Printf("value for key 20: %s\n", lookup(table, 20))
	fmt.Printf("entries: %d, capacity: %d\n", table.Len(), table.Cap())
}

func lookup(table hashtable.Table, key int) string {
	val, ok := table.Get(key)
	if !ok {
		return "not found"
	}
	return strconv.Itoa(val)
}
