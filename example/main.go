package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	hashtable "github.com/gadilabi/hash-table"
)

type entry struct {
	text string
}

func main() {
	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	ht, err := hashtable.New[*entry](50, hashtable.WithLogger(zl))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	defer ht.Destroy()

	ht.SetDestructor(func(e *entry) {
		fmt.Printf("released %q\n", e.text)
	})

	fmt.Printf("Table created with %d slots\n", ht.Cap())

	for i := 0; i < 15; i++ {
		key := fmt.Sprintf("key %d", i)
		if _, err := ht.Insert(key, &entry{text: fmt.Sprintf("value %d", i)}); err != nil {
			log.Fatalf("Failed to insert %q: %v", key, err)
		}
	}

	fmt.Printf("Inserted 15 entries, capacity now %d\n", ht.Cap())

	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("key %d", i)
		if err := ht.Delete(key); err != nil {
			log.Fatalf("Failed to delete %q: %v", key, err)
		}
	}

	outcome, err := ht.Insert("key 3", &entry{text: "value 3 updated"})
	if err != nil {
		log.Fatalf("Failed to update key 3: %v", err)
	}
	fmt.Printf("key 3 %s\n", outcome)

	for i := 0; i < 15; i++ {
		key := fmt.Sprintf("key %d", i)
		if e, found := ht.Get(key); found {
			fmt.Printf("%s => %s\n", key, e.text)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	s := ht.Stats()
	fmt.Printf("count=%d capacity=%d resizes=%d longest_probe=%d\n",
		s.Count, s.Capacity, s.Resizes, s.LongestProbe)
}
