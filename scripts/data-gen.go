/*
	Basic script that generates churn-heavy random data to grow the log for testing.
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/logan-bobo/spark-kv/core"
)

const (
	// Fixed universe
	totalKeys   = 100
	totalValues = 100

	// Per-cycle behavior
	keysPerCycleWrite  = 20
	keysPerCycleDelete = 10

	progressEvery = 500
)

func main() {
	dir := flag.String("dir", core.DefaultDirectoryPath, "directory holding the store")
	cycles := flag.Int("cycles", 5000, "number of write/delete/rewrite cycles")
	flag.Parse()

	start := time.Now()
	fmt.Println("Starting spark-kv churn-heavy load generator")

	keys := makeKeys(totalKeys)
	values := makeValues(totalValues)

	store, err := core.Open(*dir, core.WithSyncMode(core.SyncNever))
	if err != nil {
		fmt.Println("open error:", err)
		return
	}
	defer store.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for cycle := 1; cycle <= *cycles; cycle++ {

		// ---- WRITE / OVERWRITE PHASE ----
		for i := 0; i < keysPerCycleWrite; i++ {
			key := keys[rng.Intn(len(keys))]
			val := values[rng.Intn(len(values))]

			if err := store.Set(key, val); err != nil {
				fmt.Println("set error:", err)
				return
			}
		}

		// ---- DELETE PHASE ----
		for i := 0; i < keysPerCycleDelete; i++ {
			key := keys[rng.Intn(len(keys))]

			if err := store.Remove(key); err != nil && !errors.Is(err, core.ErrKeyNotFound) {
				fmt.Println("remove error:", err)
				return
			}
		}

		// ---- REWRITE PHASE (forces overwrite garbage) ----
		for i := 0; i < keysPerCycleWrite/2; i++ {
			key := keys[rng.Intn(len(keys))]
			val := values[rng.Intn(len(values))]

			if err := store.Set(key, val); err != nil {
				fmt.Println("rewrite error:", err)
				return
			}
		}

		if cycle%progressEvery == 0 {
			fmt.Printf("completed %d cycles, log at %d bytes\n", cycle, store.Size())
		}
	}

	fmt.Printf("Load finished in %v: %d live keys, %d bytes of log\n", time.Since(start), store.Len(), store.Size())
}

func makeKeys(n int) []string {
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = fmt.Sprintf("key-%03d", i)
	}
	return keys
}

func makeValues(n int) []string {
	values := make([]string, n)
	for i := 0; i < n; i++ {
		values[i] = fmt.Sprintf("value-%03d-xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", i)
	}
	return values
}
