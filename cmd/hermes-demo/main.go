// hermes-demo: end-to-end walkthrough of the packed-ciphertext vector
// engine: per-group packing, two-tier encrypted summation, and slot-level
// insert/remove with dense compaction.
//
// Usage:
//
//	hermes-demo --logn=13 --verbose=true
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"

	"github.com/hpdic/hermes/aggregate"
	"github.com/hpdic/hermes/core/bfvwrapper"
	"github.com/hpdic/hermes/packvec"
	"github.com/hpdic/hermes/slotedit"
	"github.com/hpdic/hermes/transport"
	"github.com/hpdic/hermes/utils"
)

var (
	logN    = flag.Int("logn", bfvwrapper.DefaultLogN, "Ring dimension log2 (12-15)")
	verbose = flag.Bool("verbose", true, "Print timing summary")
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose
	timings := utils.NewOpTimings()

	fmt.Println("=== HERMES packed-ciphertext engine demo ===")
	fmt.Printf("Initializing context (logN=%d)...\n", *logN)
	start := time.Now()
	he, err := bfvwrapper.NewHeContext(*logN)
	if err != nil {
		log.Fatalf("context setup failed: %v", err)
	}
	fmt.Printf("Context ready in %.2fs: %d slots, depth %d\n\n",
		time.Since(start).Seconds(), he.Slots(), he.Depth())

	// Two-tier aggregation over two salary groups.
	groups := map[string][]int64{
		"engineering": {5200, 4800},
		"research":    {6000, 5900},
	}
	var locals []*rlwe.Ciphertext
	for name, salaries := range groups {
		g := aggregate.NewPlainAccumulator(he)
		for _, s := range salaries {
			g.Accumulate(s)
		}
		var local *rlwe.Ciphertext
		timings.Time("group.finalize", func() {
			local, err = g.Finalize()
		})
		if err != nil {
			log.Fatalf("group %s: %v", name, err)
		}
		sum, err := packvec.DecodeScalar(he, local)
		if err != nil {
			log.Fatalf("group %s: %v", name, err)
		}
		fmt.Printf("Group %-12s session %s local sum = %d\n", name, g.ID, sum)
		locals = append(locals, local)
	}

	var total *rlwe.Ciphertext
	timings.Time("global.sum", func() {
		total, err = aggregate.GlobalSum(he, locals)
	})
	if err != nil {
		log.Fatalf("global sum: %v", err)
	}
	totalVal, err := packvec.DecodeScalar(he, total)
	if err != nil {
		log.Fatalf("global sum: %v", err)
	}
	fmt.Printf("Global sum               = %d\n\n", totalVal)

	// Slot-level editing with dense compaction.
	salaries := []int64{1000, 2000, 1500}
	ct, k, err := aggregate.PackGroup(he, salaries)
	if err != nil {
		log.Fatalf("pack: %v", err)
	}
	fmt.Printf("Packed vector %v (k=%d)\n", salaries, k)

	budget := slotedit.NewBudget(he)
	if err := budget.Charge(slotedit.RemoveCost(1, k)); err != nil {
		log.Fatalf("budget: %v", err)
	}
	var removed *rlwe.Ciphertext
	timings.Time("slotedit.remove", func() {
		removed, err = slotedit.Remove(he, ct, 1, k)
	})
	if err != nil {
		log.Fatalf("remove: %v", err)
	}
	k--
	after, err := packvec.Decode(he, removed, k)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	fmt.Printf("After Remove(index=1)    %v (k=%d)\n", after, k)

	var inserted *rlwe.Ciphertext
	timings.Time("slotedit.insert", func() {
		inserted, err = slotedit.Insert(he, removed, 1750, k)
	})
	if err != nil {
		log.Fatalf("insert: %v", err)
	}
	k++
	after, err = packvec.Decode(he, inserted, k)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	fmt.Printf("After Insert(1750, k)    %v (k=%d)\n", after, k)

	// Ciphertext transport round trip.
	armored, err := transport.ExportCiphertext(inserted)
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	fmt.Printf("\nArmored ciphertext: %d base64 chars\n", len(armored))
	back, err := transport.ImportCiphertext(armored)
	if err != nil {
		log.Fatalf("import: %v", err)
	}
	again, err := packvec.Decode(he, back, k)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	fmt.Printf("Round-tripped vector     %v\n", again)

	timings.Summary()
}
