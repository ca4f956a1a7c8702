// hermes-keygen: generates the key material for one trust boundary and
// persists it as named blobs under a directory.
//
// Usage:
//
//	hermes-keygen --dir=/tmp/hermes --logn=13
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hpdic/hermes/core/bfvwrapper"
)

var (
	dir  = flag.String("dir", "/tmp/hermes", "Directory for key blobs")
	logN = flag.Int("logn", bfvwrapper.DefaultLogN, "Ring dimension log2 (12-15)")
)

func main() {
	flag.Parse()

	start := time.Now()
	he, err := bfvwrapper.NewHeContext(*logN)
	if err != nil {
		log.Fatalf("context setup failed: %v", err)
	}
	fmt.Printf("Context ready in %.2fs (logN=%d, %d slots, depth %d)\n",
		time.Since(start).Seconds(), *logN, he.Slots(), he.Depth())

	if err := bfvwrapper.SaveKeys(he, bfvwrapper.DirStore{Dir: *dir}); err != nil {
		log.Fatalf("key persistence failed: %v", err)
	}

	fp, err := he.Fingerprint()
	if err != nil {
		log.Fatalf("fingerprint failed: %v", err)
	}
	fmt.Printf("Keys written to %s\n", *dir)
	fmt.Printf("Lineage %s\n", fp)
}
