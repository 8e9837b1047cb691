package main

import (
	"flag"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/yenc"
)

func main() {
	var (
		addr    = flag.String("pprof", "", "serve net/http/pprof on this address while running")
		out     = flag.String("memprofile", "mem.prof", "heap profile output path")
		size    = flag.Int("size", 1<<20, "payload size in bytes")
		rounds  = flag.Int("rounds", 100, "encode/decode rounds per quote")
		quoteFl = flag.String("quote", "template", "quote to encode for: double, single or template")
		linger  = flag.Duration("linger", 0, "keep the pprof server up this long after the run")
	)
	flag.Parse()

	q, err := yenc.ParseQuote(*quoteFl)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		go func() {
			log.Println(http.ListenAndServe(*addr, nil))
		}()
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	payload := make([]byte, *size)
	rand.New(rand.NewSource(1)).Read(payload)

	plan, err := yenc.Analyze(payload, q)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("quote=%s size=%d offset=%d escapes=%d fixed-offset escapes=%d",
		q, len(payload), plan.Offset, plan.Escapes, len([]rune(yenc.Encode(payload)))-len(payload))

	start := time.Now()
	var encoded int
	for i := 0; i < *rounds; i++ {
		enc, err := yenc.DynamicEncode(payload, q)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := yenc.Decode(enc); err != nil {
			log.Fatal(err)
		}
		encoded = len(enc)
	}
	elapsed := time.Since(start)
	log.Printf("rounds=%d elapsed=%s per-round=%s encoded-bytes=%d",
		*rounds, elapsed, elapsed/time.Duration(max(*rounds, 1)), encoded)

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
	time.Sleep(*linger)
}
