// Command dice-sweep rolls the same set of dice in many independent headless
// trays and reports the distribution of totals.
package main

import (
	"flag"
	"io"
	"log"
	"math"
	"runtime"
	"sort"
	"strings"
	"time"

	"dmscreen/internal/app"
	"dmscreen/internal/dice"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type trial struct {
	seed int64
}

type trialResult struct {
	seed    int64
	total   int
	ticks   int
	escaped int
	err     error
}

func main() {
	cfg := app.NewConfig()
	if err := app.ParseEnv(cfg); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	trials := flag.Int("trials", 500, "number of independent rolls")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()
	if *workers < 1 {
		*workers = 1
	}
	if len(cfg.Dice) == 0 {
		cfg.Dice = []string{"d6", "d20"}
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	lo, hi, err := totalRange(cfg.Dice)
	if err != nil {
		log.Fatal(err)
	}
	p := message.NewPrinter(language.English)
	p.Printf("Rolling %s %d times (%d workers)\n", strings.Join(cfg.Dice, "+"), *trials, *workers)

	results := make(chan trialResult)
	var g errgroup.Group
	g.SetLimit(*workers)

	go func() {
		for i := 0; i < *trials; i++ {
			job := trial{seed: cfg.Seed + int64(i)}
			g.Go(func() error {
				results <- runTrial(*cfg, job)
				return nil
			})
		}
		_ = g.Wait()
		close(results)
	}()

	start := time.Now()
	counts := make(map[int]int)
	var sum, ticks, escaped, failed int
	for res := range results {
		if res.err != nil {
			failed++
			log.Printf("seed %d: %v", res.seed, res.err)
			continue
		}
		counts[res.total]++
		sum += res.total
		ticks += res.ticks
		escaped += res.escaped
	}
	done := *trials - failed
	if done == 0 {
		log.Fatal("no trials completed")
	}

	totals := make([]int, 0, len(counts))
	peak := 0
	for total, n := range counts {
		totals = append(totals, total)
		if n > peak {
			peak = n
		}
	}
	sort.Ints(totals)
	for _, total := range totals {
		n := counts[total]
		bar := strings.Repeat("#", int(math.Round(40*float64(n)/float64(peak))))
		p.Printf("%4d %8d %s\n", total, n, bar)
	}

	p.Printf("\nRange [%d, %d]  mean %.2f (expected %.2f)\n",
		lo, hi, float64(sum)/float64(done), expectedMean(cfg.Dice))
	p.Printf("Mean settle %.1f ticks, %d dice left the tray, %d failures, %s elapsed\n",
		float64(ticks)/float64(done), escaped, failed, time.Since(start).Round(time.Millisecond))
}

// runTrial builds a private tray, rolls once and ticks until the result is in.
func runTrial(cfg app.Config, job trial) trialResult {
	cfg.Seed = job.seed
	tray, err := app.NewTray(&cfg, log.New(io.Discard, "", 0))
	if err != nil {
		return trialResult{seed: job.seed, err: err}
	}
	tray.Roll()
	res := trialResult{seed: job.seed}
	for tray.Rolling() {
		tray.Tick()
		res.ticks++
	}
	bounds := tray.Bounds()
	for _, d := range tray.Dice() {
		if !bounds.Contains(d.Body.Position) {
			res.escaped++
		}
	}
	res.total = tray.Result().Total
	return res
}

func totalRange(names []string) (int, int, error) {
	lo, hi := 0, 0
	for _, name := range names {
		t, err := dice.ParseType(name)
		if err != nil {
			return 0, 0, err
		}
		lo++
		hi += t.Faces()
	}
	return lo, hi, nil
}

func expectedMean(names []string) float64 {
	mean := 0.0
	for _, name := range names {
		if t, err := dice.ParseType(name); err == nil {
			mean += float64(t.Faces()+1) / 2
		}
	}
	return mean
}
