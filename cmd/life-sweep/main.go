package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"
)

func main() {
	cfg := sweepConfig{}
	flag.IntVar(&cfg.width, "w", 256, "grid width in cells")
	flag.IntVar(&cfg.height, "h", 256, "grid height in cells")
	flag.IntVar(&cfg.steps, "steps", 40, "generations to simulate per run")
	flag.IntVar(&cfg.runs, "runs", 8, "number of consecutive seeds to simulate")
	flag.Int64Var(&cfg.seed, "seed", 42, "first seed of the sweep")
	flag.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "parallel runs")
	printGrid := flag.Bool("print", false, "print the final grid of the first run")
	flag.Parse()

	fmt.Printf("Simulating %d runs of %d generations on %dx%d (%d workers)\n",
		cfg.runs, cfg.steps, cfg.width, cfg.height, cfg.workers)

	start := time.Now()
	results, err := sweep(cfg)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	var stepTime time.Duration
	for _, res := range results {
		extinct := "-"
		if res.extinctAt >= 0 {
			extinct = fmt.Sprint(res.extinctAt)
		}
		fmt.Printf("seed=%d initial=%d final=%d peak=%d extinct=%s gen=%d elapsed=%s\n",
			res.seed, res.initial, res.final, res.peak, extinct, res.generation, res.elapsed.Round(time.Microsecond))
		stepTime += res.elapsed
	}
	fmt.Printf("\nTotal: wall %s, stepping %s\n", elapsed.Round(time.Millisecond), stepTime.Round(time.Millisecond))

	if *printGrid && len(results) > 0 {
		fmt.Println()
		if err := writeGrid(os.Stdout, results[0].sim); err != nil {
			log.Fatal(err)
		}
	}
}
