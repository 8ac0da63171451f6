package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"time"

	"lifeline/internal/core"
	"lifeline/internal/life"

	"golang.org/x/sync/errgroup"
)

type scenario struct {
	density int
	seed    int64
}

func (s scenario) String() string {
	return fmt.Sprintf("density=%d%% seed=%d", s.density, s.seed)
}

type scenarioResult struct {
	scenario
	initial    int
	final      int
	peak       int
	settledAt  int
	extinctAt  int
	generation int
}

func main() {
	size := flag.Int("size", 64, "grid edge length")
	generations := flag.Int("generations", 500, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 4, "seeds per density")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	ruleFlag := flag.String("rule", life.Conway.String(), "Life-like rule in B/S notation")
	flag.Parse()

	cfg, rule, err := sweepConfig(*size, *ruleFlag)
	if err != nil {
		log.Fatal(err)
	}

	var sets []scenario
	for density := 5; density <= 95; density += 5 {
		for s := 1; s <= *seeds; s++ {
			sets = append(sets, scenario{density: density, seed: int64(s)})
		}
	}

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers, %d generations, %s)\n",
		len(sets), cfg.GridSize, cfg.GridSize, *workers, *generations, rule)

	results := make([]scenarioResult, len(sets))
	var g errgroup.Group
	g.SetLimit(max(*workers, 1))

	start := time.Now()
	for i, sc := range sets {
		g.Go(func() error {
			results[i] = runScenario(sc, rule, cfg.GridSize, *generations)
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	sort.Slice(results, func(i, j int) bool {
		if results[i].final != results[j].final {
			return results[i].final > results[j].final
		}
		return results[i].density < results[j].density
	})

	fmt.Printf("\nTop 5 by surviving population (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		res := results[i]
		fmt.Printf("%2d) final=%d peak=%d initial=%d settled=%s %s\n",
			i+1, res.final, res.peak, res.initial, settled(res), res.scenario)
	}

	fmt.Println("\nPer density averages:")
	byDensity := map[int][]scenarioResult{}
	for _, res := range results {
		byDensity[res.density] = append(byDensity[res.density], res)
	}
	densities := make([]int, 0, len(byDensity))
	for d := range byDensity {
		densities = append(densities, d)
	}
	sort.Ints(densities)
	for _, d := range densities {
		var initial, final, extinct int
		for _, res := range byDensity[d] {
			initial += res.initial
			final += res.final
			if res.extinctAt >= 0 {
				extinct++
			}
		}
		n := len(byDensity[d])
		fmt.Printf("density=%3d%% initial=%6.1f final=%6.1f extinct=%d/%d\n",
			d, float64(initial)/float64(n), float64(final)/float64(n), extinct, n)
	}
}

// sweepConfig builds the shared scenario config through life.FromMap, which
// falls back to defaults on bad input. Any fallback is reported as an error.
func sweepConfig(size int, rule string) (life.Config, life.Rule, error) {
	r, err := life.ParseRule(rule)
	if err != nil {
		return life.Config{}, life.Rule{}, err
	}
	cfg := life.FromMap(map[string]string{
		"size": strconv.Itoa(size),
		"rule": rule,
	})
	if cfg.GridSize != size {
		return life.Config{}, life.Rule{}, fmt.Errorf("%w: grid size %d must be positive", life.ErrInvalidConfig, size)
	}
	if err := cfg.Validate(); err != nil {
		return life.Config{}, life.Rule{}, err
	}
	return cfg, r, nil
}

func runScenario(sc scenario, rule life.Rule, size, generations int) scenarioResult {
	grid := core.NewGrid(size)
	for _, p := range life.SeedPositions(core.NewRNG(sc.seed), size, sc.density) {
		grid.Set(p, core.Alive)
	}

	res := scenarioResult{scenario: sc, initial: grid.LiveCount(), settledAt: -1, extinctAt: -1}
	res.peak = res.initial
	live := res.initial
	for gen := 1; gen <= generations; gen++ {
		ts := life.Step(grid, rule)
		if len(ts) == 0 {
			res.settledAt = gen
			break
		}
		grid.Apply(ts)
		for _, t := range ts {
			if t.State == core.Alive {
				live++
			} else {
				live--
			}
		}
		res.peak = max(res.peak, live)
		res.generation = gen
		if live == 0 {
			res.extinctAt = gen
			break
		}
	}
	res.final = live
	return res
}

func settled(res scenarioResult) string {
	switch {
	case res.extinctAt >= 0:
		return fmt.Sprintf("extinct@%d", res.extinctAt)
	case res.settledAt >= 0:
		return fmt.Sprintf("still@%d", res.settledAt)
	}
	return fmt.Sprintf("active@%d", res.generation)
}
