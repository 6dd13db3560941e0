package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/JaimeStill/shows-api/internal/config"
	"github.com/JaimeStill/shows-api/internal/store"
	"github.com/JaimeStill/shows-api/pkg/lifecycle"
	"github.com/JaimeStill/shows-api/pkg/logging"
)

type options struct {
	all    bool
	file   string
	force  bool
	driver string
}

func main() {
	var (
		all       = flag.Bool("all", false, "Run all seeders")
		seedShows = flag.Bool("shows", false, "Seed shows")
		file      = flag.String("file", "", "External seed file (overrides embedded)")
		force     = flag.Bool("force", false, "Seed even when the store already has data")
		driver    = flag.String("driver", "", "Store driver (overrides config)")
		list      = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if !*all && !*seedShows {
		fmt.Println("usage: seed [-all|-shows] [-file <path>] [-force] [-driver memory|postgres|redis] [-list]")
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	start := time.Now()
	n, err := seed(cfg, lifecycle.New(), options{
		all:    *all,
		file:   *file,
		force:  *force,
		driver: *driver,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("seeded %d records into %s store in %s\n", n, cfg.Store.Driver, time.Since(start).Round(time.Millisecond))
}

// seed opens the configured store on lc, runs the selected seeders, and
// shuts lc down before returning, on success or failure.
func seed(cfg *config.Config, lc *lifecycle.Coordinator, opts options) (n int, err error) {
	defer func() {
		if serr := lc.Shutdown(cfg.ShutdownTimeoutDuration()); serr != nil && err == nil {
			err = fmt.Errorf("shutdown: %w", serr)
		}
	}()

	if opts.driver != "" {
		cfg.Store.Driver = opts.driver
		if err := cfg.Store.Finalize(nil); err != nil {
			return 0, fmt.Errorf("store config invalid: %w", err)
		}
	}

	// Seeders write their own data; the memory store must start empty.
	noSeed := false
	cfg.Store.Seed = &noSeed

	if seeder, ok := getSeeder("shows"); ok {
		s := seeder.(*ShowSeeder)
		s.SetFile(opts.file)
		s.SetForce(opts.force)
	}

	repo, err := store.Open(&cfg.Store, store.Deps{
		Logger:    logging.New(&cfg.Logging),
		Lifecycle: lc,
	})
	if err != nil {
		return 0, fmt.Errorf("store open failed: %w", err)
	}

	if opts.all {
		n, err = runAllSeeders(lc.Context(), repo)
	} else {
		n, err = runSeeder(lc.Context(), repo, "shows")
	}
	if err != nil {
		return n, fmt.Errorf("seeding failed: %w", err)
	}
	return n, nil
}
