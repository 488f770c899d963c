// Command zoowalk searches the zoo for the shortest walk that visits every
// enclosure, entering at D and leaving at F, and prints every covering walk
// it found ranked by distance.
//
// Parameters come from a YAML file (see package config); flags override it.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/lvlath/zoowalk/builder"
	"github.com/lvlath/zoowalk/config"
	"github.com/lvlath/zoowalk/trial"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()

	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		klog.Errorf("zoowalk: %v", err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

// run parses args, performs the search and writes the report to out.
// An interrupted search still reports what it collected.
func run(ctx context.Context, args []string, out io.Writer) error {
	fset := flag.NewFlagSet("zoowalk", flag.ContinueOnError)
	klog.InitFlags(fset)
	if err := fset.Set("logtostderr", "true"); err != nil {
		return errors.Wrap(err, "klog flags")
	}
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          false,
	})

	var (
		cfgPath  = fset.String("config", "", "path to a YAML config file (default $"+config.EnvConfigPath+" or ./"+config.ConfigFileName+")")
		attempts = fset.Int("attempts", 0, "number of walk attempts")
		seed     = fset.Int64("seed", 0, "random seed; 0 picks one from the clock")
		workers  = fset.Int("workers", 0, "goroutines sharing the attempts")
		verify   = fset.Bool("verify", false, "re-check every covering walk against the walk rules")
	)
	if err := fset.Parse(args); err != nil {
		return err
	}

	var (
		cfg  *config.Config
		path string
		err  error
	)
	if *cfgPath != "" {
		cfg, path, err = config.LoadFromPath(*cfgPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return err
	}
	if path != "" {
		klog.V(1).Infof("config: %s", path)
	}

	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "attempts":
			cfg.Attempts = *attempts
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		case "verify":
			cfg.Verify = *verify
		}
	})
	if err = cfg.Validate(); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	klog.Infof("seed %d", cfg.Seed)

	g, err := builder.Zoo()
	if err != nil {
		return errors.Wrap(err, "build zoo")
	}

	set, stats, runErr := trial.Run(ctx, g, cfg.TrialOptions())
	if set == nil {
		return errors.Wrap(runErr, "search")
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return errors.Wrap(runErr, "search")
	}
	if runErr != nil {
		klog.Warningf("interrupted after %d of %d attempts", stats.Attempts, cfg.Attempts)
	}

	if _, err = set.Rank().WriteTo(out); err != nil {
		return errors.Wrap(err, "write report")
	}

	return nil
}
