package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/luhtaf/seqcompact/internal/compact"
	"github.com/luhtaf/seqcompact/internal/config"
	"github.com/luhtaf/seqcompact/internal/log"
	"github.com/luhtaf/seqcompact/internal/parse"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", os.Getenv("CONFIG_PATH"), "Path to YAML config file (optional)")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil { panic(err) }
	}
	if err := log.InitWithConfig(cfg.Logging.Level, cfg.Logging.Format); err != nil { panic(err) }
	defer log.Sync()

	seq, err := parse.Int64s(cfg.Input.Values)
	if err != nil { log.L.Fatalw("parse input", "err", err, "values", cfg.Input.Values) }
	if !parse.Sorted(seq) {
		log.L.Warnw("input not sorted; result reflects adjacent comparisons only", "values", cfg.Input.Values)
	}

	log.L.Debugw("compacting", "n", len(seq))
	k := compact.Compact(seq)
	log.L.Infow("compacted", "n", len(seq), "distinct", k)

	fmt.Printf("Length after removing duplicates: %d\n", k)
	if cfg.Input.ShowPrefix {
		fmt.Printf("Prefix: %v\n", seq[:k])
	}
}
