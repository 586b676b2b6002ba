package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitry-maltsev/spelling-corrector/config"
	"github.com/dmitry-maltsev/spelling-corrector/corpus"
	"github.com/dmitry-maltsev/spelling-corrector/corrector"
	"github.com/dmitry-maltsev/spelling-corrector/dictionary"
	"github.com/dmitry-maltsev/spelling-corrector/normalize"
	"github.com/dmitry-maltsev/spelling-corrector/symdelete"
)

// buildStats reports the build-time numbers the REPL prints per §6: build
// time, memory delta, entry count.
type buildStats struct {
	Duration   time.Duration
	MemDeltaKB int64
	Entries    int
}

// buildEngine loads dictPath (and, if set, an enrichment corpus at
// corpusPath) and constructs a ready-to-query corrector.Corrector, timing
// the whole build and sampling heap deltas the way a host would report
// them in the REPL banner.
func buildEngine(cfg config.Config, dictPath, corpusPath string) (*corrector.Corrector, buildStats, error) {
	var statsBefore, statsAfter runtime.MemStats
	runtime.ReadMemStats(&statsBefore)
	start := time.Now()

	scheme, err := config.ParseKeyScheme(cfg.KeyScheme)
	if err != nil {
		return nil, buildStats{}, err
	}

	entries, err := dictionary.LoadAll(dictPath)
	if err != nil {
		return nil, buildStats{}, fmt.Errorf("load dictionary: %w", err)
	}

	if corpusPath == "" {
		corpusPath = cfg.CorpusPath
	}
	if corpusPath != "" {
		overrides, err := corpus.Load(corpusPath)
		if err != nil {
			return nil, buildStats{}, fmt.Errorf("load corpus: %w", err)
		}
		asMap := make(map[string]int64, len(entries))
		for _, e := range entries {
			asMap[e.Word] = e.Frequency
		}
		corpus.Merge(asMap, overrides)
		for i, e := range entries {
			entries[i].Frequency = asMap[e.Word]
		}
	}

	index := symdelete.New(cfg.MaxEditDistance, cfg.PrefixLength, scheme)
	c := corrector.New(index)
	if cfg.Normalize {
		c.Normalizer = normalize.New()
	}

	for _, e := range entries {
		if err := c.AddEntry(e.Word, e.Frequency); err != nil {
			return nil, buildStats{}, fmt.Errorf("add %q: %w", e.Word, err)
		}
	}

	duration := time.Since(start)
	runtime.ReadMemStats(&statsAfter)

	stats := buildStats{
		Duration:   duration,
		MemDeltaKB: int64(statsAfter.HeapAlloc-statsBefore.HeapAlloc) / 1024,
		Entries:    len(entries),
	}

	return c, stats, nil
}

func printBuildBanner(stats buildStats) {
	fmt.Printf("Build time: %s\n", stats.Duration)
	fmt.Printf("Memory delta: %d KB\n", stats.MemDeltaKB)
	fmt.Printf("Entries loaded: %d\n", stats.Entries)
}

func createBuildCmd() *cobra.Command {
	var corpusPath string

	cmd := &cobra.Command{
		Use:   "build <dictionary>",
		Short: "Build the index and report timing/memory stats",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			_, stats, err := buildEngine(cfg, args[0], corpusPath)
			if err != nil {
				log.Fatalf("build failed: %v", err)
			}
			printBuildBanner(stats)
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "optional JSON frequency corpus to merge in")

	return cmd
}
