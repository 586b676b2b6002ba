package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitry-maltsev/spelling-corrector/corrector"
)

func createReplCmd() *cobra.Command {
	var corpusPath string
	var maxEditDistance int
	var topK int

	cmd := &cobra.Command{
		Use:   "repl <dictionary>",
		Short: "Interactively correct one word per line of stdin",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			if maxEditDistance < 0 {
				maxEditDistance = cfg.DefaultQueryDistance
			}
			if topK <= 0 {
				topK = cfg.DefaultTopK
			}

			c, stats, err := buildEngine(cfg, args[0], corpusPath)
			if err != nil {
				log.Printf("failed to load dictionary: %v", err)
				os.Exit(1)
			}

			printBuildBanner(stats)

			if err := runRepl(os.Stdin, os.Stdout, c, maxEditDistance, topK); err != nil {
				log.Printf("repl error: %v", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "optional JSON frequency corpus to merge in")
	cmd.Flags().IntVar(&maxEditDistance, "max-distance", -1, "max edit distance (defaults to config)")
	cmd.Flags().IntVar(&topK, "top-k", 0, "number of suggestions to return (defaults to config)")

	return cmd
}

// runRepl reads one word per line from in, printing ranked suggestions and
// elapsed time to out, until EOF. It returns nil at a clean EOF and the
// scanner's error on any other read failure.
func runRepl(in *os.File, out *os.File, c *corrector.Corrector, maxEditDistance, topK int) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		word := scanner.Text()

		start := time.Now()
		suggestions, err := c.Correct(word, maxEditDistance, topK)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		for _, s := range suggestions {
			fmt.Fprintln(out, s.String())
		}
		fmt.Fprintf(out, "(%.2fms)\n", float64(elapsed.Microseconds())/1000.0)
	}

	return scanner.Err()
}
