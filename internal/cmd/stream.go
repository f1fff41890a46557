package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fakemart/fakemart/internal/config"
	"github.com/fakemart/fakemart/internal/gen"
)

var (
	streamSeed     uint64
	streamInterval time.Duration
	streamCount    int
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Emit website events as JSON lines on stdout",
	Long: `Emit simulated website interaction events, one JSON object per line,
on a fixed interval. Events reference customer ids in [1, 10000]
regardless of any batch tables generated in the same run, so the
stream can run forever without knowing the dataset sizes.

With --count 0 the stream runs until interrupted.`,
	RunE: runStream,
}

func init() {
	rootCmd.AddCommand(streamCmd)

	streamCmd.Flags().Uint64Var(&streamSeed, "seed", 0, "Seed for the random sources (0 = time-based)")
	streamCmd.Flags().DurationVar(&streamInterval, "interval", 0, "Delay between events (0 = config default)")
	streamCmd.Flags().IntVar(&streamCount, "count", 0, "Number of events to emit (0 = unbounded)")
}

func runStream(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if streamInterval <= 0 {
		streamInterval = cfg.Stream.Interval
	}

	seed := streamSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := gen.New(seed, gen.WithLogger(log.Logger))
	enc := json.NewEncoder(os.Stdout)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	emitted := 0
	for {
		if err := enc.Encode(g.Event()); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
		emitted++
		if streamCount > 0 && emitted >= streamCount {
			return nil
		}

		select {
		case <-sigCh:
			log.Info().Int("events", emitted).Msg("stream stopped")
			return nil
		case <-ticker.C:
		}
	}
}
