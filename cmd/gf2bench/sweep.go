package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bwesterb/gf2rm/cmd/gf2bench/internal/randsrc"
	"github.com/bwesterb/gf2rm/gf2mat"
)

// record is one JSON entry of the sweep output: the timing of a single
// addmul/addmul_m4rm call at a given square matrix size.
type record struct {
	MethodName string  `json:"method_name"`
	MatSz      int     `json:"mat_sz"`
	Cycles     float64 `json:"cycles"`
}

var (
	sweepFrom     int
	sweepTo       int
	sweepStep     int
	sweepNSamples int
	sweepOutFn    string
	sweepSeed     int64
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Time addmul and addmul_m4rm over a range of square matrix sizes",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().IntVar(&sweepFrom, "from", 64, "smallest matrix size (bits)")
	sweepCmd.Flags().IntVar(&sweepTo, "to", 4096, "largest matrix size (bits), exclusive")
	sweepCmd.Flags().IntVar(&sweepStep, "step", 64, "size increment (bits)")
	sweepCmd.Flags().IntVar(&sweepNSamples, "nsamples", 3, "samples per size")
	sweepCmd.Flags().StringVar(&sweepOutFn, "out", "", "output JSON file (required)")
	sweepCmd.Flags().Int64Var(&sweepSeed, "seed", 1, "PRNG seed")
	sweepCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	if sweepStep <= 0 {
		return fmt.Errorf("gf2bench: --step must be positive")
	}

	src := randsrc.New(sweepSeed)
	var records []record

	for sz := sweepFrom; sz < sweepTo; sz += sweepStep {
		for s := 0; s < sweepNSamples; s++ {
			a, err := gf2mat.Random(sz, sz, src)
			if err != nil {
				return fmt.Errorf("gf2bench: generating operand: %w", err)
			}
			b, err := gf2mat.Random(sz, sz, src)
			if err != nil {
				return fmt.Errorf("gf2bench: generating operand: %w", err)
			}

			c := gf2mat.Zero(sz, sz)
			start := time.Now()
			gf2mat.AddMulM4RM(c, a, b)
			elapsed := time.Since(start)
			records = append(records, record{MethodName: "addmul_m4rm", MatSz: sz, Cycles: float64(elapsed.Nanoseconds())})

			c2 := gf2mat.Zero(sz, sz)
			start = time.Now()
			if err := gf2mat.AddMul(c2, a, b); err != nil {
				return fmt.Errorf("gf2bench: addmul: %w", err)
			}
			elapsed = time.Since(start)
			records = append(records, record{MethodName: "addmul", MatSz: sz, Cycles: float64(elapsed.Nanoseconds())})
		}
		slog.Debug("gf2bench: sweep size done", "mat_sz", sz)
	}

	out, err := os.Create(sweepOutFn)
	if err != nil {
		return fmt.Errorf("gf2bench: creating %s: %w", sweepOutFn, err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("gf2bench: writing %s: %w", sweepOutFn, err)
	}
	slog.Info("gf2bench: sweep complete", "records", len(records), "out", sweepOutFn)
	return nil
}
