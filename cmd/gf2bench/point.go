package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bwesterb/gf2rm/cmd/gf2bench/internal/randsrc"
	"github.com/bwesterb/gf2rm/gf2mat"
)

var (
	pointSz      int
	pointMethod  string
	pointSeed    int64
	pointSamples int
)

var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Time a single matrix size with one method, printed as a JSON record",
	RunE:  runPoint,
}

func init() {
	pointCmd.Flags().IntVar(&pointSz, "sz", 1024, "matrix size (bits)")
	pointCmd.Flags().StringVar(&pointMethod, "method", "addmul", "addmul or addmul_m4rm")
	pointCmd.Flags().Int64Var(&pointSeed, "seed", 1, "PRNG seed")
	pointCmd.Flags().IntVar(&pointSamples, "nsamples", 1, "samples to average over")
	rootCmd.AddCommand(pointCmd)
}

func runPoint(cmd *cobra.Command, args []string) error {
	if pointMethod != "addmul" && pointMethod != "addmul_m4rm" {
		return fmt.Errorf("gf2bench: unknown --method %q", pointMethod)
	}

	src := randsrc.New(pointSeed)
	a, err := gf2mat.Random(pointSz, pointSz, src)
	if err != nil {
		return fmt.Errorf("gf2bench: generating operand: %w", err)
	}
	b, err := gf2mat.Random(pointSz, pointSz, src)
	if err != nil {
		return fmt.Errorf("gf2bench: generating operand: %w", err)
	}

	var total time.Duration
	for s := 0; s < pointSamples; s++ {
		c := gf2mat.Zero(pointSz, pointSz)
		start := time.Now()
		switch pointMethod {
		case "addmul_m4rm":
			gf2mat.AddMulM4RM(c, a, b)
		case "addmul":
			if err := gf2mat.AddMul(c, a, b); err != nil {
				return fmt.Errorf("gf2bench: addmul: %w", err)
			}
		}
		total += time.Since(start)
	}

	rec := record{
		MethodName: pointMethod,
		MatSz:      pointSz,
		Cycles:     float64(total.Nanoseconds()) / float64(pointSamples),
	}
	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(rec)
}
