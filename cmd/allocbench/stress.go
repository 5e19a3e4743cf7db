package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	allocator "github.com/MO-Elmu/Heap-Allocator"
	"github.com/MO-Elmu/Heap-Allocator/segment"
)

var (
	stressOps     int
	stressMaxSize int
	stressSeed    int64
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressOps, "ops", 10000, "number of allocate/free operations to generate")
	cmd.Flags().IntVar(&stressMaxSize, "max-size", 4096, "maximum requested payload size")
	cmd.Flags().Int64Var(&stressSeed, "seed", 1, "random seed")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Generate a randomized alloc/free workload and report growth, split and validity stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
}

type stressReport struct {
	Ops        int   `json:"ops"`
	LiveBlocks int   `json:"liveBlocks"`
	GrowCalls  int   `json:"growCalls"`
	SplitCount int   `json:"splitCount"`
	Valid      bool  `json:"valid"`
	MaxSize    int   `json:"maxSize"`
	Seed       int64 `json:"seed"`
}

func runStress() error {
	a := allocator.New(segment.New())
	rng := rand.New(rand.NewSource(stressSeed))

	var live []allocator.Ptr
	for i := 0; i < stressOps; i++ {
		if len(live) > 0 && rng.Intn(2) == 0 {
			idx := rng.Intn(len(live))
			if err := a.Free(live[idx]); err != nil {
				printVerbose("op %d: free failed: %v\n", i, err)
				continue
			}
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
			continue
		}

		size := 1 + rng.Intn(stressMaxSize)
		p, err := a.Allocate(size)
		if err != nil {
			printVerbose("op %d: allocate(%d) failed: %v\n", i, size, err)
			continue
		}
		live = append(live, p)
	}

	stats := a.Stats()
	report := stressReport{
		Ops:        stressOps,
		LiveBlocks: len(live),
		GrowCalls:  stats.GrowCalls,
		SplitCount: stats.SplitCount,
		Valid:      a.Validate(),
		MaxSize:    stressMaxSize,
		Seed:       stressSeed,
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("operations:      %d\n", report.Ops)
	printInfo("live blocks:     %d\n", report.LiveBlocks)
	printInfo("segment grows:   %d\n", report.GrowCalls)
	printInfo("splits:          %d\n", report.SplitCount)
	printInfo("valid:           %t\n", report.Valid)
	return nil
}
