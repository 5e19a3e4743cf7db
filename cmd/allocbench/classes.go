package main

import (
	"github.com/spf13/cobra"

	allocator "github.com/MO-Elmu/Heap-Allocator"
)

func init() {
	rootCmd.AddCommand(newClassesCmd())
}

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "Print the size-class boundary table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses()
		},
	}
}

type classRow struct {
	Index int    `json:"index"`
	Lower int64  `json:"lower"`
	Upper int64  `json:"upper"`
	Role  string `json:"role"`
}

func runClasses() error {
	rows := make([]classRow, allocator.ClassCount)
	for i := 0; i < allocator.ClassCount; i++ {
		role := "ordinary"
		if i == allocator.ReallocClass {
			role = "reallocation"
		}
		rows[i] = classRow{
			Index: i,
			Lower: int64(1) << (i + allocator.MinExponent),
			Upper: int64(1)<<(i+allocator.MinExponent+1) - 1,
			Role:  role,
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	for _, r := range rows {
		if r.Role == "reallocation" {
			printInfo("class %2d: reserved for reallocation traffic\n", r.Index)
			continue
		}
		printInfo("class %2d: [%d, %d]\n", r.Index, r.Lower, r.Upper)
	}
	return nil
}
