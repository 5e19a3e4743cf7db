package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	allocator "github.com/MO-Elmu/Heap-Allocator"
	"github.com/MO-Elmu/Heap-Allocator/segment"
)

func init() {
	rootCmd.AddCommand(newReplayCmd())
}

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <workload.txt>",
		Short: "Replay a recorded alloc/free/realloc trace",
		Long: `replay reads a line-oriented trace of allocator calls and executes
them in order, reporting timing and size-class statistics.

Trace format, one call per line, blank lines and lines starting with '#'
ignored:

  alloc <size>            allocate size bytes; the block's id is this
                          line's number, counting only non-blank,
                          non-comment lines from 1
  free <id>                free the block previously assigned id
  realloc <id> <newsize>   reallocate id's block, keeping the same id

Example:
  allocbench replay workload.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(args[0])
		},
	}
}

type replayReport struct {
	Lines      int           `json:"lines"`
	AllocCalls int           `json:"allocCalls"`
	FreeCalls  int           `json:"freeCalls"`
	GrowCalls  int           `json:"growCalls"`
	SplitCount int           `json:"splitCount"`
	Elapsed    time.Duration `json:"elapsedNanos"`
	Valid      bool          `json:"valid"`
}

func runReplay(path string) error {
	report, err := replayFile(path)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("lines replayed:  %d\n", report.Lines)
	printInfo("allocate calls:  %d\n", report.AllocCalls)
	printInfo("free calls:      %d\n", report.FreeCalls)
	printInfo("segment grows:   %d\n", report.GrowCalls)
	printInfo("splits:          %d\n", report.SplitCount)
	printInfo("elapsed:         %s\n", report.Elapsed)
	printInfo("valid:           %t\n", report.Valid)
	return nil
}

// replayFile executes a trace file against a fresh allocator and returns
// the resulting report, without any CLI output of its own.
func replayFile(path string) (replayReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return replayReport{}, fmt.Errorf("allocbench: %w", err)
	}
	defer f.Close()

	a := allocator.New(segment.New())
	ids := map[string]allocator.Ptr{}

	start := time.Now()
	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines++

		fields := strings.Fields(line)
		if err := checkMinArgs(fields, 2, "<op> <args...>"); err != nil {
			return replayReport{}, fmt.Errorf("allocbench: line %d: %w", lines, err)
		}

		switch fields[0] {
		case "alloc":
			size, err := strconv.Atoi(fields[1])
			if err != nil {
				return replayReport{}, fmt.Errorf("allocbench: line %d: bad size %q: %w", lines, fields[1], err)
			}
			p, err := a.Allocate(size)
			if err != nil {
				printVerbose("line %d: allocate(%d) failed: %v\n", lines, size, err)
				continue
			}
			ids[fmt.Sprintf("%d", lines)] = p
		case "free":
			id := fields[1]
			p, ok := ids[id]
			if !ok {
				return replayReport{}, fmt.Errorf("allocbench: line %d: unknown id %q", lines, id)
			}
			if err := a.Free(p); err != nil {
				printVerbose("line %d: free(%s) failed: %v\n", lines, id, err)
			}
			delete(ids, id)
		case "realloc":
			if err := checkMinArgs(fields, 3, "realloc <id> <newsize>"); err != nil {
				return replayReport{}, fmt.Errorf("allocbench: line %d: %w", lines, err)
			}
			id := fields[1]
			p, ok := ids[id]
			if !ok {
				return replayReport{}, fmt.Errorf("allocbench: line %d: unknown id %q", lines, id)
			}
			newsz, err := strconv.Atoi(fields[2])
			if err != nil {
				return replayReport{}, fmt.Errorf("allocbench: line %d: bad size %q: %w", lines, fields[2], err)
			}
			q, err := a.Reallocate(p, newsz)
			if err != nil {
				printVerbose("line %d: reallocate(%s, %d) failed: %v\n", lines, id, newsz, err)
				continue
			}
			ids[id] = q
		default:
			return replayReport{}, fmt.Errorf("allocbench: line %d: unknown op %q", lines, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return replayReport{}, fmt.Errorf("allocbench: %w", err)
	}

	elapsed := time.Since(start)
	stats := a.Stats()
	report := replayReport{
		Lines:      lines,
		AllocCalls: stats.AllocCalls,
		FreeCalls:  stats.FreeCalls,
		GrowCalls:  stats.GrowCalls,
		SplitCount: stats.SplitCount,
		Elapsed:    elapsed,
		Valid:      a.Validate(),
	}
	return report, nil
}
