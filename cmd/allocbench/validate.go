package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <workload.txt>",
		Short: "Replay a trace and report the heap validator's verdict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func runValidate(path string) error {
	report, err := replayFile(path)
	if err != nil {
		return err
	}

	if jsonOut {
		if err := printJSON(report); err != nil {
			return err
		}
	} else {
		printInfo("lines replayed:  %d\n", report.Lines)
		printInfo("valid:           %t\n", report.Valid)
	}

	if !report.Valid {
		fmt.Fprintln(os.Stderr, "allocbench: heap failed Validate() after replay")
		os.Exit(1)
	}
	return nil
}
