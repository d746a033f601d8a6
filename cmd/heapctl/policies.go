package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
)

func init() {
	rootCmd.AddCommand(newPoliciesCmd())
}

func newPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List recognized placement policies",
		Long: `Lists the values the ALLOCATOR_ALGORITHM environment variable
recognizes. The first entry is the default; an unrecognized value makes
every allocation map a fresh region.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			current := os.Getenv(heap.EnvAlgorithm)
			for _, p := range heap.Policies() {
				marker := " "
				if p == current {
					marker = "*"
				}
				printInfo("%s %s\n", marker, p)
			}
		},
	}
}
