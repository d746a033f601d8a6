package main

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
)

var (
	demoPolicy   string
	demoScribble bool
)

func init() {
	cmd := newDemoCmd()
	cmd.Flags().StringVar(&demoPolicy, "policy", "", "Placement policy (first_fit, best_fit, worst_fit)")
	cmd.Flags().BoolVar(&demoScribble, "scribble", false, "Fill fresh payloads with 0xAA")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted workload and dump the heap between steps",
		Long: `The demo command walks the allocator through a small scripted
workload - named allocations, splits, frees, a reallocation - and prints
the full region/block list after each step.

Example:
  heapctl demo
  heapctl demo --policy best_fit
  heapctl demo --scribble`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	if demoPolicy != "" {
		if err := os.Setenv(heap.EnvAlgorithm, demoPolicy); err != nil {
			return err
		}
	}
	if demoScribble {
		if err := os.Setenv(heap.EnvScribble, "1"); err != nil {
			return err
		}
	}

	h := heap.New()
	step := func(label string) error {
		printInfo("== %s ==\n", label)
		return h.Dump(os.Stdout)
	}

	a := h.AllocNamed(128, "ring-buffer")
	b := h.AllocNamed(64, "header-cache")
	c := h.Alloc(512)
	if a == nil || b == nil || c == nil {
		return fmt.Errorf("allocation failed")
	}
	if err := step("three allocations"); err != nil {
		return err
	}

	h.Free(b)
	if err := step("freed 'header-cache'"); err != nil {
		return err
	}

	c = h.Realloc(c, 2048)
	if c == nil {
		return fmt.Errorf("reallocation failed")
	}
	if err := step("grew the unnamed block to 2048"); err != nil {
		return err
	}

	big := h.Alloc(3 * uintptr(os.Getpagesize()))
	if big == nil {
		return fmt.Errorf("large allocation failed")
	}
	if err := step("multi-page allocation"); err != nil {
		return err
	}

	for _, p := range []unsafe.Pointer{a, c, big} {
		h.Free(p)
	}
	if err := step("all blocks freed"); err != nil {
		return err
	}

	printVerbose("final stats: %+v\n", h.Stats())
	return nil
}
