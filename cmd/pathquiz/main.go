// Command pathquiz generates shortest-path benchmark fixtures and grades
// answers against them.
//
//	pathquiz generate --node-counts 20,50,80 --seed 42 --out ./fixtures --dot
//	pathquiz solve ./fixtures/undirected_graph_1_20_nodes.json
//	pathquiz validate ./fixtures/undirected_graph_1_20_nodes.json --answer "Distance: 7, Path: 0->1->2"
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, errAnswerRejected) {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
	}
	stop()
	os.Exit(1)
}
