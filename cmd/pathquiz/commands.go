package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathquiz/config"
	"github.com/katalvlaran/pathquiz/pipeline"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	green = color.New(color.FgGreen, color.Bold).SprintFunc()
	red   = color.New(color.FgRed, color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func newGenerateCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate fixture files and log their reference answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := pipeline.Run(cmd.Context(), st.cfg, st.log)
			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%s %d nodes, %d edges, Start: %d, End: %d\n",
					bold(fmt.Sprintf("Question %d:", r.ID)), r.Nodes, r.Edges, r.Endpoints.Start, r.Endpoints.End)
				fmt.Fprintf(out, "  Correct answer: %s\n", green(r.Answer.String()))
				fmt.Fprintf(out, "  Saved to: %s\n", cyan(r.File))
				if r.DotFile != "" {
					fmt.Fprintf(out, "  Drawing: %s\n", cyan(r.DotFile))
				}
				fmt.Fprintln(out, strings.Repeat("-", 60))
			}

			return err
		},
	}
	config.RegisterFlags(cmd.Flags())

	return cmd
}

func newSolveCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <fixture>",
		Short: "Print the reference answer of a fixture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := pipeline.Load(args[0])
			if err != nil {
				return err
			}
			st.log.Debug("fixture solved",
				zap.String("file", args[0]),
				zap.Int("graph_id", q.Record.GraphID),
				zap.Int64("distance", q.Answer.Distance),
				zap.Ints("path", q.Answer.Path),
			)
			fmt.Fprintln(cmd.OutOrStdout(), q.Answer.String())

			return nil
		},
	}
}

func newValidateCmd(st *state) *cobra.Command {
	var (
		answer string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "validate <fixture> [answer]",
		Short: `Grade an answer of the form "Distance: X, Path: A->B->C"`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				answer = args[1]
			}
			if answer == "" {
				return fmt.Errorf("no answer given: use --answer or a second argument")
			}
			q, err := pipeline.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== Validating Graph %d ===\n", q.Record.GraphID)
			fmt.Fprintf(out, "Start: %d, End: %d\n", q.Endpoints.Start, q.Endpoints.End)

			v := q.Check(answer, strict)
			st.log.Info("answer graded",
				zap.String("file", args[0]),
				zap.Int("graph_id", q.Record.GraphID),
				zap.Bool("strict", strict),
				zap.Bool("ok", v.OK),
				zap.String("reason", v.Reason),
			)
			if !v.OK {
				fmt.Fprintf(out, "%s %s\n", red("FAIL"), v.Reason)
				fmt.Fprintf(out, "Correct answer: %s\n", q.Answer)

				return errAnswerRejected
			}
			fmt.Fprintf(out, "%s %s\n", green("PASS"), q.Answer)

			return nil
		},
	}
	cmd.Flags().StringVar(&answer, "answer", "", `candidate answer, e.g. "Distance: 7, Path: 0->1->2"`)
	cmd.Flags().BoolVar(&strict, "strict", false, "also walk the path through the graph and reject suboptimal or invalid hops")

	return cmd
}
