package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/export"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/readability"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/store"
)

func runSimplify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f, err := export.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	text, err := readInput(argOrEmpty(args), cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	comp, err := loadComponents(ctx)
	if err != nil {
		return err
	}
	defer comp.Close()

	p, err := comp.Producer(producerName)
	if err != nil {
		return err
	}

	seeded := cmd.Flags().Changed("seed")
	run := store.Run{
		ID:        comp.IDs.New(),
		CreatedAt: time.Now().UTC(),
		Producer:  p.Name(),
		Input:     text,
	}
	if seeded {
		run.Seed = seed
	}

	if engine, ok := p.(*simplify.Engine); ok {
		res := pipelineResult(engine, text, seeded)
		run.Outputs, run.FellBack, run.Violations, run.Grade = res.Outputs, res.FellBack, res.Violations, res.Grade
	} else {
		out, err := p.Produce(ctx, text)
		if err != nil {
			return err
		}
		run.Outputs, run.Grade = out, readability.Grade(out.Grade5Explanation)
	}

	if err := comp.Store.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	logger.Debug("run complete",
		zap.String("run_id", run.ID),
		zap.String("producer", run.Producer),
		zap.Bool("fell_back", run.FellBack),
	)

	body, err := export.Render(run.Outputs, f)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	out.Write(body)
	if len(body) > 0 && body[len(body)-1] != '\n' {
		fmt.Fprintln(out)
	}
	return nil
}

func runGrade(cmd *cobra.Command, args []string) error {
	text, err := readInput(argOrEmpty(args), cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	comp, err := loadComponents(cmd.Context())
	if err != nil {
		return err
	}
	defer comp.Close()

	gradeReport(cmd.OutOrStdout(), text, comp.Engine.Simplify(text))
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	comp, err := loadComponents(cmd.Context())
	if err != nil {
		return err
	}
	defer comp.Close()

	if comp.Config.Store.Path == "" {
		return fmt.Errorf("history needs --db or SIMPLIFY_DB")
	}

	runs, err := comp.Store.ListRuns(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tPRODUCER\tGRADE\tFALLBACK\tINPUT")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%t\t%s\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Producer, r.Grade, r.FellBack, preview(r.Input, 40))
	}
	return w.Flush()
}

func preview(s string, n int) string {
	r := []rune(strings.Join(strings.Fields(s), " "))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-3]) + "..."
}
