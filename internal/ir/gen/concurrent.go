package gen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"minilang/internal/frontend/ast"
	"minilang/internal/ir"
)

// GenerateConcurrent lowers each function on its own Generator, at most
// limit at a time (limit <= 0 means no bound), then joins the results in
// source order. Temps and labels are renumbered so the output is identical
// to Generate.
func GenerateConcurrent(ctx context.Context, prog *ast.Program, limit int) (*ir.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	parts := make([][]ir.Instr, len(prog.Functions))

	group, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for i, fn := range prog.Functions {
		i, fn := i, fn // per-iteration copies; go directive is 1.21
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g := New()
			g.lowerFunction(fn)
			parts[i] = g.out.Instrs
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	out := &ir.Program{}
	tempOffset, labelOffset := 0, 0
	for _, part := range parts {
		out.Instrs = append(out.Instrs, ir.Renumber(part, tempOffset, labelOffset)...)
		temps, labels := ir.Counts(part)
		tempOffset += temps
		labelOffset += labels
	}
	return out, nil
}
