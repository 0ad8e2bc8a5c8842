package worker

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nickbeaird/recordexpungPDX/internal/model"
	"github.com/nickbeaird/recordexpungPDX/internal/pipeline"
)

// Evaluator classifies and evaluates a single charge
type Evaluator interface {
	ClassifyAndEvaluate(charge model.Charge) (model.ExpungementResult, error)
}

// EvaluateJob evaluates one loaded charge
type EvaluateJob struct {
	Seqno     int
	Input     LoadedCharge
	Evaluator Evaluator
}

// Execute executes the evaluation job
func (j *EvaluateJob) Execute(ctx context.Context) Result {
	res := &ChargeResult{seq: j.Seqno, Input: j.Input}

	switch {
	case j.Input.Err != nil:
		res.Error = j.Input.Err
	case ctx.Err() != nil:
		res.Error = ctx.Err()
	default:
		result, err := j.Evaluator.ClassifyAndEvaluate(j.Input.Charge)
		if err != nil {
			res.Error = err
		} else {
			res.Result = &result
		}
	}
	return res
}

// ChargeResult is the outcome of one evaluation job
type ChargeResult struct {
	seq    int
	Input  LoadedCharge
	Result *model.ExpungementResult
	Error  error
}

// Seq returns the submission order of the job
func (r *ChargeResult) Seq() int {
	return r.seq
}

// GetError returns the error from the evaluation
func (r *ChargeResult) GetError() error {
	return r.Error
}

// Record converts the result for rendering
func (r *ChargeResult) Record() pipeline.Record {
	rec := pipeline.Record{
		Index:  r.Input.Index,
		Source: r.Input.Source,
		Charge: r.Input.Charge,
		Result: r.Result,
	}
	if r.Error != nil {
		rec.Error = r.Error.Error()
	}
	return rec
}

// BatchProcessor evaluates many charges concurrently. Charges are independent,
// so a failing charge never affects the others.
type BatchProcessor struct {
	evaluator   Evaluator
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(evaluator Evaluator, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BatchProcessor{
		evaluator:   evaluator,
		concurrency: concurrency,
	}
}

// ProcessCharges evaluates charges concurrently and returns results in input order
func (b *BatchProcessor) ProcessCharges(ctx context.Context, charges []LoadedCharge) []*ChargeResult {
	if len(charges) == 0 {
		return []*ChargeResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for i, c := range charges {
		job := &EvaluateJob{
			Seqno:     i,
			Input:     c,
			Evaluator: b.evaluator,
		}
		if !pool.Submit(job) {
			break
		}
	}

	results := pool.Wait()

	chargeResults := make([]*ChargeResult, len(charges))
	for _, result := range results {
		cr := result.(*ChargeResult)
		chargeResults[cr.seq] = cr
	}

	// Charges never queued because ctx was cancelled
	for i, cr := range chargeResults {
		if cr == nil {
			chargeResults[i] = &ChargeResult{seq: i, Input: charges[i], Error: context.Cause(ctx)}
		}
	}

	return chargeResults
}

// ProcessFiles loads charge files concurrently, then evaluates every charge
// they contain. Results follow file order, then charge order within a file.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) ([]*ChargeResult, error) {
	loaded := make([][]LoadedCharge, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			charges, err := ReadChargesFromFile(path)
			if err != nil {
				return fmt.Errorf("read charges: %w", err)
			}
			loaded[i] = charges
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []LoadedCharge
	for _, charges := range loaded {
		all = append(all, charges...)
	}

	return b.ProcessCharges(ctx, all), nil
}

// Records converts results for rendering
func Records(results []*ChargeResult) []pipeline.Record {
	records := make([]pipeline.Record, len(results))
	for i, r := range results {
		records[i] = r.Record()
	}
	return records
}
