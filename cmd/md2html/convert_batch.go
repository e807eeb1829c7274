package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/logger"
)

// ConversionResult is the outcome of converting one file.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch converts files with at most workers goroutines that share r.
// Workers claim the next index from a counter, so results[i] always belongs
// to files[i]. Files not yet started when ctx ends get ctx.Err().
func convertBatch(ctx context.Context, r Renderer, files []FileToConvert, params *conversionParams, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))
	var next atomic.Int64
	var wg sync.WaitGroup

	for range max(1, min(workers, len(files))) {
		wg.Go(func() {
			for {
				i := int(next.Add(1) - 1)
				if i >= len(files) {
					return
				}
				if err := ctx.Err(); err != nil {
					results[i] = ConversionResult{InputPath: files[i].InputPath, Err: err}
					continue
				}
				results[i] = convertFile(ctx, r, files[i], params)
			}
		})
	}

	wg.Wait()
	return results
}

// convertFile reads, renders and writes a single file.
func convertFile(ctx context.Context, r Renderer, f FileToConvert, params *conversionParams) (res ConversionResult) {
	res = ConversionResult{InputPath: f.InputPath, OutputPath: f.OutputPath}
	defer func(start time.Time) { res.Duration = time.Since(start) }(time.Now())

	src, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		return res
	}

	out, err := r.Render(ctx, md2html.Input{
		Markdown:   string(src),
		Title:      params.title,
		CSS:        params.css,
		Standalone: params.standalone,
	})
	if err != nil {
		res.Err = renderError(err, r.MaxInputSize())
		return res
	}

	res.Err = writeOutput(f.OutputPath, out.HTML)
	return res
}

// ResultSummary counts the outcomes of a batch.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

func countResults(results []ConversionResult) (s ResultSummary) {
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
		} else {
			s.Succeeded++
		}
	}
	return s
}

// reportResults logs one line per file, plus a summary when there was more
// than one file, and returns the failure count.
func reportResults(results []ConversionResult, log *logger.Logger, total time.Duration) int {
	for _, r := range results {
		if r.Err != nil {
			log.ConversionError(r.InputPath, r.Err)
		} else {
			log.FileConverted(r.InputPath, r.OutputPath, r.Duration)
		}
	}

	s := countResults(results)
	if len(results) > 1 {
		log.BatchCompleted(s.Succeeded, s.Failed, total)
	}
	return s.Failed
}
