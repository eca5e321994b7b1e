package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/jusunglee/josa"
	"github.com/jusunglee/josa/internal/metrics"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

type Item struct {
	Text string    `json:"text"`
	Josa josa.Josa `json:"josa"`
}

type Result struct {
	Item
	Class  josa.Class
	Form   string
	Output string
	Err    error
}

type Options struct {
	// Workers bounds concurrency; zero means GOMAXPROCS.
	Workers int
	// Normalize NFC-composes the text first so decomposed jamo sequences
	// end in a precomposed syllable.
	Normalize bool
}

// Process runs every item through sel and returns results in input order.
// Selection failures are recorded per item; only context cancellation
// fails the whole batch.
func Process(ctx context.Context, sel josa.Selector, items []Item, opts Options) ([]Result, error) {
	metrics.BatchSize.Observe(float64(len(items)))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(items))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, item := range items {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if opts.Normalize {
				item.Text = norm.NFC.String(item.Text)
			}
			results[i] = One(sel, item)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("processing batch: %w", err)
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("processing batch: %w", context.Cause(ctx))
	}
	return results, nil
}

// One selects the josa for a single item and records metrics.
func One(sel josa.Selector, item Item) Result {
	res := Result{Item: item}

	class, err := josa.Classify(item.Text)
	if err == nil {
		res.Class = class
		metrics.ClassificationsTotal.WithLabelValues(class.String()).Inc()
	}

	res.Form, res.Err = sel.Select(item.Text, item.Josa)
	if res.Err == nil {
		res.Output = item.Text + res.Form
	}
	metrics.SelectionsTotal.WithLabelValues(item.Josa.String(), Code(res.Err)).Inc()
	return res
}

// Code is a stable identifier for a selection error, "ok" for nil.
func Code(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, josa.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, josa.ErrUndeterminedJosa):
		return "undetermined_josa"
	case errors.Is(err, josa.ErrUnknownJosa):
		return "unknown_josa"
	case errors.Is(err, josa.ErrUnknownPolicy):
		return "unknown_policy"
	default:
		return "internal"
	}
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	return lo.Filter(results, func(r Result, _ int) bool {
		return r.Err != nil
	})
}

// CountByCode tallies results by Code.
func CountByCode(results []Result) map[string]int {
	return lo.CountValuesBy(results, func(r Result) string {
		return Code(r.Err)
	})
}

// ReadItems reads one item per non-blank line. A line is either a bare word,
// which uses def, or a word and a josa separated by a tab.
func ReadItems(r io.Reader, def josa.Josa) ([]Item, error) {
	var items []Item
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		word, name, hasJosa := strings.Cut(text, "\t")
		item := Item{Text: strings.TrimSpace(word), Josa: def}
		if hasJosa {
			j, err := josa.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			item.Josa = j
		}
		if item.Josa == 0 {
			return nil, fmt.Errorf("line %d: no josa given for %q", line, item.Text)
		}
		items = append(items, item)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return items, nil
}
