package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jusunglee/josa"
	"github.com/jusunglee/josa/internal/batch"
	"github.com/jusunglee/josa/internal/transliteration"
	"github.com/samber/lo"
)

type Mode int

const (
	ModeAppend Mode = iota
	ModeSelect
	ModeExplain
)

type Config struct {
	Josa      josa.Josa
	Policy    josa.Policy
	Mode      Mode
	Normalize bool
	Workers   int
}

var ErrFailedWords = errors.New("some words failed")

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
)

// Run selects josa for words, or for the items read from in when words is
// empty, and writes one line per item to out. Failed items are logged and
// reported together as ErrFailedWords once every item has been written.
func Run(ctx context.Context, cfg Config, words []string, in io.Reader, out io.Writer, log *slog.Logger) error {
	var items []batch.Item
	if len(words) > 0 {
		if cfg.Josa == 0 {
			return errors.New("josa is required")
		}
		items = lo.Map(words, func(w string, _ int) batch.Item {
			return batch.Item{Text: w, Josa: cfg.Josa}
		})
	} else {
		var err error
		items, err = batch.ReadItems(in, cfg.Josa)
		if err != nil {
			return err
		}
	}

	sel := josa.NewSelector(josa.WithPolicy(cfg.Policy))
	results, err := batch.Process(ctx, sel, items, batch.Options{
		Workers:   cfg.Workers,
		Normalize: cfg.Normalize,
	})
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Err != nil {
			log.Warn("cannot attach josa", "word", res.Text, "josa", res.Josa, "error", res.Err)
			continue
		}
		switch cfg.Mode {
		case ModeSelect:
			fmt.Fprintln(out, res.Form)
		case ModeExplain:
			fmt.Fprintln(out, Explain(res))
		default:
			fmt.Fprintln(out, res.Output)
		}
	}

	failed := batch.Failed(results)
	log.Debug("done", "words", len(results), "failed", len(failed))
	if len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFailedWords, len(failed), len(results))
	}
	return nil
}

// Explain describes how the form for res was chosen, for example
// "유진  진=ㅈ+ㅣ+ㄴ  has_coda  은/는 → 은  유진은  [yujineun]".
func Explain(res batch.Result) string {
	last, _ := utf8.DecodeLastRuneInString(res.Text)
	breakdown := fmt.Sprintf("%q", last)
	if s, ok := josa.Decompose(last); ok {
		parts := []string{string(s.Initial()), string(s.Medial())}
		if s.HasCoda() {
			parts = append(parts, string(s.Coda()))
		}
		breakdown = string(last) + "=" + strings.Join(parts, "+")
	}
	fields := []string{
		res.Text,
		breakdown,
		res.Class.String(),
		res.Josa.String() + " → " + res.Form,
		res.Output,
	}
	if rom := transliteration.Pronounce(res.Output); rom != "" {
		fields = append(fields, "["+rom+"]")
	}
	return strings.Join(fields, "  ")
}

// Table renders the josa table.
func Table() string {
	rows := lo.Map(josa.Josas(), func(j josa.Josa, _ int) []string {
		fb, ok := j.Fallback()
		if !ok {
			fb = "-"
		}
		return []string{j.Name(), j.Role(), j.CodaForm(), j.NoCodaForm(), fb}
	})

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 4:
				return subtleStyle
			default:
				return cellStyle
			}
		}).
		Headers("NAME", "ROLE", "CODA", "NO CODA", "FALLBACK").
		Rows(rows...).
		String()
}
