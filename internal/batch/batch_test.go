package batch

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jusunglee/josa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessKeepsOrder(t *testing.T) {
	var items []Item
	for i := range 200 {
		if i%2 == 0 {
			items = append(items, Item{Text: "유진", Josa: josa.EunNeun})
		} else {
			items = append(items, Item{Text: "고등어", Josa: josa.IGa})
		}
	}

	results, err := Process(context.Background(), josa.Selector{}, items, Options{Workers: 4})
	require.NoError(t, err)
	require.Len(t, results, len(items))

	for i, r := range results {
		require.NoError(t, r.Err)
		if i%2 == 0 {
			assert.Equal(t, "유진은", r.Output)
			assert.Equal(t, josa.HasCoda, r.Class)
		} else {
			assert.Equal(t, "고등어가", r.Output)
			assert.Equal(t, josa.NoCoda, r.Class)
		}
	}
}

func TestProcessRecordsFailuresPerItem(t *testing.T) {
	items := []Item{
		{Text: "유진", Josa: josa.EunNeun},
		{Text: "", Josa: josa.IGa},
		{Text: "table", Josa: josa.IGa},
		{Text: "table", Josa: josa.EuroRo},
	}
	results, err := Process(context.Background(), josa.Selector{}, items, Options{})
	require.NoError(t, err)

	assert.Equal(t, "ok", Code(results[0].Err))
	assert.Equal(t, "empty_input", Code(results[1].Err))
	assert.Equal(t, "undetermined_josa", Code(results[2].Err))
	assert.Equal(t, "table(으)로", results[3].Output)
	assert.Equal(t, josa.NotHangul, results[3].Class)

	assert.Len(t, Failed(results), 2)
	assert.Equal(t, map[string]int{"ok": 2, "empty_input": 1, "undetermined_josa": 1}, CountByCode(results))
}

func TestProcessPolicy(t *testing.T) {
	sel := josa.NewSelector(josa.WithPolicy(josa.PolicyNoCoda))
	results, err := Process(context.Background(), sel, []Item{{Text: "table", Josa: josa.IGa}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "table가", results[0].Output)
}

func TestProcessNormalize(t *testing.T) {
	// 간 spelled with conjoining jamo
	decomposed := "\u1100\u1161\u11ab"
	items := []Item{{Text: decomposed, Josa: josa.EunNeun}}

	results, err := Process(context.Background(), josa.Selector{}, items, Options{})
	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Err, josa.ErrUndeterminedJosa)

	results, err = Process(context.Background(), josa.Selector{}, items, Options{Normalize: true})
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "간은", results[0].Output)
}

func TestProcessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Process(ctx, josa.Selector{}, []Item{{Text: "유진", Josa: josa.EunNeun}}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCode(t *testing.T) {
	assert.Equal(t, "unknown_josa", Code(fmt.Errorf("wrapped: %w", josa.ErrUnknownJosa)))
	assert.Equal(t, "unknown_policy", Code(josa.ErrUnknownPolicy))
	assert.Equal(t, "internal", Code(assert.AnError))
}

func TestReadItems(t *testing.T) {
	in := "유진\n\n고등어\t이/가\r\n  \ntable\tdirection\n"
	items, err := ReadItems(strings.NewReader(in), josa.EunNeun)
	require.NoError(t, err)
	assert.Equal(t, []Item{
		{Text: "유진", Josa: josa.EunNeun},
		{Text: "고등어", Josa: josa.IGa},
		{Text: "table", Josa: josa.EuroRo},
	}, items)
}

func TestReadItemsErrors(t *testing.T) {
	_, err := ReadItems(strings.NewReader("유진\t의\n"), josa.EunNeun)
	require.ErrorIs(t, err, josa.ErrUnknownJosa)
	assert.Contains(t, err.Error(), "line 1")

	_, err = ReadItems(strings.NewReader("유진\n"), 0)
	assert.ErrorContains(t, err, "no josa given")
}
