package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jusunglee/josa"
	"github.com/jusunglee/josa/internal/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cfg Config, words []string, stdin string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))
	err := Run(context.Background(), cfg, words, strings.NewReader(stdin), &out, log)
	return out.String(), logs.String(), err
}

func TestRunWords(t *testing.T) {
	out, _, err := run(t, Config{Josa: josa.EunNeun}, []string{"유진", "고등어"}, "")
	require.NoError(t, err)
	assert.Equal(t, "유진은\n고등어는\n", out)
}

func TestRunSelectMode(t *testing.T) {
	out, _, err := run(t, Config{Josa: josa.IGa, Mode: ModeSelect}, []string{"유진", "고등어"}, "")
	require.NoError(t, err)
	assert.Equal(t, "이\n가\n", out)
}

func TestRunStdin(t *testing.T) {
	out, _, err := run(t, Config{Josa: josa.EulReul}, nil, "사과\n책\n서울\t으로/로\n")
	require.NoError(t, err)
	assert.Equal(t, "사과를\n책을\n서울로\n", out)
}

func TestRunReportsFailures(t *testing.T) {
	out, logs, err := run(t, Config{Josa: josa.IGa}, []string{"유진", "table", ""}, "")
	require.ErrorIs(t, err, ErrFailedWords)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Equal(t, "유진이\n", out)
	assert.Contains(t, logs, "cannot attach josa")
	assert.Contains(t, logs, "word=table")
}

func TestRunPolicy(t *testing.T) {
	out, _, err := run(t, Config{Josa: josa.IGa, Policy: josa.PolicyNoCoda}, []string{"table"}, "")
	require.NoError(t, err)
	assert.Equal(t, "table가\n", out)
}

func TestRunRequiresJosa(t *testing.T) {
	_, _, err := run(t, Config{}, []string{"유진"}, "")
	assert.ErrorContains(t, err, "josa is required")

	_, _, err = run(t, Config{}, nil, "유진\n")
	assert.ErrorContains(t, err, "no josa given")
}

func TestExplain(t *testing.T) {
	res := batch.One(josa.Selector{}, batch.Item{Text: "유진", Josa: josa.EunNeun})
	assert.Equal(t, "유진  진=ㅈ+ㅣ+ㄴ  has_coda  은/는 → 은  유진은  [yujineun]", Explain(res))

	res = batch.One(josa.Selector{}, batch.Item{Text: "고등어", Josa: josa.IGa})
	assert.Equal(t, "고등어  어=ㅇ+ㅓ  no_coda  이/가 → 가  고등어가  [godeungeoga]", Explain(res))

	res = batch.One(josa.Selector{}, batch.Item{Text: "CPU", Josa: josa.IDa})
	assert.Equal(t, "CPU  'U'  not_hangul  이다/다 → (이)다  CPU(이)다  [CPU(i)da]", Explain(res))
}

func TestTable(t *testing.T) {
	out := Table()
	for _, j := range josa.Josas() {
		assert.Contains(t, out, j.Name())
	}
	assert.Contains(t, out, "(으)로")
	assert.Contains(t, out, "FALLBACK")
}

func TestRunExplainMode(t *testing.T) {
	out, _, err := run(t, Config{Josa: josa.EuroRo, Mode: ModeExplain}, []string{"서울"}, "")
	require.NoError(t, err)
	assert.Equal(t, "서울  울=ㅇ+ㅜ+ㄹ  has_coda  으로/로 → 로  서울로  [seoulro]\n", out)
}
