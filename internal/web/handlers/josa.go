package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jusunglee/josa"
	"github.com/jusunglee/josa/internal/batch"
	"github.com/jusunglee/josa/internal/transliteration"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

const maxBatchItems = 1000

type JosaHandler struct {
	log     *slog.Logger
	workers int
}

func NewJosaHandler(log *slog.Logger, workers int) *JosaHandler {
	return &JosaHandler{log: log, workers: workers}
}

type josaResponse struct {
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Notation     string  `json:"notation"`
	CodaForm     string  `json:"coda_form"`
	NoCodaForm   string  `json:"no_coda_form"`
	FallbackForm *string `json:"fallback_form,omitempty"`
}

func toJosaResponse(j josa.Josa) josaResponse {
	resp := josaResponse{
		Name:       j.Name(),
		Role:       j.Role(),
		Notation:   j.String(),
		CodaForm:   j.CodaForm(),
		NoCodaForm: j.NoCodaForm(),
	}
	if fb, ok := j.Fallback(); ok {
		resp.FallbackForm = &fb
	}
	return resp
}

func (h *JosaHandler) List(w http.ResponseWriter, r *http.Request) {
	data := lo.Map(josa.Josas(), func(j josa.Josa, _ int) josaResponse {
		return toJosaResponse(j)
	})
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

type selectionResponse struct {
	Text      string `json:"text"`
	Josa      string `json:"josa,omitempty"`
	Class     string `json:"class,omitempty"`
	Form      string `json:"form,omitempty"`
	Output    string `json:"output,omitempty"`
	Romanized string `json:"romanized,omitempty"`
	Error     string `json:"error,omitempty"`
	Code      string `json:"code"`
}

func toSelectionResponse(res batch.Result) selectionResponse {
	resp := selectionResponse{
		Text:   res.Text,
		Josa:   res.Josa.String(),
		Form:   res.Form,
		Output: res.Output,
		Code:   batch.Code(res.Err),
	}
	if res.Err == nil {
		resp.Romanized = transliteration.Pronounce(res.Output)
	}
	if res.Text != "" {
		resp.Class = res.Class.String()
	}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	return resp
}

func (h *JosaHandler) Select(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	j, err := josa.Parse(q.Get("josa"))
	if err != nil {
		writeCodedError(w, http.StatusBadRequest, err)
		return
	}
	policy, err := josa.ParsePolicy(q.Get("policy"))
	if err != nil {
		writeCodedError(w, http.StatusBadRequest, err)
		return
	}

	text := q.Get("text")
	if normalize, _ := strconv.ParseBool(q.Get("normalize")); normalize {
		text = norm.NFC.String(text)
	}

	res := batch.One(josa.NewSelector(josa.WithPolicy(policy)), batch.Item{Text: text, Josa: j})
	if res.Err != nil {
		h.log.DebugContext(r.Context(), "selection failed", "text", text, "josa", j, "error", res.Err)
		writeJSON(w, http.StatusBadRequest, toSelectionResponse(res))
		return
	}
	writeJSON(w, http.StatusOK, toSelectionResponse(res))
}

type appendRequest struct {
	Items []struct {
		Text string `json:"text"`
		Josa string `json:"josa"`
	} `json:"items"`
	Policy    string `json:"policy"`
	Normalize bool   `json:"normalize"`
}

type appendResponse struct {
	Data   []selectionResponse `json:"data"`
	Counts map[string]int      `json:"counts"`
}

func (h *JosaHandler) Append(w http.ResponseWriter, r *http.Request) {
	var req appendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "items are required")
		return
	}
	if len(req.Items) > maxBatchItems {
		writeError(w, http.StatusBadRequest, "too many items (max "+strconv.Itoa(maxBatchItems)+")")
		return
	}
	policy, err := josa.ParsePolicy(req.Policy)
	if err != nil {
		writeCodedError(w, http.StatusBadRequest, err)
		return
	}

	// Items with an unknown josa are answered inline and skip selection.
	data := make([]selectionResponse, len(req.Items))
	var (
		items []batch.Item
		index []int
	)
	for i, it := range req.Items {
		j, err := josa.Parse(it.Josa)
		if err != nil {
			data[i] = selectionResponse{Text: it.Text, Josa: it.Josa, Error: err.Error(), Code: batch.Code(err)}
			continue
		}
		items = append(items, batch.Item{Text: it.Text, Josa: j})
		index = append(index, i)
	}

	results, err := batch.Process(r.Context(), josa.NewSelector(josa.WithPolicy(policy)), items, batch.Options{
		Workers:   h.workers,
		Normalize: req.Normalize,
	})
	if err != nil {
		h.log.WarnContext(r.Context(), "batch aborted", "items", len(items), "error", err)
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
		return
	}
	for k, res := range results {
		data[index[k]] = toSelectionResponse(res)
	}

	counts := lo.CountValuesBy(data, func(s selectionResponse) string { return s.Code })
	h.log.InfoContext(r.Context(), "batch processed", "items", len(data), "failed", len(data)-counts["ok"])
	writeJSON(w, http.StatusOK, appendResponse{Data: data, Counts: counts})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeCodedError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error(), "code": batch.Code(err)})
}
