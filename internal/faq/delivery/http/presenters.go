package http

import (
	"shop-assistant/internal/faq"
)

const maxSearchK = 20

// --- Request DTOs ---

type searchReq struct {
	Query string `form:"q" binding:"required"`
	K     int    `form:"k"`
}

func (r searchReq) validate() error { return nil }

// toK clamps k; zero or negative selects the knowledge base default.
func (r searchReq) toK() int {
	if r.K > maxSearchK {
		return maxSearchK
	}
	return r.K
}

type ingestReq struct {
	Mode string `json:"mode" binding:"omitempty,oneof=existence content_hash force"`
}

func (r ingestReq) toInput(defaultMode faq.IngestMode) faq.IngestInput {
	mode := faq.IngestMode(r.Mode)
	if mode == "" {
		mode = defaultMode
	}
	return faq.IngestInput{Mode: mode}
}

// --- Response DTOs ---

type entryResp struct {
	ID       string  `json:"id"`
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
}

type searchResp struct {
	Collection string      `json:"collection"`
	Entries    []entryResp `json:"entries"`
}

func (h *handler) newSearchResp(entries []faq.Entry) searchResp {
	items := make([]entryResp, len(entries))
	for i, e := range entries {
		items[i] = entryResp{ID: e.ID, Question: e.Question, Answer: e.Answer, Score: e.Score}
	}
	return searchResp{Collection: h.uc.Collection(), Entries: items}
}

type ingestResp struct {
	Collection string   `json:"collection"`
	Skipped    bool     `json:"skipped"`
	Entries    int      `json:"entries"`
	Files      []string `json:"files"`
	Pruned     []string `json:"pruned,omitempty"`
}

func (h *handler) newIngestResp(out faq.IngestOutput) ingestResp {
	return ingestResp{
		Collection: out.Collection,
		Skipped:    out.Skipped,
		Entries:    out.Entries,
		Files:      out.Files,
		Pruned:     out.Pruned,
	}
}
