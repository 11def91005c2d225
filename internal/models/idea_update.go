package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// IdeaCreate carries the content of a new idea.
type IdeaCreate struct {
	Title           string
	Description     *string
	BusinessModel   *string
	TargetAudience  *string
	SwotAnalysis    *string
	MarketPotential *string
	Industry        *string
	Keywords        *string
}

// IdeaUpdate is a partial set of idea columns. Only fields set through one of
// the setters are written.
type IdeaUpdate struct {
	columns map[string]any
}

func (u *IdeaUpdate) set(column string, v any) {
	if u.columns == nil {
		u.columns = make(map[string]any)
	}
	u.columns[column] = v
}

func (u *IdeaUpdate) SetTitle(v string)           { u.set("title", v) }
func (u *IdeaUpdate) SetDescription(v string)     { u.set("description", v) }
func (u *IdeaUpdate) SetBusinessModel(v string)   { u.set("business_model", v) }
func (u *IdeaUpdate) SetTargetAudience(v string)  { u.set("target_audience", v) }
func (u *IdeaUpdate) SetSwotAnalysis(v string)    { u.set("swot_analysis", v) }
func (u *IdeaUpdate) SetMarketPotential(v string) { u.set("market_potential", v) }
func (u *IdeaUpdate) SetIndustry(v string)        { u.set("industry", v) }
func (u *IdeaUpdate) SetKeywords(v string)        { u.set("keywords", v) }
func (u *IdeaUpdate) SetFavorite(v bool)          { u.set("is_favorite", v) }

// Empty reports whether no field has been set.
func (u IdeaUpdate) Empty() bool {
	return len(u.columns) == 0
}

// Columns returns a copy of the pending column values keyed by column name.
func (u IdeaUpdate) Columns() map[string]any {
	out := make(map[string]any, len(u.columns))
	for k, v := range u.columns {
		out[k] = v
	}
	return out
}

var ideaTextSetters = map[string]func(*IdeaUpdate, string){
	"title":            (*IdeaUpdate).SetTitle,
	"description":      (*IdeaUpdate).SetDescription,
	"business_model":   (*IdeaUpdate).SetBusinessModel,
	"target_audience":  (*IdeaUpdate).SetTargetAudience,
	"swot_analysis":    (*IdeaUpdate).SetSwotAnalysis,
	"market_potential": (*IdeaUpdate).SetMarketPotential,
	"industry":         (*IdeaUpdate).SetIndustry,
	"keywords":         (*IdeaUpdate).SetKeywords,
}

// DecodeIdeaUpdate builds an IdeaUpdate from a JSON object. Keys outside the
// updatable set are returned in ignored (sorted); null values are skipped.
// A wrongly typed value for an updatable key is an error.
func DecodeIdeaUpdate(data []byte) (update IdeaUpdate, ignored []string, err error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return IdeaUpdate{}, nil, fmt.Errorf("decode update: %w", err)
	}

	for key, value := range raw {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}
		if setter, ok := ideaTextSetters[key]; ok {
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return IdeaUpdate{}, nil, fmt.Errorf("field %q: expected string", key)
			}
			setter(&update, s)
			continue
		}
		if key == "is_favorite" {
			var b bool
			if err := json.Unmarshal(value, &b); err != nil {
				return IdeaUpdate{}, nil, fmt.Errorf("field %q: expected boolean", key)
			}
			update.SetFavorite(b)
			continue
		}
		ignored = append(ignored, key)
	}
	sort.Strings(ignored)
	return update, ignored, nil
}
