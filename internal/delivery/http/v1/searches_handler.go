package v1

import (
	"encoding/json"
	"net/http"

	"smartchoice-state/internal/state"
	"smartchoice-state/pkg/utils"
)

type SearchesHandler struct {
	searches *state.RecentSearches
}

func NewSearchesHandler(searches *state.RecentSearches) *SearchesHandler {
	return &SearchesHandler{searches: searches}
}

func (h *SearchesHandler) GetRecentSearches(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"terms": h.searches.Terms(),
	})
}

type recordSearchRequest struct {
	Query string `json:"query"`
}

func (h *SearchesHandler) RecordSearch(w http.ResponseWriter, r *http.Request) {
	var req recordSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	h.searches.Record(req.Query)
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"terms": h.searches.Terms(),
	})
}

func (h *SearchesHandler) ClearRecentSearches(w http.ResponseWriter, r *http.Request) {
	h.searches.Clear()
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Cleared"})
}
