package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/plonkout/plonkout/internal/analysis"
	"github.com/plonkout/plonkout/internal/models"
)

// RecordReport bundles the personal-record analysis for one prospective set.
type RecordReport struct {
	MaxWeight     float64 `json:"maxWeight"`
	MaxPercentage string  `json:"maxPercentage"`
	PreviousReps  *int    `json:"previousReps"`
	RepRecord     bool    `json:"repRecord"`
	WeightRecord  bool    `json:"weightRecord"`
}

// handleRecords runs the derived record queries for an exercise/weight/reps/
// arm combination against the full workout history.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}

	var weight float64
	if v := r.URL.Query().Get("weight"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid weight"})
			return
		}
		weight = parsed
	}

	var reps int
	if v := r.URL.Query().Get("reps"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid reps"})
			return
		}
		reps = parsed
	}

	arm := models.Arm(r.URL.Query().Get("arm"))

	workouts, err := s.store.ListWorkouts(r.Context())
	if err != nil {
		s.storageError(w, "records", err)
		return
	}

	report := RecordReport{
		MaxWeight:     analysis.MaxWeight(exercise, arm, workouts),
		MaxPercentage: analysis.MaxPercentage(exercise, weight, arm, workouts),
		RepRecord:     analysis.IsRepRecord(exercise, weight, reps, arm, workouts),
		WeightRecord:  analysis.IsWeightRecord(exercise, weight, arm, workouts),
	}
	if best, ok := analysis.PreviousReps(exercise, weight, arm, workouts); ok {
		report.PreviousReps = &best
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	raw, err := s.store.GetSettingRaw(r.Context(), key)
	if err != nil {
		s.storageError(w, "get setting", err)
		return
	}
	if raw == nil {
		// Absent keys are null; the caller supplies its own default.
		writeJSON(w, http.StatusOK, map[string]any{"key": key, "value": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"key": key, "value": raw})
}

func (s *Server) handleSaveSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := s.store.SaveSetting(r.Context(), key, value); err != nil {
		s.storageError(w, "save setting", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.ExportAll(r.Context())
	if err != nil {
		s.storageError(w, "export", err)
		return
	}

	filename := "plonkout-export-" + time.Now().Format("2006-01-02") + ".json"
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	writeJSON(w, http.StatusOK, doc)
}

// resetRequest carries the two affirmative confirmations a reset requires.
type resetRequest struct {
	Confirm      bool `json:"confirm"`
	ConfirmAgain bool `json:"confirm_again"`
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !req.Confirm || !req.ConfirmAgain {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "reset requires both confirm and confirm_again",
		})
		return
	}

	if err := s.store.ResetAll(r.Context()); err != nil {
		// Distinct message so the caller can warn that data may be
		// partially deleted.
		s.log.Error("reset", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "reset failed, data may be partially deleted: " + err.Error(),
		})
		return
	}
	s.log.Info("database reset")
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetDataStats(r.Context())
	if err != nil {
		s.storageError(w, "stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
