package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/plonkout/plonkout/internal/analysis"
	"github.com/plonkout/plonkout/internal/models"
)

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := s.store.ListWorkouts(r.Context())
	if err != nil {
		s.storageError(w, "list workouts", err)
		return
	}
	if workouts == nil {
		workouts = []models.Workout{}
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleSaveWorkout(w http.ResponseWriter, r *http.Request) {
	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	id, err := s.store.SaveWorkout(r.Context(), &workout)
	if err != nil {
		s.storageError(w, "save workout", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (s *Server) handleMostRecentWorkout(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name parameter required"})
		return
	}

	var excludeID int64
	if v := r.URL.Query().Get("exclude"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exclude ID"})
			return
		}
		excludeID = parsed
	}

	workout, err := s.store.MostRecentWorkoutByName(r.Context(), name, excludeID)
	if err != nil {
		s.storageError(w, "recent workout", err)
		return
	}
	// A missing record is a null body, not an error.
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	workout, err := s.store.GetWorkout(r.Context(), id)
	if err != nil {
		s.storageError(w, "get workout", err)
		return
	}
	if workout == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteWorkout(r.Context(), id); err != nil {
		s.storageError(w, "delete workout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleWorkoutLog returns the display sequence for the log view: workouts
// grouped by calendar month, newest first, headers included.
func (s *Server) handleWorkoutLog(w http.ResponseWriter, r *http.Request) {
	workouts, err := s.store.ListWorkouts(r.Context())
	if err != nil {
		s.storageError(w, "workout log", err)
		return
	}
	rows := analysis.FlattenLog(analysis.GroupByMonth(workouts))
	if rows == nil {
		rows = []analysis.LogRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.store.ListExercises(r.Context())
	if err != nil {
		s.storageError(w, "list exercises", err)
		return
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleSaveExercise(w http.ResponseWriter, r *http.Request) {
	var exercise models.Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	id, err := s.store.SaveExercise(r.Context(), &exercise)
	if err != nil {
		s.storageError(w, "save exercise", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.store.ListWorkoutTemplates(r.Context())
	if err != nil {
		s.storageError(w, "list templates", err)
		return
	}
	if templates == nil {
		templates = []models.WorkoutTemplate{}
	}
	writeJSON(w, http.StatusOK, templates)
}

func (s *Server) handleSaveTemplate(w http.ResponseWriter, r *http.Request) {
	var template models.WorkoutTemplate
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	id, err := s.store.SaveWorkoutTemplate(r.Context(), &template)
	if err != nil {
		s.storageError(w, "save template", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	template, err := s.store.GetWorkoutTemplate(r.Context(), id)
	if err != nil {
		s.storageError(w, "get template", err)
		return
	}
	if template == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	writeJSON(w, http.StatusOK, template)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteWorkoutTemplate(r.Context(), id); err != nil {
		s.storageError(w, "delete template", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) storageError(w http.ResponseWriter, op string, err error) {
	s.log.Error(op, "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid ID"})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
