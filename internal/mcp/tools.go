package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/plonkout/plonkout/internal/analysis"
	"github.com/plonkout/plonkout/internal/models"
)

// --- Tool definitions ---

var toolGetWorkoutLog = mcp.NewTool("get_workout_log",
	mcp.WithDescription("Retrieve the workout log grouped by calendar month, newest first. Each group has a month label, a member count, and the workouts with their exercises and sets."),
	mcp.WithString("exercise", mcp.Description("Only include workouts containing this exercise name (exact match)")),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("Check whether a prospective set would be a personal record. Returns the historical max weight, the percentage of max, the previous best reps at the weight, and rep/weight record flags. Warmup sets never count as history."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (e.g. 'Bench Press')")),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight of the prospective set")),
	mcp.WithNumber("reps", mcp.Description("Reps of the prospective set")),
	mcp.WithString("arm", mcp.Description("Arm performing the set; empty means unspecified"), mcp.Enum("", "left", "right", "both")),
)

var toolGetMaxWeight = mcp.NewTool("get_max_weight",
	mcp.WithDescription("Get the heaviest regular set ever logged for an exercise, honoring arm compatibility: a 'both' arm set counts as history for either single arm, but not the reverse."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name")),
	mcp.WithString("arm", mcp.Description("Arm to compare against; empty means unspecified"), mcp.Enum("", "left", "right", "both")),
)

var toolGetDataStats = mcp.NewTool("get_data_stats",
	mcp.WithDescription("Aggregate statistics: total workouts, sets, catalog exercises, templates, the date range of logged sessions, and per-name workout counts."),
)

var toolExportData = mcp.NewTool("export_data",
	mcp.WithDescription("Export the entire database (workouts, exercises, settings, templates) as one portable JSON document."),
)

// --- Tool handlers ---

func (h *handlers) getWorkoutLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workouts, err := h.ds.ListWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_workout_log", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	if filter := req.GetString("exercise", ""); filter != "" {
		var filtered []models.Workout
		for _, w := range workouts {
			for _, entry := range w.Exercises {
				if entry.Name == filter {
					filtered = append(filtered, w)
					break
				}
			}
		}
		workouts = filtered
	}

	result, err := mcp.NewToolResultJSON(analysis.GroupByMonth(workouts))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	reps := req.GetInt("reps", 0)
	arm := models.Arm(req.GetString("arm", ""))

	workouts, err := h.ds.ListWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_personal_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	report := map[string]any{
		"maxWeight":     analysis.MaxWeight(exercise, arm, workouts),
		"maxPercentage": analysis.MaxPercentage(exercise, weight, arm, workouts),
		"repRecord":     analysis.IsRepRecord(exercise, weight, reps, arm, workouts),
		"weightRecord":  analysis.IsWeightRecord(exercise, weight, arm, workouts),
	}
	if best, ok := analysis.PreviousReps(exercise, weight, arm, workouts); ok {
		report["previousReps"] = best
	}

	result, err := mcp.NewToolResultJSON(report)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getMaxWeight(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	arm := models.Arm(req.GetString("arm", ""))

	workouts, err := h.ds.ListWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_max_weight", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"exercise":  exercise,
		"arm":       arm,
		"maxWeight": analysis.MaxWeight(exercise, arm, workouts),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getDataStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.ds.GetDataStats(ctx)
	if err != nil {
		h.log.Error("mcp get_data_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) exportData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := h.ds.ExportAll(ctx)
	if err != nil {
		h.log.Error("mcp export_data", "error", err)
		return mcp.NewToolResultError("export failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(doc)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
