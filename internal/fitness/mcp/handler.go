package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitnesslog/internal/fitness"
	"github.com/2beens/fitnesslog/internal/timezone"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns tool calls into service calls and formats the results as text content.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

type SchemaInput struct{}

type LogsInput struct {
	FromDate     string `json:"from_date,omitempty" jsonschema:"Start date, inclusive (YYYY-MM-DD)"`
	ToDate       string `json:"to_date,omitempty" jsonschema:"End date, inclusive (YYYY-MM-DD)"`
	ExerciseName string `json:"exercise_name,omitempty" jsonschema:"Case-insensitive substring of the exercise name"`
}

type DayInput struct {
	Date string `json:"date" jsonschema:"Local calendar date of the training day (YYYY-MM-DD)"`
}

type CalendarInput struct {
	Year  int `json:"year" jsonschema:"Year, e.g. 2024"`
	Month int `json:"month" jsonschema:"Month 1-12"`
}

func (h *Handler) GetFitnessSchemaTool() func(context.Context, *mcp.CallToolRequest, SchemaInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ SchemaInput) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

func (h *Handler) GetFitnessLogsTool() func(context.Context, *mcp.CallToolRequest, LogsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LogsInput) (*mcp.CallToolResult, any, error) {
		params := fitness.LogParams{
			ExerciseName: in.ExerciseName,
		}
		if strings.TrimSpace(in.FromDate) != "" {
			from, err := timezone.ParseDate(in.FromDate)
			if err != nil {
				return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
			}
			params.From = &from
		}
		if strings.TrimSpace(in.ToDate) != "" {
			to, err := timezone.ParseDate(in.ToDate)
			if err != nil {
				return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
			}
			params.To = &to
		}

		groups, err := h.service.ListLogs(ctx, params)
		if err != nil {
			return errorResult("Error listing fitness logs: " + err.Error()), nil, nil
		}
		return jsonResult(groups), nil, nil
	}
}

func (h *Handler) GetFitnessDayTool() func(context.Context, *mcp.CallToolRequest, DayInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DayInput) (*mcp.CallToolResult, any, error) {
		date, err := timezone.ParseDate(in.Date)
		if err != nil {
			return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
		}

		day, err := h.service.GetDay(ctx, date)
		if err != nil {
			return errorResult("Error fetching fitness day: " + err.Error()), nil, nil
		}
		if day == nil {
			return textResult("No fitness day logged on " + timezone.FormatDate(date)), nil, nil
		}
		return jsonResult(day), nil, nil
	}
}

func (h *Handler) GetTrainingCalendarTool() func(context.Context, *mcp.CallToolRequest, CalendarInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CalendarInput) (*mcp.CallToolResult, any, error) {
		if in.Month < 1 || in.Month > 12 {
			return errorResult(fmt.Sprintf("Invalid month %d: use 1-12", in.Month)), nil, nil
		}
		if in.Year == 0 {
			in.Year = time.Now().Year()
		}

		calendar, err := h.service.TrainingCalendar(ctx, in.Year, in.Month)
		if err != nil {
			return errorResult("Error fetching training calendar: " + err.Error()), nil, nil
		}
		return jsonResult(fitness.TrainingDaysResponse{TrainingDays: calendar}), nil, nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}
