// Package runquery implements the runQuery action: executes a saved query
// against its data source and reports the outcome as a notification.
package runquery

import (
	"context"
	"log/slog"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

const (
	// defaultQuery is used when the action carries no statement of its own.
	defaultQuery = "SELECT * FROM users LIMIT 10"
	defaultLimit = 100
)

// Action runs one query. Failures notify with error severity and do not
// abort the remaining action chain.
type Action struct {
	ID      string
	QueryID string
	Query   string
	Params  map[string]any
	Limit   int
}

func (a *Action) Execute(ctx context.Context, executionCtx *protocol.ExecutionContext, logger *slog.Logger) (any, error) {
	if a.QueryID == "" {
		return nil, nil
	}

	result, err := executionCtx.Queries.ExecuteQuery(ctx, a.QueryID, a.Query, a.Params, a.Limit)
	if err != nil {
		logger.Error("query failed", "query_id", a.QueryID, "error", err)
		executionCtx.Notifier.Notify(ctx, "Query execution failed", models.SeverityError)

		return nil, nil
	}

	if !result.Success {
		logger.Error("query failed", "query_id", a.QueryID, "error", result.Error)
		executionCtx.Notifier.Notify(ctx, "Query execution failed", models.SeverityError)

		return nil, nil
	}

	executionCtx.Notifier.Notify(ctx, "Query executed successfully", models.SeveritySuccess)

	return result.Data, nil
}

type Factory struct{}

func NewFactory() *Factory { return &Factory{} }

func (*Factory) ID() string   { return string(models.ActionRunQuery) }
func (*Factory) Name() string { return "Run Query" }

func (*Factory) Description() string {
	return "Executes a saved query against its data source and reports the outcome."
}

// Create reads the statement, named parameters and row limit out of the
// queryParams object, falling back per field when one is absent.
func (*Factory) Create(action models.EventAction) (protocol.Action, error) {
	a := &Action{
		ID:      action.ID,
		QueryID: action.QueryID,
		Query:   defaultQuery,
		Params:  map[string]any{},
		Limit:   defaultLimit,
	}

	if query, ok := action.QueryParams["query"].(string); ok && query != "" {
		a.Query = query
	}

	if params, ok := action.QueryParams["parameters"].(map[string]any); ok {
		a.Params = models.CloneMap(params)
	}

	if limit := intValue(action.QueryParams["limit"]); limit > 0 {
		a.Limit = limit
	}

	return a, nil
}

// intValue tolerates the float64 that JSON decoding produces for numbers.
func intValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return 0
	}
}

func (*Factory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"queryId": map[string]any{
				"type":        "string",
				"description": "The saved query to execute.",
			},
			"queryParams": map[string]any{
				"type":        "object",
				"description": "Optional query, parameters and limit overrides for the execution.",
				"properties": map[string]any{
					"query":      map[string]any{"type": "string"},
					"parameters": map[string]any{"type": "object"},
					"limit":      map[string]any{"type": "integer"},
				},
			},
		},
		"required": []string{"queryId"},
	}
}
