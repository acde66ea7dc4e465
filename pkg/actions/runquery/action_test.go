package runquery

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

type fakeQueryExecutor struct {
	lastDataSourceID string
	lastQuery        string
	lastParams       map[string]any
	lastLimit        int
	result           *models.QueryResult
	err              error
}

func (f *fakeQueryExecutor) ExecuteQuery(_ context.Context, dataSourceID, query string, parameters map[string]any, limit int) (*models.QueryResult, error) {
	f.lastDataSourceID = dataSourceID
	f.lastQuery = query
	f.lastParams = parameters
	f.lastLimit = limit

	return f.result, f.err
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(_ context.Context, message string, _ models.Severity) {
	f.messages = append(f.messages, message)
}

func TestAction_Execute_ConfiguredQuery(t *testing.T) {
	queries := &fakeQueryExecutor{result: &models.QueryResult{
		Success: true,
		Data:    []any{map[string]any{"month": "Jan", "total": 12.0}},
	}}
	notifier := &fakeNotifier{}
	executionCtx := &protocol.ExecutionContext{Queries: queries, Notifier: notifier}

	action, err := NewFactory().Create(models.EventAction{
		ID:      "a1",
		Type:    models.ActionRunQuery,
		QueryID: "q-1",
		QueryParams: map[string]any{
			"query":      "SELECT month, total FROM sales",
			"parameters": map[string]any{"year": 2024},
			"limit":      25.0,
		},
	})
	require.NoError(t, err)

	result, err := action.Execute(context.Background(), executionCtx, slog.Default())
	require.NoError(t, err)

	assert.Equal(t, []any{map[string]any{"month": "Jan", "total": 12.0}}, result)
	assert.Equal(t, "q-1", queries.lastDataSourceID)
	assert.Equal(t, "SELECT month, total FROM sales", queries.lastQuery)
	assert.Equal(t, map[string]any{"year": 2024}, queries.lastParams)
	assert.Equal(t, 25, queries.lastLimit)
	assert.Equal(t, []string{"Query executed successfully"}, notifier.messages)
}

func TestAction_Execute_DefaultsPerMissingField(t *testing.T) {
	queries := &fakeQueryExecutor{result: &models.QueryResult{Success: true}}
	notifier := &fakeNotifier{}
	executionCtx := &protocol.ExecutionContext{Queries: queries, Notifier: notifier}

	action, err := NewFactory().Create(models.EventAction{
		ID:      "a1",
		Type:    models.ActionRunQuery,
		QueryID: "q-1",
		QueryParams: map[string]any{
			"parameters": map[string]any{"min": 2},
		},
	})
	require.NoError(t, err)

	_, err = action.Execute(context.Background(), executionCtx, slog.Default())
	require.NoError(t, err)

	// Only the absent fields fall back.
	assert.Equal(t, "SELECT * FROM users LIMIT 10", queries.lastQuery)
	assert.Equal(t, map[string]any{"min": 2}, queries.lastParams)
	assert.Equal(t, 100, queries.lastLimit)
}

func TestAction_Execute_NoQueryParams(t *testing.T) {
	queries := &fakeQueryExecutor{result: &models.QueryResult{Success: true}}
	notifier := &fakeNotifier{}
	executionCtx := &protocol.ExecutionContext{Queries: queries, Notifier: notifier}

	action, err := NewFactory().Create(models.EventAction{
		ID:      "a1",
		Type:    models.ActionRunQuery,
		QueryID: "q-1",
	})
	require.NoError(t, err)

	_, err = action.Execute(context.Background(), executionCtx, slog.Default())
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users LIMIT 10", queries.lastQuery)
	assert.NotNil(t, queries.lastParams)
	assert.Empty(t, queries.lastParams)
	assert.Equal(t, 100, queries.lastLimit)
}

func TestAction_Execute_TransportError(t *testing.T) {
	queries := &fakeQueryExecutor{err: errors.New("gateway down")}
	notifier := &fakeNotifier{}
	executionCtx := &protocol.ExecutionContext{Queries: queries, Notifier: notifier}

	action, err := NewFactory().Create(models.EventAction{ID: "a1", Type: models.ActionRunQuery, QueryID: "q-1"})
	require.NoError(t, err)

	result, err := action.Execute(context.Background(), executionCtx, slog.Default())
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, []string{"Query execution failed"}, notifier.messages)
}

func TestAction_Execute_UnsuccessfulResult(t *testing.T) {
	queries := &fakeQueryExecutor{result: &models.QueryResult{Success: false, Error: "syntax error"}}
	notifier := &fakeNotifier{}
	executionCtx := &protocol.ExecutionContext{Queries: queries, Notifier: notifier}

	action, err := NewFactory().Create(models.EventAction{ID: "a1", Type: models.ActionRunQuery, QueryID: "q-1"})
	require.NoError(t, err)

	result, err := action.Execute(context.Background(), executionCtx, slog.Default())
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, []string{"Query execution failed"}, notifier.messages)
}

func TestAction_Execute_EmptyQueryIDIsNoOp(t *testing.T) {
	queries := &fakeQueryExecutor{}
	notifier := &fakeNotifier{}
	executionCtx := &protocol.ExecutionContext{Queries: queries, Notifier: notifier}

	action, err := NewFactory().Create(models.EventAction{ID: "a1", Type: models.ActionRunQuery})
	require.NoError(t, err)

	result, err := action.Execute(context.Background(), executionCtx, slog.Default())
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Empty(t, notifier.messages)
	assert.Empty(t, queries.lastDataSourceID)
}
