package binding

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge/pkg/builder"
	"github.com/pageforge/pageforge/pkg/models"
)

type fakeQueryExecutor struct {
	lastDataSourceID string
	lastQuery        string
	lastLimit        int
	result           *models.QueryResult
	err              error
}

func (f *fakeQueryExecutor) ExecuteQuery(_ context.Context, dataSourceID, query string, _ map[string]any, limit int) (*models.QueryResult, error) {
	f.lastDataSourceID = dataSourceID
	f.lastQuery = query
	f.lastLimit = limit

	return f.result, f.err
}

type fakeAPIClient struct {
	lastEndpoint string
	lastMethod   string
	response     any
	err          error
}

func (f *fakeAPIClient) Call(_ context.Context, endpoint, method string, _ map[string]any) (any, error) {
	f.lastEndpoint = endpoint
	f.lastMethod = method

	return f.response, f.err
}

func newTestResolver(queries *fakeQueryExecutor, api *fakeAPIClient) *Resolver {
	if queries == nil {
		queries = &fakeQueryExecutor{}
	}

	if api == nil {
		api = &fakeAPIClient{}
	}

	return NewResolver(queries, api, slog.Default())
}

func TestResolver_Resolve_NilBinding(t *testing.T) {
	resolver := newTestResolver(nil, nil)

	assert.Nil(t, resolver.Resolve(context.Background(), nil))
}

func TestResolver_Resolve_Static(t *testing.T) {
	resolver := newTestResolver(nil, nil)

	rows := []any{map[string]any{"label": "A", "value": 1.0}}
	data := resolver.Resolve(context.Background(), &models.DataBinding{
		Source:     models.BindingStatic,
		StaticData: rows,
	})

	assert.Equal(t, rows, data)
}

func TestResolver_Resolve_API(t *testing.T) {
	api := &fakeAPIClient{response: []any{"row"}}
	resolver := newTestResolver(nil, api)

	data := resolver.Resolve(context.Background(), &models.DataBinding{
		Source:   models.BindingAPI,
		Endpoint: "https://api.example.com/data",
	})

	assert.Equal(t, []any{"row"}, data)
	assert.Equal(t, "https://api.example.com/data", api.lastEndpoint)
	assert.Equal(t, "GET", api.lastMethod)
}

func TestResolver_Resolve_API_EmptyEndpoint(t *testing.T) {
	api := &fakeAPIClient{response: []any{"row"}}
	resolver := newTestResolver(nil, api)

	data := resolver.Resolve(context.Background(), &models.DataBinding{Source: models.BindingAPI})

	assert.Nil(t, data)
	assert.Empty(t, api.lastEndpoint)
}

func TestResolver_Resolve_API_ErrorYieldsNil(t *testing.T) {
	api := &fakeAPIClient{err: errors.New("boom")}
	resolver := newTestResolver(nil, api)

	data := resolver.Resolve(context.Background(), &models.DataBinding{
		Source:   models.BindingAPI,
		Endpoint: "https://api.example.com/data",
	})

	assert.Nil(t, data)
}

func TestResolver_Resolve_Database(t *testing.T) {
	queries := &fakeQueryExecutor{result: &models.QueryResult{
		Success: true,
		Data:    []any{map[string]any{"id": 1.0}},
	}}
	resolver := newTestResolver(queries, nil)

	data := resolver.Resolve(context.Background(), &models.DataBinding{
		Source:       models.BindingDatabase,
		DataSourceID: "ds-1",
		Query:        "SELECT * FROM users",
	})

	assert.Equal(t, []any{map[string]any{"id": 1.0}}, data)
	assert.Equal(t, "ds-1", queries.lastDataSourceID)
	assert.Equal(t, "SELECT * FROM users", queries.lastQuery)
	assert.Equal(t, 1000, queries.lastLimit)
}

func TestResolver_Resolve_Database_MissingConfig(t *testing.T) {
	queries := &fakeQueryExecutor{}
	resolver := newTestResolver(queries, nil)

	assert.Nil(t, resolver.Resolve(context.Background(), &models.DataBinding{
		Source: models.BindingDatabase,
		Query:  "SELECT 1",
	}))
	assert.Empty(t, queries.lastQuery)
}

func TestResolver_Resolve_Computed(t *testing.T) {
	resolver := newTestResolver(nil, nil)

	data := resolver.Resolve(context.Background(), &models.DataBinding{
		Source:             models.BindingComputed,
		ComputedExpression: "{{.count}} items",
		Environment:        map[string]any{"count": 3},
	})

	assert.Equal(t, "3 items", data)
}

func TestResolver_Resolve_Computed_BadExpression(t *testing.T) {
	resolver := newTestResolver(nil, nil)

	data := resolver.Resolve(context.Background(), &models.DataBinding{
		Source:             models.BindingComputed,
		ComputedExpression: "{{.count",
	})

	assert.Nil(t, data)
}

func TestResolver_Resolve_UnknownSource(t *testing.T) {
	resolver := newTestResolver(nil, nil)

	assert.Nil(t, resolver.Resolve(context.Background(), &models.DataBinding{Source: "websocket"}))
}

func TestResolver_ResolveInto_WritesDataProp(t *testing.T) {
	session := builder.NewSession("app-1")
	widget := session.AddWidget(models.WidgetTable)
	session.SetDataBinding(widget.ID, &models.DataBinding{
		Source:     models.BindingStatic,
		StaticData: []any{"a", "b"},
	})

	resolver := newTestResolver(nil, nil)
	resolver.ResolveInto(context.Background(), session, widget.ID)

	resolved, _ := session.Widget(widget.ID)
	assert.Equal(t, []any{"a", "b"}, resolved.Props["data"])
}

func TestResolver_ResolveInto_ChartRowsRemapped(t *testing.T) {
	session := builder.NewSession("app-1")
	widget := session.AddWidget(models.WidgetChart)
	session.SetDataBinding(widget.ID, &models.DataBinding{
		Source: models.BindingStatic,
		StaticData: []any{
			map[string]any{"month": "Jan", "total": 10.0, "noise": true},
			map[string]any{"month": "Feb", "total": 20.0},
		},
		XField: "month",
		YField: "total",
	})

	resolver := newTestResolver(nil, nil)
	resolver.ResolveInto(context.Background(), session, widget.ID)

	resolved, _ := session.Widget(widget.ID)
	assert.Equal(t, []any{
		map[string]any{"label": "Jan", "value": 10.0},
		map[string]any{"label": "Feb", "value": 20.0},
	}, resolved.Props["data"])
}

func TestResolver_ResolveInto_NoBindingIsNoOp(t *testing.T) {
	session := builder.NewSession("app-1")
	widget := session.AddWidget(models.WidgetTable)

	resolver := newTestResolver(nil, nil)
	resolver.ResolveInto(context.Background(), session, widget.ID)

	resolved, _ := session.Widget(widget.ID)
	_, hasData := resolved.Props["data"]
	assert.False(t, hasData)
}

func TestMapChartRows(t *testing.T) {
	rows := []any{
		map[string]any{"x": "A", "y": 1.0},
		"passthrough",
	}

	mapped := MapChartRows(rows, "x", "y")

	require.Len(t, mapped, 2)
	assert.Equal(t, map[string]any{"label": "A", "value": 1.0}, mapped[0])
	assert.Equal(t, "passthrough", mapped[1])
}

func TestMapChartRows_MissingFieldsPassThrough(t *testing.T) {
	rows := []any{map[string]any{"x": "A"}}

	assert.Equal(t, rows, MapChartRows(rows, "", "y"))
}

func TestRefresher_NonPositiveIntervalSchedulesNothing(t *testing.T) {
	refresher := NewRefresher(func(context.Context, string) {}, slog.Default())
	defer refresher.Stop()

	refresher.Track("chart_1", 0)
	assert.False(t, refresher.Tracked("chart_1"))

	refresher.Track("chart_1", -5)
	assert.False(t, refresher.Tracked("chart_1"))
}

func TestRefresher_TrackAndUntrack(t *testing.T) {
	refresher := NewRefresher(func(context.Context, string) {}, slog.Default())
	defer refresher.Stop()

	refresher.Track("chart_1", 30)
	assert.True(t, refresher.Tracked("chart_1"))

	refresher.Untrack("chart_1")
	assert.False(t, refresher.Tracked("chart_1"))
}

func TestRefresher_RetrackReplacesSchedule(t *testing.T) {
	refresher := NewRefresher(func(context.Context, string) {}, slog.Default())
	defer refresher.Stop()

	refresher.Track("chart_1", 30)
	refresher.Track("chart_1", 60)

	assert.True(t, refresher.Tracked("chart_1"))

	refresher.Untrack("chart_1")
	assert.False(t, refresher.Tracked("chart_1"))
}

func TestRefresher_PeriodicRefresh(t *testing.T) {
	var (
		mu    sync.Mutex
		count int
	)

	refresher := NewRefresher(func(context.Context, string) {
		mu.Lock()
		defer mu.Unlock()

		count++
	}, slog.Default())
	defer refresher.Stop()

	refresher.Track("chart_1", 1)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return count >= 2
	}, 3*time.Second, 20*time.Millisecond)
}

func TestRefresher_UntrackStopsResolution(t *testing.T) {
	var (
		mu    sync.Mutex
		count int
	)

	refresher := NewRefresher(func(context.Context, string) {
		mu.Lock()
		defer mu.Unlock()

		count++
	}, slog.Default())
	defer refresher.Stop()

	refresher.Track("chart_1", 1)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return count >= 1
	}, 3*time.Second, 20*time.Millisecond)

	refresher.Untrack("chart_1")

	// Let any tick already in flight land before freezing the count.
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	frozen := count
	mu.Unlock()

	time.Sleep(1500 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, frozen, count)
}
