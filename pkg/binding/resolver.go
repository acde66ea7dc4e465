// Package binding resolves widget data bindings to concrete data and keeps
// auto-refreshing bindings alive for as long as their widget exists.
package binding

import (
	"context"
	"log/slog"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
	"github.com/pageforge/pageforge/pkg/template"
)

// databaseLimit caps rows fetched for a database binding.
const databaseLimit = 1000

// Resolver turns a binding descriptor into data. Every failure resolves to
// nil and a log line; binding errors never propagate to the canvas.
type Resolver struct {
	queries protocol.QueryExecutor
	api     protocol.APIClient
	logger  *slog.Logger
}

func NewResolver(queries protocol.QueryExecutor, api protocol.APIClient, logger *slog.Logger) *Resolver {
	return &Resolver{
		queries: queries,
		api:     api,
		logger:  logger.With("module", "binding_resolver"),
	}
}

// Resolve performs one round trip for the binding and returns the data, or
// nil when the binding is empty, misconfigured or failed. The binding
// itself is never mutated.
func (r *Resolver) Resolve(ctx context.Context, binding *models.DataBinding) any {
	if binding == nil {
		return nil
	}

	switch binding.Source {
	case models.BindingStatic:
		return binding.StaticData

	case models.BindingAPI:
		if binding.Endpoint == "" {
			return nil
		}

		data, err := r.api.Call(ctx, binding.Endpoint, "GET", nil)
		if err != nil {
			r.logger.Error("API binding failed", "endpoint", binding.Endpoint, "error", err)

			return nil
		}

		return data

	case models.BindingDatabase:
		if binding.DataSourceID == "" || binding.Query == "" {
			return nil
		}

		result, err := r.queries.ExecuteQuery(ctx, binding.DataSourceID, binding.Query, map[string]any{}, databaseLimit)
		if err != nil {
			r.logger.Error("database binding failed", "data_source_id", binding.DataSourceID, "error", err)

			return nil
		}

		return result.Data

	case models.BindingComputed:
		if binding.ComputedExpression == "" {
			return nil
		}

		value, err := template.Evaluate(binding.ComputedExpression, binding.Environment)
		if err != nil {
			r.logger.Error("computed binding failed", "error", err)

			return nil
		}

		return value

	default:
		r.logger.Warn("unknown binding source", "source", binding.Source)

		return nil
	}
}

// ResolveInto resolves a widget's binding and writes the result to its
// props under "data". Chart widgets with both axis fields set have each
// row remapped to {label, value} first.
func (r *Resolver) ResolveInto(ctx context.Context, store protocol.WidgetStore, widgetID string) {
	widget, ok := store.Widget(widgetID)
	if !ok || widget.DataBinding == nil {
		return
	}

	data := r.Resolve(ctx, widget.DataBinding)
	if data == nil {
		return
	}

	if widget.Type == models.WidgetChart {
		if rows, ok := data.([]any); ok {
			data = MapChartRows(rows, widget.DataBinding.XField, widget.DataBinding.YField)
		}
	}

	store.MergeProps(widgetID, map[string]any{"data": data})
}

// MapChartRows reshapes resolved rows for chart consumption by projecting
// the configured columns onto "label" and "value". Rows that are not maps
// pass through untouched, as do all rows when either field is unset.
func MapChartRows(rows []any, xField, yField string) []any {
	if xField == "" || yField == "" {
		return rows
	}

	mapped := make([]any, len(rows))

	for i, row := range rows {
		m, ok := row.(map[string]any)
		if !ok {
			mapped[i] = row

			continue
		}

		mapped[i] = map[string]any{
			"label": m[xField],
			"value": m[yField],
		}
	}

	return mapped
}
