// Package apicall implements the apiCall action: one HTTP request through
// the authenticated API collaborator, with the outcome surfaced as a
// notification.
package apicall

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

// Action performs the configured request. Failures notify with error
// severity and do not abort the remaining action chain.
type Action struct {
	ID       string
	Endpoint string
	Method   string
	Body     map[string]any
}

func (a *Action) Execute(ctx context.Context, executionCtx *protocol.ExecutionContext, logger *slog.Logger) (any, error) {
	if a.Endpoint == "" {
		return nil, nil
	}

	var body map[string]any
	if a.Method != http.MethodGet {
		body = a.Body
		if body == nil {
			body = map[string]any{}
		}
	}

	data, err := executionCtx.API.Call(ctx, a.Endpoint, a.Method, body)
	if err != nil {
		logger.Error("API call failed", "endpoint", a.Endpoint, "method", a.Method, "error", err)
		executionCtx.Notifier.Notify(ctx, "API call failed", models.SeverityError)

		return nil, nil
	}

	executionCtx.Notifier.Notify(ctx, "API call successful", models.SeveritySuccess)

	return data, nil
}

type Factory struct{}

func NewFactory() *Factory { return &Factory{} }

func (*Factory) ID() string   { return string(models.ActionAPICall) }
func (*Factory) Name() string { return "API Call" }

func (*Factory) Description() string {
	return "Performs an HTTP request against a configured endpoint and reports the outcome."
}

func (*Factory) Create(action models.EventAction) (protocol.Action, error) {
	method := action.APIMethod
	if method == "" {
		method = http.MethodGet
	}

	return &Action{
		ID:       action.ID,
		Endpoint: action.APIEndpoint,
		Method:   method,
		Body:     models.CloneMap(action.APIData),
	}, nil
}

func (*Factory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"apiEndpoint": map[string]any{
				"type":        "string",
				"description": "The URL to call.",
			},
			"apiMethod": map[string]any{
				"type":    "string",
				"default": "GET",
				"enum":    []string{"GET", "POST", "PUT", "DELETE"},
			},
			"apiData": map[string]any{
				"type":        "object",
				"description": "JSON body for non-GET requests.",
			},
		},
		"required": []string{"apiEndpoint"},
	}
}
