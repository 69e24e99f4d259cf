package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools wires the tool catalog into the SDK server, delegating
// every call to the shared handler.
func registerTools(server *sdkmcp.Server, handler *Handler, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, def := range buildToolCatalog() {
		schema, err := toSchema(def.InputSchema)
		if err != nil {
			logger.Error("invalid tool schema", "tool", def.Name, "error", err)
			continue
		}

		name := def.Name
		server.AddTool(&sdkmcp.Tool{
			Name:        name,
			Description: def.Description,
			InputSchema: schema,
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			result, err := handler.Handle(ctx, name, req.Params.Arguments)
			if err != nil {
				return errorResult(err), nil
			}
			payload, err := json.Marshal(result)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal tool result: %w", err)
			}
			return &sdkmcp.CallToolResult{
				Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(payload)}},
			}, nil
		})
	}
}

// toSchema converts a map-based JSON schema into the SDK's schema type.
func toSchema(m map[string]any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var schema jsonschema.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// errorResult renders a domain error as a tool error response instead of
// a protocol failure, so clients see the structured code and hint.
func errorResult(err error) *sdkmcp.CallToolResult {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = &APIError{Code: "INTERNAL_ERROR", Message: err.Error()}
	}
	payload, marshalErr := json.Marshal(apiErr)
	if marshalErr != nil {
		payload = []byte(fmt.Sprintf(`{"code":"INTERNAL_ERROR","message":%q}`, err.Error()))
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(payload)}},
		IsError: true,
	}
}
