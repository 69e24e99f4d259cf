package functional_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aasia/cladtrack/internal/domain/activity"
	"github.com/aasia/cladtrack/internal/domain/assembly"
	"github.com/aasia/cladtrack/internal/domain/masterdata"
	"github.com/aasia/cladtrack/internal/domain/mto"
	"github.com/aasia/cladtrack/internal/domain/nmr"
	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/project"
	"github.com/aasia/cladtrack/internal/domain/quality"
	"github.com/aasia/cladtrack/internal/domain/spool"
	"github.com/aasia/cladtrack/internal/ident"
	"github.com/aasia/cladtrack/internal/mcp"
	"github.com/aasia/cladtrack/internal/sqlite"
)

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	ID      any             `json:"id,omitempty"`
}

type rpcError struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// newTestServer wires real services over an in-memory database behind the
// single-shot JSON-RPC HTTP handler.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	projectRepo := sqlite.NewProjectRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)
	spoolRepo := sqlite.NewSpoolRepository(db)
	assemblyRepo := sqlite.NewAssemblyRepository(db)
	nmrRepo := sqlite.NewNMRRepository(db)
	jisRepo := sqlite.NewJISRepository(db)
	mtoRepo := sqlite.NewMTORepository(db)
	masterRepo := sqlite.NewMasterDataRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	counterRepo := sqlite.NewCounterRepository(db)
	tokens := ident.UUIDTokenSource{}

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects:   project.NewService(projectRepo, counterRepo, orderRepo, spoolRepo, mtoRepo, nil),
			Orders:     order.NewService(orderRepo, projectRepo, counterRepo, spoolRepo, mtoRepo, tokens, activityRepo, nil),
			Spools:     spool.NewService(spoolRepo, tokens, activityRepo, nil),
			Assemblies: assembly.NewService(assemblyRepo, spoolRepo, tokens, nil),
			NMRs:       nmr.NewService(nmrRepo, mtoRepo, tokens, activityRepo, nil),
			Quality:    quality.NewService(jisRepo, spoolRepo, tokens, activityRepo, nil),
			MTOs:       mto.NewService(mtoRepo, tokens, nil),
			MasterData: masterdata.NewService(masterRepo, tokens, nil),
			Activity:   activity.NewService(activityRepo, nil),
			Snapshots:  sqlite.NewSnapshotStore(db),
		},
	})

	ts := httptest.NewServer(mcp.NewHTTPHandler(server, nil))
	t.Cleanup(ts.Close)
	return ts
}

func rpcCall(t *testing.T, ts *httptest.Server, method string, params any) rpcResponse {
	t.Helper()

	payload := map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"id":      1,
	}
	if params != nil {
		payload["params"] = params
	}

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL, "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func TestHTTP_Initialize(t *testing.T) {
	ts := newTestServer(t)

	resp := rpcCall(t, ts, "initialize", map[string]any{
		"protocolVersion": "2025-11-25",
		"capabilities":    map[string]any{},
		"clientInfo": map[string]any{
			"name":    "test-client",
			"version": "1.0.0",
		},
	})
	require.Nil(t, resp.Error, "initialize failed: %v", resp.Error)

	var result struct {
		ServerInfo struct {
			Name string `json:"name"`
		} `json:"serverInfo"`
		Instructions string `json:"instructions"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Equal(t, "cladtrack", result.ServerInfo.Name)
	require.Contains(t, result.Instructions, "cladtrack")
}

func TestHTTP_ParseError(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL, "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.NotNil(t, result.Error)
	require.Equal(t, -32700, result.Error.Code)
}

func TestHTTP_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
