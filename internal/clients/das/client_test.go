package das_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berkingurcan/siglife-api/internal/clients/das"
	"github.com/berkingurcan/siglife-api/internal/entities/game"
	"github.com/berkingurcan/siglife-api/internal/errors"
)

func newTestServer(t *testing.T, handler func(method string, params json.RawMessage) (any, *int)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			JSONRPC string          `json:"jsonrpc"`
			ID      string          `json:"id"`
			Method  string          `json:"method"`
			Params  json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req.JSONRPC)
		assert.NotEmpty(t, req.ID)

		result, status := handler(req.Method, req.Params)
		if status != nil {
			w.WriteHeader(*status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		}))
	}))
}

func badgeAsset(id, name, symbol string) map[string]any {
	return map[string]any{
		"id": id,
		"content": map[string]any{
			"json_uri": "https://arweave.net/" + id,
			"metadata": map[string]any{
				"name":   name,
				"symbol": symbol,
			},
		},
		"ownership": map[string]any{
			"owner": "owner-addr",
		},
	}
}

func TestGetAssetsByOwner(t *testing.T) {
	server := newTestServer(t, func(method string, params json.RawMessage) (any, *int) {
		assert.Equal(t, "getAssetsByOwner", method)

		var p struct {
			OwnerAddress string `json:"ownerAddress"`
			Page         int    `json:"page"`
			Limit        int    `json:"limit"`
		}
		require.NoError(t, json.Unmarshal(params, &p))
		assert.Equal(t, "owner-addr", p.OwnerAddress)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 100, p.Limit)

		return map[string]any{
			"total": 2,
			"limit": 100,
			"page":  1,
			"items": []any{
				badgeAsset("asset-1", "SigLife - Student Badge", "SIGLIFE"),
				badgeAsset("asset-2", "Some Other NFT", "OTHER"),
			},
		}, nil
	})
	defer server.Close()

	client, err := das.New(&das.Config{Endpoint: server.URL})
	require.NoError(t, err)

	out, err := client.GetAssetsByOwner(context.Background(), &das.GetAssetsByOwnerInput{
		OwnerAddress: "owner-addr",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Assets, 2)
	assert.Equal(t, "asset-1", out.Assets[0].ID)
	assert.Equal(t, "SIGLIFE", out.Assets[0].Content.Metadata.Symbol)
}

func TestGetAsset(t *testing.T) {
	server := newTestServer(t, func(method string, params json.RawMessage) (any, *int) {
		assert.Equal(t, "getAsset", method)
		return badgeAsset("asset-1", "SigLife - CEO Badge", "SIGLIFE"), nil
	})
	defer server.Close()

	client, err := das.New(&das.Config{Endpoint: server.URL})
	require.NoError(t, err)

	out, err := client.GetAsset(context.Background(), &das.GetAssetInput{AssetID: "asset-1"})
	require.NoError(t, err)
	assert.Equal(t, "SigLife - CEO Badge", out.Asset.Content.Metadata.Name)
}

func TestGetAsset_NullResult(t *testing.T) {
	server := newTestServer(t, func(method string, params json.RawMessage) (any, *int) {
		return nil, nil
	})
	defer server.Close()

	client, err := das.New(&das.Config{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = client.GetAsset(context.Background(), &das.GetAssetInput{AssetID: "ghost"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestGetBadges_FiltersBySymbol(t *testing.T) {
	server := newTestServer(t, func(method string, params json.RawMessage) (any, *int) {
		return map[string]any{
			"total": 3,
			"items": []any{
				badgeAsset("asset-1", "SigLife - Student Badge", "SIGLIFE"),
				badgeAsset("asset-2", "Random NFT", "OTHER"),
				badgeAsset("asset-3", "SigLife - Intern Badge", "SIGLIFE"),
			},
		}, nil
	})
	defer server.Close()

	client, err := das.New(&das.Config{Endpoint: server.URL})
	require.NoError(t, err)

	out, err := client.GetBadges(context.Background(), &das.GetBadgesInput{OwnerAddress: "owner-addr"})
	require.NoError(t, err)
	require.Len(t, out.Badges, 2)
	assert.Equal(t, "asset-1", out.Badges[0].ID)
	assert.Equal(t, "asset-3", out.Badges[1].ID)
}

func TestCall_ServerError(t *testing.T) {
	status := http.StatusBadGateway
	server := newTestServer(t, func(method string, params json.RawMessage) (any, *int) {
		return nil, &status
	})
	defer server.Close()

	client, err := das.New(&das.Config{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = client.GetAssetsByOwner(context.Background(), &das.GetAssetsByOwnerInput{
		OwnerAddress: "owner-addr",
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
}

func TestCall_RPCError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"siglife-das","error":{"code":-32602,"message":"invalid params"}}`))
	}))
	defer server.Close()

	client, err := das.New(&das.Config{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = client.GetAssetsByOwner(context.Background(), &das.GetAssetsByOwnerInput{
		OwnerAddress: "owner-addr",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid params")
}

func TestNew_MissingEndpoint(t *testing.T) {
	_, err := das.New(&das.Config{})
	assert.Error(t, err)
}

func TestCall_FreshRequestIDs(t *testing.T) {
	var ids []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		ids = append(ids, req.ID)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  badgeAsset("asset-1", "SigLife - Student Badge", "SIGLIFE"),
		}))
	}))
	defer server.Close()

	client, err := das.New(&das.Config{Endpoint: server.URL})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := client.GetAsset(context.Background(), &das.GetAssetInput{AssetID: "asset-1"})
		require.NoError(t, err)
	}

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
	for _, id := range ids {
		assert.True(t, strings.HasPrefix(id, "das_"), "unexpected rpc id %q", id)
		_, err := uuid.Parse(strings.TrimPrefix(id, "das_"))
		assert.NoError(t, err)
	}
}

func TestParseStageFromBadgeName(t *testing.T) {
	tests := []struct {
		name    string
		stageID game.StageID
		ok      bool
	}{
		{"SigLife - Student Badge", game.StageStudent, true},
		{"SigLife - Side Hustler Badge", game.StageSideHustler, true},
		{"SigLife - Sigma Elite Badge", game.StageSigmaElite, true},
		{"Random NFT", "", false},
	}

	for _, tt := range tests {
		stageID, ok := das.ParseStageFromBadgeName(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.stageID, stageID, tt.name)
	}
}
