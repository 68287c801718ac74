// Package das is a client for the Solana Digital Asset Standard (DAS)
// JSON-RPC API, used to list already-minted badge NFTs. Mint transactions
// themselves are built and signed outside this service.
package das

//go:generate mockgen -destination=mock/mock_client.go -package=dasmock github.com/berkingurcan/siglife-api/internal/clients/das Client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/berkingurcan/siglife-api/internal/entities/game"
	"github.com/berkingurcan/siglife-api/internal/errors"
	"github.com/berkingurcan/siglife-api/internal/pkg/idgen"
)

const (
	defaultTimeout = 15 * time.Second
	defaultLimit   = 100
)

// badgeNamePattern extracts the stage name from a badge asset name,
// e.g. "SigLife - Side Hustler Badge" -> "Side Hustler".
var badgeNamePattern = regexp.MustCompile(`^SigLife - (.+) Badge$`)

// Client defines the interface for DAS API interactions
type Client interface {
	// GetAssetsByOwner lists all assets owned by an address
	GetAssetsByOwner(ctx context.Context, input *GetAssetsByOwnerInput) (*GetAssetsByOwnerOutput, error)

	// GetAsset fetches a single asset by id
	GetAsset(ctx context.Context, input *GetAssetInput) (*GetAssetOutput, error)

	// GetBadges lists the assets owned by an address filtered to this
	// app's badge symbol
	GetBadges(ctx context.Context, input *GetBadgesInput) (*GetBadgesOutput, error)
}

// Config holds the configuration for the DAS client
type Config struct {
	// Endpoint is the JSON-RPC endpoint of a DAS-enabled Solana RPC node
	Endpoint string

	// HTTPClient is optional; a default client with a timeout is used
	// when nil
	HTTPClient *http.Client

	// IDGenerator produces per-request JSON-RPC ids for log correlation.
	// Optional; defaults to UUID-based ids.
	IDGenerator idgen.Generator
}

// Validate ensures all required configuration is provided
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.InvalidArgument("DAS endpoint is required")
	}
	return nil
}

type client struct {
	endpoint   string
	httpClient *http.Client
	idGen      idgen.Generator
}

// New creates a new DAS API client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("das")
	}

	return &client{
		endpoint:   cfg.Endpoint,
		httpClient: httpClient,
		idGen:      idGen,
	}, nil
}

// Ensure client implements Client
var _ Client = (*client)(nil)

// GetAssetsByOwner lists all assets owned by an address
func (c *client) GetAssetsByOwner(ctx context.Context, input *GetAssetsByOwnerInput) (*GetAssetsByOwnerOutput, error) {
	if input == nil || input.OwnerAddress == "" {
		return nil, errors.InvalidArgument("owner address is required")
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	var result assetsByOwnerResult
	err := c.call(ctx, "getAssetsByOwner", assetsByOwnerParams{
		OwnerAddress: input.OwnerAddress,
		Page:         page,
		Limit:        limit,
		DisplayOptions: displayOptions{
			ShowCollectionMetadata:   true,
			ShowUnverifiedCollection: true,
		},
	}, &result)
	if err != nil {
		return nil, err
	}

	return &GetAssetsByOwnerOutput{
		Total:  result.Total,
		Assets: result.Items,
	}, nil
}

// GetAsset fetches a single asset by id
func (c *client) GetAsset(ctx context.Context, input *GetAssetInput) (*GetAssetOutput, error) {
	if input == nil || input.AssetID == "" {
		return nil, errors.InvalidArgument("asset ID is required")
	}

	var asset Asset
	if err := c.call(ctx, "getAsset", assetParams{ID: input.AssetID}, &asset); err != nil {
		return nil, err
	}
	if asset.ID == "" {
		return nil, errors.NotFoundf("asset %q not found", input.AssetID)
	}

	return &GetAssetOutput{Asset: &asset}, nil
}

// GetBadges lists assets owned by an address filtered to the badge symbol
func (c *client) GetBadges(ctx context.Context, input *GetBadgesInput) (*GetBadgesOutput, error) {
	if input == nil || input.OwnerAddress == "" {
		return nil, errors.InvalidArgument("owner address is required")
	}

	out, err := c.GetAssetsByOwner(ctx, &GetAssetsByOwnerInput{
		OwnerAddress: input.OwnerAddress,
	})
	if err != nil {
		return nil, err
	}

	badges := make([]Asset, 0)
	for _, asset := range out.Assets {
		if asset.Content.Metadata.Symbol == game.BadgeSymbol {
			badges = append(badges, asset)
		}
	}

	return &GetBadgesOutput{Badges: badges}, nil
}

// call performs one JSON-RPC round trip, decoding result into out
func (c *client) call(ctx context.Context, method string, params, out any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.idGen.Generate(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s request", method)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "failed to build %s request", method)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "DAS API unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Unavailablef("DAS API returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s response", method)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  *rpcError       `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", method)
	}
	if envelope.Error != nil {
		return errors.Internalf("DAS API error %d: %s", envelope.Error.Code, envelope.Error.Message)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s result", method)
	}
	return nil
}

// ParseStageFromBadgeName extracts the stage id from a badge asset name,
// e.g. "SigLife - Side Hustler Badge" -> "side_hustler". Returns false
// when the name is not a badge name.
func ParseStageFromBadgeName(name string) (game.StageID, bool) {
	match := badgeNamePattern.FindStringSubmatch(name)
	if match == nil {
		return "", false
	}
	stageName := strings.ToLower(match[1])
	stageName = strings.ReplaceAll(stageName, " ", "_")
	return game.StageID(stageName), true
}
