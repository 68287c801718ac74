package das

// Asset is a digital asset returned by the DAS API
type Asset struct {
	ID          string       `json:"id"`
	Content     AssetContent `json:"content"`
	Compression *Compression `json:"compression,omitempty"`
	Ownership   Ownership    `json:"ownership"`
	Grouping    []Grouping   `json:"grouping,omitempty"`
}

// AssetContent holds the asset's metadata and links
type AssetContent struct {
	JSONURI  string        `json:"json_uri"`
	Metadata AssetMetadata `json:"metadata"`
	Links    *AssetLinks   `json:"links,omitempty"`
}

// AssetMetadata is the on-chain metadata of an asset
type AssetMetadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// AssetLinks holds off-chain links attached to an asset
type AssetLinks struct {
	Image       string `json:"image,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
}

// Compression describes state compression of an asset
type Compression struct {
	Compressed bool   `json:"compressed"`
	Tree       string `json:"tree"`
	LeafID     int    `json:"leaf_id"`
	Seq        int    `json:"seq"`
}

// Ownership describes who holds an asset
type Ownership struct {
	Owner    string `json:"owner"`
	Delegate string `json:"delegate,omitempty"`
	Frozen   bool   `json:"frozen"`
}

// Grouping is a key/value group membership (e.g. collection)
type Grouping struct {
	GroupKey   string `json:"group_key"`
	GroupValue string `json:"group_value"`
}

// GetAssetsByOwnerInput contains parameters for listing assets by owner
type GetAssetsByOwnerInput struct {
	OwnerAddress string
	Page         int
	Limit        int
}

// GetAssetsByOwnerOutput contains the assets owned by an address
type GetAssetsByOwnerOutput struct {
	Total  int
	Assets []Asset
}

// GetAssetInput contains parameters for fetching a single asset
type GetAssetInput struct {
	AssetID string
}

// GetAssetOutput contains a single fetched asset
type GetAssetOutput struct {
	Asset *Asset
}

// GetBadgesInput contains parameters for listing app badges by owner
type GetBadgesInput struct {
	OwnerAddress string
}

// GetBadgesOutput contains the app badge assets owned by an address
type GetBadgesOutput struct {
	Badges []Asset
}

// wire types

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type assetsByOwnerParams struct {
	OwnerAddress   string         `json:"ownerAddress"`
	Page           int            `json:"page"`
	Limit          int            `json:"limit"`
	DisplayOptions displayOptions `json:"displayOptions"`
}

type displayOptions struct {
	ShowCollectionMetadata   bool `json:"showCollectionMetadata"`
	ShowUnverifiedCollection bool `json:"showUnverifiedCollections"`
}

type assetParams struct {
	ID string `json:"id"`
}

type assetsByOwnerResult struct {
	Total int     `json:"total"`
	Limit int     `json:"limit"`
	Page  int     `json:"page"`
	Items []Asset `json:"items"`
}
