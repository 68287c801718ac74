package game

// Badge symbol shared by every stage NFT
const BadgeSymbol = "SIGLIFE"

// LamportsPerSOL is the number of lamports in one SOL
const LamportsPerSOL = 1_000_000_000

// baseMintFeeLamports is the Student-stage mint fee; each later stage
// costs one more increment (0.02 SOL per step).
const baseMintFeeLamports = 20_000_000

// BadgeMetadata describes the NFT badge minted for a stage. The mint
// transaction itself is built and signed outside this service; this is
// the static config the mint surface exposes to clients.
type BadgeMetadata struct {
	Name                 string `json:"name"`
	Symbol               string `json:"symbol"`
	URI                  string `json:"uri"`
	SellerFeeBasisPoints int    `json:"sellerFeeBasisPoints"`
}

var badgeURIs = map[StageID]string{
	StageStudent:      "https://arweave.net/PLACEHOLDER_STUDENT",
	StageIntern:       "https://arweave.net/PLACEHOLDER_INTERN",
	StageEmployee:     "https://arweave.net/PLACEHOLDER_EMPLOYEE",
	StageSideHustler:  "https://arweave.net/PLACEHOLDER_SIDE_HUSTLER",
	StageEntrepreneur: "https://arweave.net/PLACEHOLDER_ENTREPRENEUR",
	StageCEO:          "https://arweave.net/PLACEHOLDER_CEO",
	StageInvestor:     "https://arweave.net/PLACEHOLDER_INVESTOR",
	StageSigmaElite:   "https://arweave.net/PLACEHOLDER_SIGMA_ELITE",
}

// MintFeeForStage returns the mint fee in lamports for a stage badge.
// Fees step up by 0.02 SOL per stage index; unknown stages get the base fee.
func MintFeeForStage(stageID StageID) uint64 {
	stage, err := StageByID(stageID)
	if err != nil {
		return baseMintFeeLamports
	}
	return uint64(stage.Index+1) * baseMintFeeLamports
}

// BadgeMetadataForStage returns the badge metadata for a stage, or an
// errors.NotFound for an unknown stage id.
func BadgeMetadataForStage(stageID StageID) (*BadgeMetadata, error) {
	stage, err := StageByID(stageID)
	if err != nil {
		return nil, err
	}
	return &BadgeMetadata{
		Name:                 "SigLife - " + stage.Name + " Badge",
		Symbol:               BadgeSymbol,
		URI:                  badgeURIs[stageID],
		SellerFeeBasisPoints: 500,
	}, nil
}
