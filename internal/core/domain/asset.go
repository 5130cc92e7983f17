package domain

// AssetType represents the different kinds of assets that can take part in a
// swap.
type AssetType int

const (
	// AssetFungible is a divisible balance on some external contract.
	AssetFungible AssetType = iota
	// AssetNonFungible is a unique token identified by its id.
	AssetNonFungible
	// AssetFunctionCall triggers arbitrary custom logic on the referenced
	// contract through the same transfer-shaped entry point.
	AssetFunctionCall
)

var assetTypeToString = map[AssetType]string{
	AssetFungible:     "fungible",
	AssetNonFungible:  "nonfungible",
	AssetFunctionCall: "functioncall",
}

var stringToAssetType = map[string]AssetType{
	"fungible":     AssetFungible,
	"nonfungible":  AssetNonFungible,
	"functioncall": AssetFunctionCall,
}

func (t AssetType) String() string {
	return assetTypeToString[t]
}

// AssetTypeFromString returns the AssetType matching the given label.
func AssetTypeFromString(s string) (AssetType, bool) {
	t, ok := stringToAssetType[s]
	return t, ok
}

// Asset is a typed reference to a transferable quantity or identifier on some
// external contract. It is an immutable value once constructed.
type Asset struct {
	Contract   string
	AmountOrId uint64
	Type       AssetType
}

// NewAsset returns a validated Asset. Each variant enforces its own rule at
// construction: fungible amounts and call ids must not be zero, while a
// non-fungible token may legitimately carry id 0.
func NewAsset(contract string, amountOrId uint64, typ AssetType) (Asset, error) {
	switch typ {
	case AssetFungible, AssetFunctionCall:
		if amountOrId == 0 {
			return Asset{}, ErrInvalidAmountOrCallId
		}
	case AssetNonFungible:
	default:
		return Asset{}, ErrInvalidAssetType
	}

	return Asset{
		Contract:   contract,
		AmountOrId: amountOrId,
		Type:       typ,
	}, nil
}
