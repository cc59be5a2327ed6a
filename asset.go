package journal

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Asset is anything that can be held or exchanged in a journal: a currency, a
// coin, a security.
//
// Assets are identified by their Ticker, which is case-sensitive.
type Asset struct {
	Ticker string
	Name   string
	Symbol string // optional
	// RecordPrecision is the number of decimal places used to record amounts of this asset.
	RecordPrecision int
	// DisplayPricePrecision is the number of decimal places used to display
	// prices quoted in this asset.
	DisplayPricePrecision int
	IsCurrency            bool
}

// NewCurrencyAsset returns the asset for the ISO 4217 currency code.
//
// Precisions are the currency's number of fraction digits, e.g. 2 for USD and
// 0 for JPY.
func NewCurrencyAsset(code string) (Asset, error) {
	cur := money.GetCurrency(code)
	if cur == nil {
		return Asset{}, fmt.Errorf("currency %q: %w", code, ErrUnknownAsset)
	}
	return Asset{
		Ticker:                cur.Code,
		Name:                  cur.Code,
		Symbol:                cur.Grapheme,
		RecordPrecision:       cur.Fraction,
		DisplayPricePrecision: cur.Fraction,
		IsCurrency:            true,
	}, nil
}

// MustCurrencyAsset is like NewCurrencyAsset but panics on error.
func MustCurrencyAsset(code string) Asset {
	a, err := NewCurrencyAsset(code)
	if err != nil {
		panic(err.Error())
	}
	return a
}

// String returns the asset's ticker.
func (a Asset) String() string { return a.Ticker }

// AssetFinder finds assets by ticker.
type AssetFinder interface {
	Asset(ticker string) (Asset, bool)
}

// Assets is a plain list of assets. It is an AssetFinder with a linear lookup,
// prefer an Account for repeated lookups.
type Assets []Asset

// Asset returns the first asset with that ticker.
func (l Assets) Asset(ticker string) (Asset, bool) {
	for _, a := range l {
		if a.Ticker == ticker {
			return a, true
		}
	}
	return Asset{}, false
}
