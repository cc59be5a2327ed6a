package journal

import (
	"errors"
	"fmt"
	"slices"
)

// Settings holds the account-wide settings.
type Settings struct {
	// AccountingCurrency is the currency the account is valued in.
	AccountingCurrency Asset
}

// Account owns the assets that journals refer to, and the journals.
//
// Tickers are unique among the assets and the accounting currency.
type Account struct {
	Name string

	settings Settings
	assets   []Asset        // in display order
	index    map[string]int // ticker to position in assets
	journals []*Journal
}

// NewAccount creates an account with no asset and no journal.
func NewAccount(name string, currency Asset) *Account {
	return &Account{
		Name:     name,
		settings: Settings{AccountingCurrency: currency},
		index:    make(map[string]int),
	}
}

// NewDefaultAccount creates an account in USD, with no asset and one empty
// trading journal.
func NewDefaultAccount(name string) *Account {
	a := NewAccount(name, MustCurrencyAsset("USD"))
	a.journals = append(a.journals, NewJournal("Trading", Trading))
	return a
}

// Settings returns the account settings.
func (a *Account) Settings() Settings { return a.settings }

// SetAccountingCurrency changes the accounting currency. It fails if cur's
// ticker is already used by an asset.
func (a *Account) SetAccountingCurrency(cur Asset) error {
	if _, ok := a.index[cur.Ticker]; ok {
		return fmt.Errorf("accounting currency %q: %w", cur.Ticker, ErrDuplicateTicker)
	}
	a.settings.AccountingCurrency = cur
	return nil
}

// Asset returns the asset with that ticker, including the accounting currency.
func (a *Account) Asset(ticker string) (Asset, bool) {
	if i, ok := a.index[ticker]; ok {
		return a.assets[i], true
	}
	if cur := a.settings.AccountingCurrency; cur.Ticker == ticker && ticker != "" {
		return cur, true
	}
	return Asset{}, false
}

// Assets returns a copy of the assets in display order. The accounting
// currency is not included.
func (a *Account) Assets() Assets { return slices.Clone(a.assets) }

// AddAsset appends asset to the assets.
func (a *Account) AddAsset(asset Asset) error {
	if err := a.checkTicker(asset.Ticker); err != nil {
		return err
	}
	a.index[asset.Ticker] = len(a.assets)
	a.assets = append(a.assets, asset)
	return nil
}

// EditAsset replaces the asset with that ticker with asset, which may have a
// new ticker. Transactions referring to the old ticker are left untouched.
func (a *Account) EditAsset(ticker string, asset Asset) error {
	i, ok := a.index[ticker]
	if !ok {
		return fmt.Errorf("asset %q: %w", ticker, ErrUnknownAsset)
	}
	if asset.Ticker != ticker {
		if err := a.checkTicker(asset.Ticker); err != nil {
			return err
		}
		delete(a.index, ticker)
		a.index[asset.Ticker] = i
	}
	a.assets[i] = asset
	return nil
}

// DeleteAsset removes the asset with that ticker.
func (a *Account) DeleteAsset(ticker string) error {
	i, ok := a.index[ticker]
	if !ok {
		return fmt.Errorf("asset %q: %w", ticker, ErrUnknownAsset)
	}
	a.assets = slices.Delete(a.assets, i, i+1)
	a.reindex()
	return nil
}

// MoveAsset moves the asset at position from to position to.
func (a *Account) MoveAsset(from, to int) error {
	n := len(a.assets)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("move asset #%d to #%d of %d: %w", from, to, n, ErrOutOfRange)
	}
	asset := a.assets[from]
	a.assets = slices.Insert(slices.Delete(a.assets, from, from+1), to, asset)
	a.reindex()
	return nil
}

// Precision resolves the precision of a value of col, for a transaction
// exchanging base for quote. Unknown assets resolve to 0.
func (a *Account) Precision(col DecimalColumn, base, quote string) int {
	return ResolvePrecision(col, base, quote, a, 0)
}

func (a *Account) checkTicker(ticker string) error {
	if ticker == "" {
		return errors.New("asset ticker is missing")
	}
	if _, exists := a.Asset(ticker); exists {
		return fmt.Errorf("asset %q: %w", ticker, ErrDuplicateTicker)
	}
	return nil
}

func (a *Account) reindex() {
	clear(a.index)
	for i, asset := range a.assets {
		a.index[asset.Ticker] = i
	}
}

// Journals returns the journals in display order.
func (a *Account) Journals() []*Journal { return slices.Clone(a.journals) }

// Journal returns the journal with that name.
func (a *Account) Journal(name string) (*Journal, error) {
	for _, j := range a.journals {
		if j.Name == name {
			return j, nil
		}
	}
	return nil, fmt.Errorf("journal %q: %w", name, ErrUnknownJournal)
}

// AddJournal appends j to the journals. Journal names are unique.
func (a *Account) AddJournal(j *Journal) error {
	if _, err := a.Journal(j.Name); err == nil {
		return fmt.Errorf("journal %q: %w", j.Name, ErrDuplicateJournal)
	}
	a.journals = append(a.journals, j)
	return nil
}

// DeleteJournal removes the journal with that name.
func (a *Account) DeleteJournal(name string) error {
	i := slices.IndexFunc(a.journals, func(j *Journal) bool { return j.Name == name })
	if i < 0 {
		return fmt.Errorf("journal %q: %w", name, ErrUnknownJournal)
	}
	a.journals = slices.Delete(a.journals, i, i+1)
	return nil
}
