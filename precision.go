package journal

// ResolvePrecision returns the number of decimal places to use for a value of
// the decimal column col, in a transaction exchanging base for quote.
//
// An explicit precision declared on the column for the lookup key (see
// DecimalColumn.PrecisionKey) always wins. Otherwise the precision falls back
// to the asset's defaults: RecordPrecision of the base (resp. quote) asset for
// amounts, and DisplayPricePrecision of the quote asset for prices, since a
// price is expressed in the quote asset.
//
// When the asset cannot be found, or col has no description, def is returned.
func ResolvePrecision(col DecimalColumn, base, quote string, assets AssetFinder, def int) int {
	if key := col.PrecisionKey(base, quote); key != "" {
		if p, ok := col.Precision[key]; ok {
			return p
		}
	}

	switch col.Description {
	case DescBase:
		if a, ok := assets.Asset(base); ok {
			return a.RecordPrecision
		}
	case DescQuote:
		if a, ok := assets.Asset(quote); ok {
			return a.RecordPrecision
		}
	case DescPrice:
		if a, ok := assets.Asset(quote); ok {
			return a.DisplayPricePrecision
		}
	}
	return def
}

// PrecisionKey returns the key under which an explicit precision is declared
// in c.Precision: the base ticker for base amounts, the quote ticker for quote
// amounts, and "base/quote" for prices. It is empty for a column with no
// description.
func (c DecimalColumn) PrecisionKey(base, quote string) string {
	switch c.Description {
	case DescPrice:
		return base + "/" + quote
	case DescBase:
		return base
	case DescQuote:
		return quote
	default:
		return ""
	}
}
