package domain

// Currency describes one entry in the fixed currency table.
// Codes are labels for display formatting only; no conversion happens.
type Currency struct {
	Code     string
	Name     string
	Symbol   string
	Decimals int
}

// DefaultCurrencyCode is used when a record carries an unknown code
const DefaultCurrencyCode = "USD"

// Currencies is the fixed set offered by the form, in display order
var Currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", Decimals: 2},
	{Code: "EUR", Name: "Euro", Symbol: "€", Decimals: 2},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Decimals: 2},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Decimals: 2},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Decimals: 2},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Decimals: 2},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Decimals: 0},
	{Code: "PKR", Name: "Pakistani Rupee", Symbol: "Rs", Decimals: 2},
}

// CurrencyByCode resolves a code against the fixed table. Unknown codes
// fall back to US Dollar formatting rather than failing.
func CurrencyByCode(code string) Currency {
	for _, c := range Currencies {
		if c.Code == code {
			return c
		}
	}
	return CurrencyByCode(DefaultCurrencyCode)
}

// NextCurrencyCode cycles through the table in display order, for the
// form's currency selector
func NextCurrencyCode(code string) string {
	for i, c := range Currencies {
		if c.Code == code {
			return Currencies[(i+1)%len(Currencies)].Code
		}
	}
	return DefaultCurrencyCode
}
