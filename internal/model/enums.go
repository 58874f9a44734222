package model

// Closed enum types for every string-coded field. Persisted as strings but the
// service layer only ever works with the constants below, so invalid states are
// unrepresentable past the validation boundary.

// DocType distinguishes the two business document kinds.
type DocType string

const (
	DocTypePurchase DocType = "purchase"
	DocTypeSale     DocType = "sale"
)

func (t DocType) Valid() bool {
	return t == DocTypePurchase || t == DocTypeSale
}

// NumberPrefix returns the letter used in assigned document numbers.
func (t DocType) NumberPrefix() string {
	if t == DocTypePurchase {
		return "P"
	}
	return "S"
}

// DocStatus is the document lifecycle state.
// "canceled" is reserved: no current operation reaches it.
type DocStatus string

const (
	DocStatusDraft    DocStatus = "draft"
	DocStatusPosted   DocStatus = "posted"
	DocStatusCanceled DocStatus = "canceled"
)

// Direction marks a quantity or money flow: "in" adds, "out" subtracts.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Account is a treasury account.
type Account string

const (
	AccountCash Account = "cash"
	AccountBank Account = "bank"
)

func (a Account) Valid() bool {
	return a == AccountCash || a == AccountBank
}
