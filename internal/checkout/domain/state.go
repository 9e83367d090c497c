package domain

// State tracks where a session is in the checkout flow. Confirmed is
// terminal for the order that produced it; resetting to Browsing starts a
// fresh cart lifecycle.
type State string

const (
	StateBrowsing          State = "browsing"
	StatePaymentEntry      State = "payment_entry"
	StateDeliverySelection State = "delivery_selection"
	StateConfirmed         State = "confirmed"
)

func (s State) IsTerminal() bool {
	return s == StateConfirmed
}

func (s State) String() string {
	return string(s)
}
