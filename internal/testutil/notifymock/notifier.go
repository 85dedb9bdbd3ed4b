package notifymock

// Notifier is a function-backed mock satisfying the usecase Notifier
// interfaces. Unfilled functions succeed silently.
type Notifier struct {
	LoanApprovedFn func(email, loanID string, total, installment float64) error
	AuctionWonFn   func(email, auctionName string, amount float64) error
}

func (m *Notifier) LoanApproved(email, loanID string, total, installment float64) error {
	if m.LoanApprovedFn != nil {
		return m.LoanApprovedFn(email, loanID, total, installment)
	}
	return nil
}

func (m *Notifier) AuctionWon(email, auctionName string, amount float64) error {
	if m.AuctionWonFn != nil {
		return m.AuctionWonFn(email, auctionName, amount)
	}
	return nil
}
