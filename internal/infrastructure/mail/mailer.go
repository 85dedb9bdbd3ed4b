package mail

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// Mailer sends member notifications over SMTP. Callers treat every send as
// fire-and-forget: a failed send is logged upstream, never retried, and
// never rolls back the state change that triggered it.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

func (m *Mailer) LoanApproved(email, loanID string, total, installment float64) error {
	subject := "Your loan has been approved"
	body := fmt.Sprintf(`
		<h2>Loan approved</h2>
		<p>Reference: %s</p>
		<p>Total repayable: %.2f</p>
		<p>Monthly installment: %.2f</p>
		<p>Date: %s</p>
	`, loanID, total, installment, time.Now().UTC().Format("2006-01-02 15:04"))
	return m.send(email, subject, body)
}

func (m *Mailer) AuctionWon(email, auctionName string, amount float64) error {
	subject := "You won an auction"
	body := fmt.Sprintf(`
		<h2>Congratulations</h2>
		<p>Auction: %s</p>
		<p>Winning bid: %.2f</p>
		<p>The investment has been transferred to your account.</p>
	`, auctionName, amount)
	return m.send(email, subject, body)
}

func (m *Mailer) Welcome(email, name string) error {
	subject := "Welcome to the cooperative"
	body := fmt.Sprintf(`
		<h2>Welcome, %s</h2>
		<p>Your member account is ready.</p>
	`, name)
	return m.send(email, subject, body)
}
