package services

import (
	"log"

	"github.com/almursalaat/admin-api/model"
)

// Notifier fans out post-write side effects. Everything here runs after the
// HTTP response has been sent, fire-and-forget: no retries, no ordering, a
// failure is logged and the already-committed primary write stands.
type Notifier struct {
	email  *EmailService
	sheets *SheetsService
}

// NewNotifier creates a new notifier
func NewNotifier(email *EmailService, sheets *SheetsService) *Notifier {
	return &Notifier{email: email, sheets: sheets}
}

// ApplicationSubmitted kicks off the confirmation email, the admin
// notification, and the spreadsheet append for a new application.
func (n *Notifier) ApplicationSubmitted(app *model.Application) {
	go func() {
		if err := n.email.SendStudentConfirmation(app); err != nil {
			log.Printf("Error sending student confirmation for application %d: %v", app.ID, err)
		}
	}()
	go func() {
		if err := n.email.SendAdminNotification(app); err != nil {
			log.Printf("Error sending admin notification for application %d: %v", app.ID, err)
		}
	}()
	go func() {
		if err := n.sheets.AppendApplication(app); err != nil {
			log.Printf("Error writing application %d to spreadsheet: %v", app.ID, err)
		}
	}()
}

// CredentialsIssued mails a new admin or teacher their temporary password.
func (n *Notifier) CredentialsIssued(name, email, tempPassword, accountKind string) {
	go func() {
		if err := n.email.SendCredentials(name, email, tempPassword, accountKind); err != nil {
			log.Printf("Error sending credentials email to %s: %v", email, err)
		}
	}()
}

// PasswordReset mails a forgot-password temporary credential.
func (n *Notifier) PasswordReset(name, email, tempPassword string) {
	go func() {
		if err := n.email.SendTemporaryPassword(name, email, tempPassword); err != nil {
			log.Printf("Error sending temporary password to %s: %v", email, err)
		}
	}()
}
