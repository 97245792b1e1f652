package services

import (
	"fmt"
	"log"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/almursalaat/admin-api/config"
	"github.com/almursalaat/admin-api/model"
)

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// EmailService sends transactional email through SendGrid. Every send is a
// best-effort side effect: failures are logged and never surfaced to the
// caller of the originating request.
type EmailService struct {
	key         string
	from        *sgmail.Email
	adminNotify string
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		key:         cfg.SENDGRID_API_KEY,
		from:        sgmail.NewEmail("Al-Mursalaat", cfg.FROM_EMAIL),
		adminNotify: cfg.ADMIN_NOTIFY_EMAIL,
	}
}

// IsConfigured checks if the SendGrid key is present
func (e *EmailService) IsConfigured() bool {
	return e.key != ""
}

func (e *EmailService) send(toName, toEmail, subject, htmlContent string) error {
	if !e.IsConfigured() {
		log.Printf("SENDGRID_API_KEY not set, skipping email %q to %s", subject, toEmail)
		return nil
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(e.from)

	p := sgmail.NewPersonalization()
	p.Subject = subject
	p.AddTos(sgmail.NewEmail(toName, toEmail))
	m.AddPersonalizations(p)

	m.AddContent(sgmail.NewContent("text/html", htmlContent))

	req := sendgrid.GetRequest(e.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.API(req)
	if err != nil {
		return err
	}
	if res.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", res.StatusCode, res.Body)
	}

	log.Printf("Email %q sent to %s (status %d)", subject, toEmail, res.StatusCode)
	return nil
}

// SendStudentConfirmation confirms receipt of an application to the student.
func (e *EmailService) SendStudentConfirmation(app *model.Application) error {
	html := fmt.Sprintf(`
	<h3>Assalamu Alaikum, %s!</h3>
	<p>Thank you for your application to Al-Mursalaat.</p>
	<p>We have successfully received your details and will be in touch with you shortly regarding the next steps.</p>
	<p><strong>Course Applied For:</strong> %s</p>
	<p>If you have any questions, please feel free to reply to this email.</p>
	<br>
	<p>Sincerely,</p>
	<p>The Al-Mursalaat Team</p>`,
		app.FirstName, app.PreferredCourse)

	return e.send(app.FirstName, app.Email, "Your Application to Al-Mursalaat has been received!", html)
}

// SendAdminNotification tells the admin inbox about a new application.
func (e *EmailService) SendAdminNotification(app *model.Application) error {
	html := fmt.Sprintf(`
	<h3>New Student Application Received</h3>
	<p>A new application has been submitted through the website.</p>
	<hr>
	<strong>Name:</strong> %s %s<br>
	<strong>Email:</strong> %s<br>
	<strong>Phone:</strong> %s<br>
	<strong>Country:</strong> %s<br>
	<strong>Preferred Course:</strong> %s<br>
	<strong>Age:</strong> %d<br>`,
		app.FirstName, app.LastName, app.Email, app.PhoneNumber, app.Country, app.PreferredCourse, app.Age)

	subject := fmt.Sprintf("New Application from %s %s", app.FirstName, app.LastName)
	return e.send("Al-Mursalaat Admin", e.adminNotify, subject, html)
}

// SendCredentials mails a freshly created admin or teacher their temporary
// password. accountKind is "admin" or "teacher", used only for wording.
func (e *EmailService) SendCredentials(name, email, tempPassword, accountKind string) error {
	html := fmt.Sprintf(`
	<h3>Welcome to the Al-Mursalaat Team, %s!</h3>
	<p>A %s account has been created for you. You can log in using the following credentials:</p>
	<ul>
		<li><strong>Username:</strong> %s</li>
		<li><strong>Temporary Password:</strong> %s</li>
	</ul>
	<p>It is strongly recommended that you change your password after your first login.</p>
	<br>
	<p>Sincerely,</p>
	<p>The Al-Mursalaat Team</p>`,
		name, accountKind, email, tempPassword)

	return e.send(name, email, "Your New Account for Al-Mursalaat", html)
}

// SendTemporaryPassword mails a forgot-password replacement credential.
func (e *EmailService) SendTemporaryPassword(name, email, tempPassword string) error {
	html := fmt.Sprintf(`
	<h3>Assalamu Alaikum, %s,</h3>
	<p>A temporary password has been generated for your Al-Mursalaat account:</p>
	<p><strong>%s</strong></p>
	<p>Please log in with it and change your password right away.</p>
	<p>If you did not request this, please contact us.</p>`,
		name, tempPassword)

	return e.send(name, email, "Your Temporary Password for Al-Mursalaat", html)
}

// SendPendingDigest mails the supreme admin a summary of pending applications.
func (e *EmailService) SendPendingDigest(toEmail string, pending []model.Application) error {
	if len(pending) == 0 {
		return nil
	}

	rows := ""
	for _, app := range pending {
		rows += fmt.Sprintf("<li>%s %s (%s) — %s</li>", app.FirstName, app.LastName, app.Email, app.PreferredCourse)
	}

	html := fmt.Sprintf(`
	<h3>Pending Applications</h3>
	<p>There are %d applications waiting for a teacher assignment:</p>
	<ul>%s</ul>`,
		len(pending), rows)

	return e.send("Al-Mursalaat Admin", toEmail, fmt.Sprintf("%d pending applications", len(pending)), html)
}
