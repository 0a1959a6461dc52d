package mailer

import (
	"fmt"
	"log"
	"os"
	"strings"
	"venise/src/config"
	"venise/src/lib"
	"venise/src/models"
	"venise/src/utils"
)

// Mailer sends reservation emails over SMTP. Every send runs in its own
// goroutine and logs its own failures so a slow or broken mail server never
// blocks a booking.
type Mailer struct {
	From     string
	FromName string
}

func New() *Mailer {
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = config.AdminNotifyAddress()
	}
	return &Mailer{From: from, FromName: "Venise Hotels"}
}

func (m *Mailer) send(input *lib.SendMailInput) {
	input.From = m.From
	input.FromName = m.FromName
	go func() {
		if err := lib.SendMail(input); err != nil {
			log.Printf("Failed to send email [%s]: %s\n", input.Subject, err.Error())
		}
	}()
}

func guestName(r *models.Reservation) string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

func describeStay(r *models.Reservation) string {
	if r.CheckInDate == nil || r.CheckOutDate == nil {
		return ""
	}
	return fmt.Sprintf("from %s to %s",
		r.CheckInDate.Format(config.DATE_PARSE_FORMAT),
		r.CheckOutDate.Format(config.DATE_PARSE_FORMAT))
}

func describeEvent(r *models.Reservation) string {
	if r.EventDate == nil || r.StartTime == nil || r.EndTime == nil {
		return ""
	}
	return fmt.Sprintf("on %s between %s and %s",
		r.EventDate.Format(config.DATE_PARSE_FORMAT), *r.StartTime, *r.EndTime)
}

func describe(r *models.Reservation) string {
	if r.EventDate != nil {
		return describeEvent(r)
	}
	return describeStay(r)
}

// ReservationCreated notifies the admin inbox and sends the guest a
// confirmation carrying a QR code they present at the front desk.
func (m *Mailer) ReservationCreated(r *models.Reservation) {
	m.send(&lib.SendMailInput{
		To:      []string{config.AdminNotifyAddress()},
		Subject: fmt.Sprintf("New %s reservation #%d", r.Kind, r.ID),
		Body: fmt.Sprintf("%s (%s) booked unit %d %s. Total: %.2f FCFA. Status: %s.",
			guestName(r), r.Email, r.UnitID, describe(r), r.TotalPrice, r.Status),
	})

	input := &lib.SendMailInput{
		To:      []string{r.Email},
		Subject: fmt.Sprintf("Your reservation #%d at Venise Hotels", r.ID),
		Body: fmt.Sprintf("Hello %s,\n\nYour reservation %s is recorded with status %q. Total: %.2f FCFA.\n\nPresent the attached code at the front desk.",
			guestName(r), describe(r), r.Status, r.TotalPrice),
	}
	qrPath, err := utils.SaveQRCode(fmt.Sprintf("reservation:%d:%s", r.ID, r.Email))
	if err != nil {
		log.Printf("Could not generate reservation QR code: %s\n", err.Error())
	} else {
		input.Attachments = []string{qrPath}
	}
	m.send(input)
}

func (m *Mailer) ReservationConfirmed(r *models.Reservation) {
	m.send(&lib.SendMailInput{
		To:      []string{r.Email},
		Subject: fmt.Sprintf("Reservation #%d confirmed", r.ID),
		Body: fmt.Sprintf("Hello %s,\n\nYour reservation %s is now confirmed. We look forward to welcoming you.",
			guestName(r), describe(r)),
	})
}

func (m *Mailer) ReservationCancelled(r *models.Reservation) {
	m.send(&lib.SendMailInput{
		To:      []string{r.Email},
		Subject: fmt.Sprintf("Reservation #%d cancelled", r.ID),
		Body: fmt.Sprintf("Hello %s,\n\nYour reservation %s has been cancelled. The dates are available again for booking.",
			guestName(r), describe(r)),
	})
}

func (m *Mailer) ReservationDeleted(r *models.Reservation) {
	m.send(&lib.SendMailInput{
		To:      []string{r.Email},
		Subject: fmt.Sprintf("Reservation #%d removed", r.ID),
		Body: fmt.Sprintf("Hello %s,\n\nYour reservation %s has been removed from our records.",
			guestName(r), describe(r)),
	})
}

// SendArrivalReminder is used by the daily job for stays checking in soon.
func (m *Mailer) SendArrivalReminder(r *models.Reservation) {
	m.send(&lib.SendMailInput{
		To:      []string{r.Email},
		Subject: "Your upcoming stay at Venise Hotels",
		Body: fmt.Sprintf("Hello %s,\n\nA reminder that your reservation %s is coming up. See you soon!",
			guestName(r), describe(r)),
	})
}

// SendAdminCredentials delivers a freshly generated password to a new hotel
// administrator.
func (m *Mailer) SendAdminCredentials(email, password string) {
	m.send(&lib.SendMailInput{
		To:      []string{email},
		Subject: "Your Venise Hotels administrator account",
		Body: fmt.Sprintf("An administrator account has been created for you.\n\nLogin: %s\nPassword: %s\n\nPlease change this password after your first login.",
			email, password),
	})
}

func (m *Mailer) SendPasswordReset(email, token string) {
	host := os.Getenv("APP_HOST")
	m.send(&lib.SendMailInput{
		To:      []string{email},
		Subject: "Password reset",
		Body:    fmt.Sprintf("Use this link to reset your password: %s/reset-password?token=%s\n\nThe link expires in one hour.", host, token),
	})
}

// ForwardContactMessage relays a website contact-form entry to the admin
// inbox, with reply-to set to the sender.
func (m *Mailer) ForwardContactMessage(c *models.ContactMessage) {
	m.send(&lib.SendMailInput{
		To:      []string{config.AdminNotifyAddress()},
		ReplyTo: c.Email,
		Subject: fmt.Sprintf("Contact form: %s", c.Subject),
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s", c.Name, c.Email, c.Message),
	})
}
