package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/socx/event-announcer/internal/domain/company"
	"github.com/socx/event-announcer/internal/domain/event"
	"github.com/socx/event-announcer/internal/domain/family"
	"github.com/socx/event-announcer/internal/domain/messaging"
	"github.com/socx/event-announcer/internal/message"
)

// Dispatcher fans rendered notifications out to recipients over the email
// and chat transports. Delivery failures are contained per (recipient,
// message) pair: one failure never aborts delivery to later recipients.
type Dispatcher struct {
	email     messaging.EmailSender
	chat      messaging.ChatSender
	templates message.Templates
	appName   string
	log       *logrus.Logger
}

func NewDispatcher(
	emailSender messaging.EmailSender,
	chatSender messaging.ChatSender,
	templates message.Templates,
	appName string,
	log *logrus.Logger,
) *Dispatcher {
	return &Dispatcher{
		email:     emailSender,
		chat:      chatSender,
		templates: templates,
		appName:   appName,
		log:       log,
	}
}

// DispatchCelebrations sends each recipient a combined celebrations digest
// plus one message per matched celebrant over each channel. Pairs where the
// recipient is the celebrant are skipped for birthdays; for anniversaries
// the celebrant's spouse is skipped as well. A non-nil error is returned
// only when the context is canceled mid-dispatch; in-flight deliveries
// complete but no new ones start.
func (d *Dispatcher) DispatchCelebrations(ctx context.Context, recipients []family.Recipient, cel event.Celebrants) (Report, error) {
	if cel.Empty() {
		d.log.Info("No celebrants to notify today.")
		return Report{}, nil
	}
	if len(recipients) == 0 {
		d.log.Info("No recipients found to send celebrant reminders.")
		return Report{}, nil
	}

	var report Report
	for _, recipient := range recipients {
		if err := ctx.Err(); err != nil {
			d.log.Warnf("Dispatch canceled after %d attempts: %v", report.Attempted, err)
			return report, err
		}

		d.sendCelebrationsDigest(ctx, &report, recipient, cel)

		for _, celebrant := range cel.Birthdays {
			if err := ctx.Err(); err != nil {
				d.log.Warnf("Dispatch canceled after %d attempts: %v", report.Attempted, err)
				return report, err
			}
			if event.IsCelebrant(recipient, celebrant) {
				d.log.Debugf("%s is the celebrant, skipping birthday message", recipient.FirstName)
				continue
			}
			d.sendBirthdayReminder(ctx, &report, recipient, celebrant)
		}

		for _, celebrant := range cel.Anniversaries {
			if err := ctx.Err(); err != nil {
				d.log.Warnf("Dispatch canceled after %d attempts: %v", report.Attempted, err)
				return report, err
			}
			if event.IsCelebrant(recipient, celebrant) || event.IsSpouse(recipient, celebrant) {
				d.log.Debugf("%s is either the celebrant or the spouse of the celebrant, skipping anniversary message", recipient.FirstName)
				continue
			}
			d.sendAnniversaryReminder(ctx, &report, recipient, celebrant)
		}
	}

	d.log.Infof("Celebrant dispatch complete: %d attempted, %d sent, %d failed", report.Attempted, report.Sent, report.Failed())
	return report, nil
}

// DispatchCompanyEvents sends each officer one company events digest email.
// Officers are never celebrants, so no relationship exclusion applies.
func (d *Dispatcher) DispatchCompanyEvents(ctx context.Context, officers []company.Officer, up event.Upcoming) (Report, error) {
	if up.Empty() {
		d.log.Info("No upcoming company events to notify.")
		return Report{}, nil
	}
	if len(officers) == 0 {
		d.log.Info("No company officers found to send event reminders.")
		return Report{}, nil
	}

	accountsDue := message.JoinNames(companyNames(up.AccountsDue))
	returnsDue := message.JoinNames(companyNames(up.ReturnsDue))

	var report Report
	for _, officer := range officers {
		if err := ctx.Err(); err != nil {
			d.log.Warnf("Dispatch canceled after %d attempts: %v", report.Attempted, err)
			return report, err
		}

		body := message.Render(d.templates.CompanyEventsEmail, map[string]string{
			message.TokenRecipientFirstname:  officer.FirstName,
			message.TokenAccountDueCompanies: accountsDue,
			message.TokenReturnsDueCompanies: returnsDue,
			message.TokenAppName:             d.appName,
		})
		d.attemptEmail(ctx, &report, officer.Email, officer.FirstName, d.templates.CompanyEventsSubject, body)
	}

	d.log.Infof("Company event dispatch complete: %d attempted, %d sent, %d failed", report.Attempted, report.Sent, report.Failed())
	return report, nil
}

func (d *Dispatcher) sendCelebrationsDigest(ctx context.Context, report *Report, recipient family.Recipient, cel event.Celebrants) {
	birthdayLabels := make([]string, 0, len(cel.Birthdays))
	for _, c := range cel.Birthdays {
		birthdayLabels = append(birthdayLabels, event.CelebrantLabel(recipient, c))
	}
	anniversaryLabels := make([]string, 0, len(cel.Anniversaries))
	for _, c := range cel.Anniversaries {
		anniversaryLabels = append(anniversaryLabels, event.AnniversaryLabel(recipient, c))
	}

	body := message.Render(d.templates.CelebrationsEmail, map[string]string{
		message.TokenRecipientFirstname:    recipient.FirstName,
		message.TokenBirthdayCelebrants:    message.JoinNames(birthdayLabels),
		message.TokenAnniversaryCelebrants: message.JoinNames(anniversaryLabels),
		message.TokenAppName:               d.appName,
	})
	d.attemptEmail(ctx, report, recipient.Email, recipient.FirstName, d.templates.CelebrationsSubject, body)
}

func (d *Dispatcher) sendBirthdayReminder(ctx context.Context, report *Report, recipient family.Recipient, celebrant family.Member) {
	tokens := map[string]string{
		message.TokenRecipientFirstname: recipient.FirstName,
		message.TokenBirthdayCelebrant:  celebrant.FullName(),
		message.TokenBirthDate:          message.FormatEventDate(celebrant.BirthDate.Time),
		message.TokenAppName:            d.appName,
	}

	emailBody := message.Render(d.templates.BirthdayEmail, tokens)
	d.attemptEmail(ctx, report, recipient.Email, recipient.FirstName, d.templates.BirthdaySubject, emailBody)

	chatText := message.Render(d.templates.BirthdayChat, tokens)
	d.attemptChat(ctx, report, recipient.MobileNo, recipient.FirstName, chatText)
}

func (d *Dispatcher) sendAnniversaryReminder(ctx context.Context, report *Report, recipient family.Recipient, celebrant family.Member) {
	tokens := map[string]string{
		message.TokenRecipientFirstname:   recipient.FirstName,
		message.TokenAnniversaryCelebrant: celebrant.FullName(),
		message.TokenAnniversaryDate:      message.FormatEventDate(celebrant.WeddingDate.Time),
		message.TokenAppName:              d.appName,
	}

	emailBody := message.Render(d.templates.AnniversaryEmail, tokens)
	d.attemptEmail(ctx, report, recipient.Email, recipient.FirstName, d.templates.AnniversarySubject, emailBody)

	chatText := message.Render(d.templates.AnniversaryChat, tokens)
	d.attemptChat(ctx, report, recipient.MobileNo, recipient.FirstName, chatText)
}

func (d *Dispatcher) attemptEmail(ctx context.Context, report *Report, to, recipientName, subject, body string) {
	report.Attempted++
	if err := d.email.Send(ctx, to, subject, body); err != nil {
		d.log.WithField("recipient", recipientName).Errorf("%s: email to %s: %v", sendFailureMarker, to, err)
		report.Failures = append(report.Failures, DeliveryFailure{Recipient: recipientName, Channel: "email", Err: err})
		return
	}
	report.Sent++
	d.log.WithField("recipient", recipientName).Infof("Email sent to %s", to)
}

func (d *Dispatcher) attemptChat(ctx context.Context, report *Report, phone, recipientName, text string) {
	if phone == "" {
		d.log.WithField("recipient", recipientName).Debug("Recipient has no mobile number, skipping chat delivery")
		return
	}
	report.Attempted++
	if err := d.chat.SendText(ctx, phone, text); err != nil {
		d.log.WithField("recipient", recipientName).Errorf("%s: chat message to %s: %v", sendFailureMarker, phone, err)
		report.Failures = append(report.Failures, DeliveryFailure{Recipient: recipientName, Channel: "chat", Err: err})
		return
	}
	report.Sent++
	d.log.WithField("recipient", recipientName).Infof("Chat message sent to %s", phone)
}

func companyNames(companies []company.Company) []string {
	names := make([]string, 0, len(companies))
	for _, c := range companies {
		names = append(names, c.DisplayName())
	}
	return names
}
