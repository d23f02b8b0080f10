package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/aws/aws-sdk-go/service/ses/sesiface"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer sends reports through SES as raw MIME messages.
type Mailer struct {
	client    sesiface.SESAPI
	emailTo   string
	emailFrom string
}

func NewMailer(client sesiface.SESAPI, emailTo string, emailFrom string) *Mailer {
	return &Mailer{
		client:    client,
		emailTo:   emailTo,
		emailFrom: emailFrom,
	}
}

// SendReport mails body with the file at attachment, if any
func (m *Mailer) SendReport(ctx context.Context, subject string, body string, attachment string) error {
	contextLogger := log.WithContext(ctx)
	if m.emailTo == "" || m.emailFrom == "" {
		return errors.New("email sender or recipients not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.emailFrom)
	msg.SetHeader("To", populateEmailRecipients(m.emailTo)...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if attachment != "" {
		msg.Attach(attachment)
	}

	var emailRaw bytes.Buffer
	if _, err := msg.WriteTo(&emailRaw); err != nil {
		contextLogger.WithError(err).Error("Error when writing email data")
		return err
	}

	emailParams := ses.SendRawEmailInput{
		Source:     aws.String(m.emailFrom),
		RawMessage: &ses.RawMessage{Data: emailRaw.Bytes()},
	}
	emailParams.SetDestinations(aws.StringSlice(populateEmailRecipients(m.emailTo)))

	out, err := m.client.SendRawEmailWithContext(ctx, &emailParams)
	if err != nil {
		contextLogger.WithError(err).Error("Error when sending email")
		return err
	}
	contextLogger.WithField("messageId", aws.StringValue(out.MessageId)).Info("Report email sent")
	return nil
}

func populateEmailRecipients(emailTo string) []string {
	var recipients []string
	for _, r := range strings.Split(emailTo, ",") {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	return recipients
}
