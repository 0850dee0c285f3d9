// Package mail implements transactional order emails over SMTP.
package mail

import (
	"bytes"
	"context"
	"html/template"
	"io"

	"campuskart/config"
	"campuskart/internal/domain/service"
	"campuskart/internal/errors"

	"gopkg.in/gomail.v2"
)

// smtpMailer implements service.Mailer using gomail over a configured relay.
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string

	confirmationTmpl *template.Template
	notificationTmpl *template.Template
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp config must be provided")
	}

	confirmationTmpl, err := template.New("purchase_confirmation").Parse(purchaseConfirmationHTML)
	if err != nil {
		return nil, errors.Wrap(err, "parse purchase confirmation template")
	}

	notificationTmpl, err := template.New("order_notification").Parse(orderNotificationHTML)
	if err != nil {
		return nil, errors.Wrap(err, "parse order notification template")
	}

	return &smtpMailer{
		dialer:           gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.UserName, cfg.SMTP.Password),
		from:             cfg.SMTP.From,
		confirmationTmpl: confirmationTmpl,
		notificationTmpl: notificationTmpl,
	}, nil
}

// SendPurchaseConfirmation emails the buyer that their order was placed.
// The pickup QR code, when present, rides along as a PNG attachment.
func (m *smtpMailer) SendPurchaseConfirmation(ctx context.Context, data *service.OrderEmailData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := renderTemplate(m.confirmationTmpl, data)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", data.Order.Email)
	msg.SetHeader("Subject", "Purchase Confirmation - CampusKart")
	msg.SetBody("text/html", body)

	if len(data.PickupCode) > 0 {
		code := data.PickupCode
		msg.Attach("pickup-code.png",
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(code)

				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {"image/png"}}),
		)
	}

	return errors.Wrap(m.dialer.DialAndSend(msg), "send purchase confirmation")
}

// SendOrderNotification emails the item's seller that a new order came in.
func (m *smtpMailer) SendOrderNotification(ctx context.Context, data *service.OrderEmailData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := renderTemplate(m.notificationTmpl, data)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", data.Admin.Email)
	msg.SetHeader("Subject", "New Order Received - CampusKart")
	msg.SetBody("text/html", body)

	return errors.Wrap(m.dialer.DialAndSend(msg), "send order notification")
}

func renderTemplate(tmpl *template.Template, data *service.OrderEmailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "render email template")
	}

	return buf.String(), nil
}
