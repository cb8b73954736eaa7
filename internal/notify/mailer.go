package notify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/wneessen/go-mail"
)

const smtpTimeout = 15 * time.Second

var confirmationTmpl = template.Must(template.New("confirmation").Parse(
	`Hi {{.BuyerName}},

Thank you for your order! We have received your payment.

Order number: {{.OrderNumber}}
{{range .Items}}
  {{.Title}} x{{.Quantity}} @ {{.Price.StringFixed 2}}{{end}}

Total: {{.Total.StringFixed 2}}

We will let you know when it ships.
`))

// RenderConfirmation renders the plain-text body of the confirmation email.
func RenderConfirmation(e entities.OrderPlacedEvent) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, e); err != nil {
		return "", fmt.Errorf("failed to render confirmation: %w", err)
	}
	return buf.String(), nil
}

func confirmationSubject(e entities.OrderPlacedEvent) string {
	return fmt.Sprintf("Order %s confirmed", e.OrderNumber)
}

type sendFunc func(ctx context.Context, msgs ...*mail.Msg) error

type SMTPMailer struct {
	from string
	send sendFunc
}

func NewSMTPMailer(cfg config.SMTP) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(smtpTimeout),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return &SMTPMailer{from: cfg.From, send: client.DialAndSendWithContext}, nil
}

// SendOrderConfirmation отправляет письмо; отмена ctx прерывает диалог с SMTP сервером.
func (m *SMTPMailer) SendOrderConfirmation(ctx context.Context, e entities.OrderPlacedEvent) error {
	body, err := RenderConfirmation(e)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(e.BuyerEmail); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(confirmationSubject(e))
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// LogMailer is used when SMTP is not configured.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger.With(slog.String("mailer", "log"))}
}

func (m *LogMailer) SendOrderConfirmation(ctx context.Context, e entities.OrderPlacedEvent) error {
	m.logger.InfoContext(ctx, "order confirmation",
		slog.String("order_number", e.OrderNumber),
		slog.String("to", e.BuyerEmail),
		slog.String("total", e.Total.StringFixed(2)),
	)
	return nil
}
