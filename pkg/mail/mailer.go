package mail

import (
	"fmt"

	gomail "github.com/go-mail/mail"
	"github.com/takimet-io/takimet/pkg/config"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewMailer(c config.SMTP) *mailer {
	return &mailer{
		dialer: gomail.NewDialer(c.Host, c.Port, c.Username, c.Password),
		from:   c.From,
	}
}

type mailer struct {
	dialer *gomail.Dialer
	from   string
}

func (m mailer) Send(to, subject, body string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	err := m.dialer.DialAndSend(message)
	if err != nil {
		return fmt.Errorf("failed to send mail to %q: %v", to, err)
	}
	return nil
}
