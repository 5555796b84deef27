package infra

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// Mailer sends operational emails over SMTP.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
}

func NewMailer(host string, port int, user, password string) *Mailer {
	return &Mailer{host: host, port: port, user: user, password: password}
}

func (m *Mailer) Enviar(destinatario, asunto, cuerpo string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{destinatario}
	e.Subject = asunto
	e.Text = []byte(cuerpo)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	return e.Send(addr, smtp.PlainAuth("", m.user, m.password, m.host))
}
