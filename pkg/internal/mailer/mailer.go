// Package mailer delivers transactional email on a best-effort basis; callers
// are expected to log failures instead of propagating them.
package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/spf13/viper"
)

type Sender interface {
	Send(to, subject, html string) error
}

// S is the process-wide notifier, wired up during boot.
var S Sender

type SmtpSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSmtp() *SmtpSender {
	return &SmtpSender{
		host:     viper.GetString("mailer.host"),
		port:     viper.GetInt("mailer.port"),
		username: viper.GetString("mailer.username"),
		password: viper.GetString("mailer.password"),
		from:     viper.GetString("mailer.from"),
	}
}

func (v *SmtpSender) Send(to, subject, html string) error {
	msg := "MIME-Version: 1.0\r\n"
	msg += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	msg += fmt.Sprintf("From: %s\r\n", v.from)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n", subject)
	msg += "\r\n" + html

	return smtp.SendMail(
		fmt.Sprintf("%s:%d", v.host, v.port),
		smtp.PlainAuth("", v.username, v.password, v.host),
		v.from,
		[]string{to},
		[]byte(msg),
	)
}
