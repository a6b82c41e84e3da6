package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers marketplace notification mail.
type Sender interface {
	SendProposalReceived(listingTitle, proposerName, offerText string) error
}

// SMTPSender sends notifications to a single configured inbox.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	notifyTo string
}

func NewSMTPSender(host string, port int, username, password, notifyTo string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		notifyTo: notifyTo,
	}
}

func (s *SMTPSender) SendProposalReceived(listingTitle, proposerName, offerText string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.username)
	m.SetHeader("To", s.notifyTo)
	m.SetHeader("Subject", fmt.Sprintf("New proposal for %q", listingTitle))
	m.SetBody("text/plain", fmt.Sprintf("%s sent a proposal for %q:\n\n%s\n", proposerName, listingTitle, offerText))

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	return d.DialAndSend(m)
}
