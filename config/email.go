package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

var goMailDialer *gomail.Dialer

func InitEmailer() error {
	host, err := getSMTPHost()
	if err != nil {
		return err
	}

	port, err := getSMTPPort()
	if err != nil {
		return err
	}

	goMailDialer = gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))

	_, err = getSender()
	if err != nil {
		return err
	}

	return nil
}

// SendWelcomeEmail mails the initial credentials notice to a newly
// registered user. The login password itself is never mailed.
func SendWelcomeEmail(name, emailAddress, role, schoolName string) error {
	if goMailDialer == nil {
		return fmt.Errorf("emailer is not initialized")
	}

	senderEmail, err := getSender()
	if err != nil {
		return err
	}

	goMailMessage := gomail.NewMessage()
	goMailMessage.SetHeader("From", senderEmail)
	goMailMessage.SetHeader("To", emailAddress)

	subject := fmt.Sprintf("Welcome to EduSphere, %s!", name)
	goMailMessage.SetHeader("Subject", subject)

	body := fmt.Sprintf(`Dear %s,

An account has been created for you on EduSphere with the role %q for %s.

Please sign in with your registered email address and the password given to you by your administrator. You will be asked to change it on first login.

If you did not expect this email, please contact your school administration.`, name, role, schoolName)

	goMailMessage.SetBody("text/plain", body)

	if err := goMailDialer.DialAndSend(goMailMessage); err != nil {
		return err
	}

	return nil
}

func getSender() (string, error) {
	emailSender := os.Getenv("EMAIL_SENDER")
	if emailSender == "" {
		return "", fmt.Errorf("empty email sender")
	}
	return emailSender, nil
}

func getSMTPHost() (string, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return "", fmt.Errorf("smtp host invalid, value : %s", host)
	}
	return host, nil
}

func getSMTPPort() (int, error) {
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		return 0, fmt.Errorf("smtp port invalid, value : %s", port)
	}

	v, err := strconv.Atoi(port)
	if err != nil {
		return 0, fmt.Errorf("smtp port is not a number, value : %s", port)
	}
	return v, nil
}
