package mailingservices

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

// Mailgun wraps the mailgun client used for transactional mail.
type Mailgun struct {
	Client *mailgun.MailgunImpl
	From   string
}

func (m *Mailgun) Init() {
	m.Client = mailgun.NewMailgun(os.Getenv("RECYCLEMART_MG_DOMAIN"), os.Getenv("RECYCLEMART_MG_PUBLIC_API_KEY"))
	m.From = os.Getenv("RECYCLEMART_EMAIL_FROM")
}

// SendWelcomeMessage mails a new user after signup. Best effort; callers
// log failures and move on.
func (m *Mailgun) SendWelcomeMessage(recipient, subject string) (string, error) {
	if m.Client == nil {
		return "", fmt.Errorf("mailgun client not initialized")
	}

	body := "Welcome to RecycleMart! Upload your recyclable items, browse listings, and earn points for every item you give a second life."
	message := m.Client.NewMessage(m.From, subject, body, recipient)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, id, err := m.Client.Send(ctx, message)
	if err != nil {
		return "", err
	}
	return id, nil
}
