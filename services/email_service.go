package services

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/repository"
	"github.com/phillip/youth-portal/utils"
)

// Mailer delivers one HTML message. utils.ZeptoMailer is the production implementation.
type Mailer interface {
	SendEmail(ctx context.Context, msg utils.Message) error
}

// EmailService composes the portal's outbound mail.
type EmailService struct {
	mailer   Mailer
	userRepo repository.UserRepository
	inbox    string
}

func NewEmailService(mailer Mailer, userRepo repository.UserRepository, inbox string) *EmailService {
	return &EmailService{
		mailer:   mailer,
		userRepo: userRepo,
		inbox:    inbox,
	}
}

// ContactInput is a message from the public contact form.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// BroadcastInput targets UserIDs, or every approved member when UserIDs is empty.
type BroadcastInput struct {
	Subject string
	Message string
	UserIDs []primitive.ObjectID
}

// SendContact forwards a contact form submission to the organization inbox.
func (s *EmailService) SendContact(ctx context.Context, input ContactInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Message) == "" {
		return invalid("Please provide name, email and message")
	}
	if s.inbox == "" {
		return fmt.Errorf("contact inbox is not configured")
	}

	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		subject = "New message from the contact form"
	}

	body := fmt.Sprintf("<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>",
		html.EscapeString(input.Name),
		html.EscapeString(input.Email),
		paragraphs(input.Message),
	)

	return s.mailer.SendEmail(ctx, utils.Message{
		To:       []utils.Recipient{{Address: s.inbox}},
		ReplyTo:  &utils.Recipient{Address: input.Email, Name: input.Name},
		Subject:  subject,
		HTMLBody: body,
	})
}

// SendToMembers emails the given users, or all approved members, one message each.
// It returns how many messages were accepted and fails only when none were.
func (s *EmailService) SendToMembers(ctx context.Context, input BroadcastInput) (int, error) {
	if strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.Message) == "" {
		return 0, invalid("Please provide subject and message")
	}

	filter := repository.UserFilter{IDs: input.UserIDs}
	if len(input.UserIDs) == 0 {
		approved := true
		filter = repository.UserFilter{IsApproved: &approved}
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to load recipients: %w", err)
	}
	if len(users) == 0 {
		return 0, invalid("No recipients found")
	}

	// Each member gets a separate message so addresses are never shared.
	body := paragraphs(input.Message)
	sent := 0
	var firstErr error
	for _, u := range users {
		err := s.mailer.SendEmail(ctx, utils.Message{
			To:       []utils.Recipient{{Address: u.Email, Name: u.Name}},
			Subject:  input.Subject,
			HTMLBody: body,
		})
		if err != nil {
			log.Printf("broadcast email to %s failed: %v", u.Email, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		sent++
	}
	if sent == 0 {
		return 0, firstErr
	}
	return sent, nil
}

func (s *EmailService) NotifyApproval(ctx context.Context, user *models.User) error {
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your membership has been approved. You can now register for events.</p>",
		html.EscapeString(user.Name))

	return s.mailer.SendEmail(ctx, utils.Message{
		To:       []utils.Recipient{{Address: user.Email, Name: user.Name}},
		Subject:  "Your account has been approved",
		HTMLBody: body,
	})
}

func paragraphs(text string) string {
	return strings.ReplaceAll(html.EscapeString(strings.TrimSpace(text)), "\n", "<br>")
}
