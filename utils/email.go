package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

var ErrEmailNotConfigured = errors.New("missing required email config")

// email request payload for ZeptoMail API
type emailRequest struct {
	From     emailWithName   `json:"from"`
	To       []toRecipient   `json:"to"`
	ReplyTo  []emailWithName `json:"reply_to,omitempty"`
	Subject  string          `json:"subject"`
	HtmlBody string          `json:"htmlbody"`
}

type toRecipient struct {
	Email emailWithName `json:"email_address"`
}

type emailWithName struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

// Recipient is one addressee of an outgoing email.
type Recipient struct {
	Address string
	Name    string
}

// Message is an HTML email. ReplyTo is optional.
type Message struct {
	To       []Recipient
	ReplyTo  *Recipient
	Subject  string
	HTMLBody string
}

// ZeptoMailer sends email through the ZeptoMail HTTP API.
type ZeptoMailer struct {
	APIURL   string // e.g. https://api.zeptomail.com/v1.1/email
	APIKey   string // e.g. Zoho-enczapikey xxxxx
	From     string
	FromName string
	Client   *http.Client
}

func NewZeptoMailer(apiURL, apiKey, from, fromName string) *ZeptoMailer {
	return &ZeptoMailer{
		APIURL:   apiURL,
		APIKey:   apiKey,
		From:     from,
		FromName: fromName,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SendEmail sends an HTML email using the ZeptoMail HTTP API
func (m *ZeptoMailer) SendEmail(ctx context.Context, msg Message) error {
	if m.APIURL == "" || m.APIKey == "" || m.From == "" {
		log.Println("Missing ZEPTO_API_URL, ZEPTO_API_KEY, or EMAIL_FROM")
		return ErrEmailNotConfigured
	}

	payload := emailRequest{
		From:     emailWithName{Address: m.From, Name: m.FromName},
		Subject:  msg.Subject,
		HtmlBody: msg.HTMLBody,
	}
	for _, r := range msg.To {
		payload.To = append(payload.To, toRecipient{Email: emailWithName{Address: r.Address, Name: r.Name}})
	}
	if msg.ReplyTo != nil {
		payload.ReplyTo = []emailWithName{{Address: msg.ReplyTo.Address, Name: msg.ReplyTo.Name}}
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal email payload: %v", err)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Printf("Failed to create request: %v", err)
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", m.APIKey)

	resp, err := m.Client.Do(req)
	if err != nil {
		log.Printf("Failed to send email: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		log.Printf("ZeptoMail returned status %s", resp.Status)
		return fmt.Errorf("zeptomail API error: %s", resp.Status)
	}

	log.Printf("Email successfully sent to %d recipient(s)", len(msg.To))
	return nil
}
