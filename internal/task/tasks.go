package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
)

const TypeSendContact = "contact:send"

type SendContactPayload struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	ReceivedAt int64  `json:"received_at"`
}

// NewSendContactTask creates an Asynq task delivering a contact message.
func NewSendContactTask(msg model.ContactMessage) (*asynq.Task, error) {
	p := SendContactPayload{
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Subject,
		Message:    msg.Message,
		ReceivedAt: msg.ReceivedAt.Unix(),
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal send-contact payload: %w", err)
	}
	return asynq.NewTask(TypeSendContact, data, asynq.MaxRetry(5)), nil
}

// ParseSendContactPayload parses the task payload to SendContactPayload.
func ParseSendContactPayload(t *asynq.Task) (SendContactPayload, error) {
	var p SendContactPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return SendContactPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
