package contact

import (
	"context"

	"github.com/trezcool/safari/core"
)

type (
	// API is the contact-message surface of the portal backend.
	API interface {
		SendMessage(ctx context.Context, data NewMessage) (Message, error)
		Messages(ctx context.Context) ([]Message, error)
		Message(ctx context.Context, id int) (Message, error)
		MessagesByType(ctx context.Context, typ string) ([]Message, error)
		MarkMessageRead(ctx context.Context, id int) error
		UnreadMessageCount(ctx context.Context) (int, error)
		DeleteMessage(ctx context.Context, id int) error
	}

	Service struct {
		api API
		log core.Logger
	}
)

func NewService(api API, log core.Logger) *Service {
	return &Service{api: api, log: log}
}

// Send validates the form client-side first; an invalid form never reaches
// the network.
func (svc *Service) Send(ctx context.Context, data NewMessage) (Message, error) {
	if err := data.Validate(); err != nil {
		return Message{}, err
	}
	return svc.api.SendMessage(ctx, data)
}

func (svc *Service) All(ctx context.Context) ([]Message, error) {
	return svc.api.Messages(ctx)
}

func (svc *Service) Get(ctx context.Context, id int) (Message, error) {
	return svc.api.Message(ctx, id)
}

func (svc *Service) ByType(ctx context.Context, typ string) ([]Message, error) {
	return svc.api.MessagesByType(ctx, typ)
}

func (svc *Service) MarkRead(ctx context.Context, id int) error {
	return svc.api.MarkMessageRead(ctx, id)
}

// UnreadCount backs the admin message badge. A failed call keeps whatever
// count the caller last displayed.
func (svc *Service) UnreadCount(ctx context.Context) (int, error) {
	return svc.api.UnreadMessageCount(ctx)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.api.DeleteMessage(ctx, id)
}
