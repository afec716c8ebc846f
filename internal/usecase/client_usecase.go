package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase/interfaces"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidClientName = errors.New("invalid client name")
)

// ClientInput carries the caller-editable contact fields.
type ClientInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// IClientUseCase exposes client operations. Clients serve as templates for
// Invoice.To; invoices keep their own denormalized copy, so edits here
// never touch past invoices.

type IClientUseCase interface {
	Create(ctx context.Context, input ClientInput) (entities.Client, error)
	Update(ctx context.Context, id string, input ClientInput) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

type ClientUseCase struct {
	local interfaces.ILocalStore
	sync  interfaces.ISyncNotifier
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(local interfaces.ILocalStore, sync interfaces.ISyncNotifier) *ClientUseCase {
	return &ClientUseCase{local: local, sync: sync}
}

func (u *ClientUseCase) Create(ctx context.Context, input ClientInput) (entities.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.local.PutClient(c); err != nil {
		return entities.Client{}, err
	}
	u.sync.PushUpsert(entities.EntityTypeClient, c.ID, c)
	recordActivity(u.local, u.sync, entities.ActivityActionCreated, entities.EntityTypeClient, c.ID, fmt.Sprintf("Client %s created", c.Name))
	return c, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id string, input ClientInput) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	if strings.TrimSpace(input.Name) == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	existing, err := u.local.GetClient(id)
	if err != nil {
		return entities.Client{}, err
	}
	if existing.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Email = input.Email
	existing.Phone = input.Phone
	existing.Address = input.Address
	existing.UpdatedAt = time.Now().UTC()

	if err := u.local.PutClient(existing); err != nil {
		return entities.Client{}, err
	}
	u.sync.PushUpsert(entities.EntityTypeClient, existing.ID, existing)
	recordActivity(u.local, u.sync, entities.ActivityActionUpdated, entities.EntityTypeClient, existing.ID, fmt.Sprintf("Client %s updated", existing.Name))
	return existing, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	existing, err := u.local.GetClient(id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrClientNotFound
	}
	if err := u.local.DeleteClient(id); err != nil {
		return err
	}
	u.sync.PushDelete(entities.EntityTypeClient, id)
	recordActivity(u.local, u.sync, entities.ActivityActionDeleted, entities.EntityTypeClient, id, fmt.Sprintf("Client %s deleted", existing.Name))
	return nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.local.GetClient(id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.local.ListClients()
}
