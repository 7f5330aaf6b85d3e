package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
)

const (
	subjectListingCreated = "listing.created"
	subjectListingUpdated = "listing.updated"
	subjectListingDeleted = "listing.deleted"
)

// Publisher emits listing lifecycle events consumed by the notification,
// favorite and messaging subsystems.
type Publisher struct {
	conn *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats at %s: %w", url, err)
	}
	return &Publisher{conn: conn}, nil
}

type listingEvent struct {
	ID          int64              `json:"id"`
	ListingType domain.ListingType `json:"listingType"`
	Title       string             `json:"title"`
	City        string             `json:"city"`
	CreatedBy   string             `json:"createdBy"`
}

func (p *Publisher) ListingCreated(ctx context.Context, listing *domain.Listing) error {
	return p.publish(subjectListingCreated, listingEvent{
		ID:          listing.ID,
		ListingType: listing.Type,
		Title:       listing.Title,
		City:        listing.City,
		CreatedBy:   listing.CreatedBy,
	})
}

func (p *Publisher) ListingUpdated(ctx context.Context, listing *domain.Listing) error {
	return p.publish(subjectListingUpdated, listingEvent{
		ID:          listing.ID,
		ListingType: listing.Type,
		Title:       listing.Title,
		City:        listing.City,
		CreatedBy:   listing.CreatedBy,
	})
}

func (p *Publisher) ListingDeleted(ctx context.Context, id int64) error {
	return p.publish(subjectListingDeleted, map[string]int64{"id": id})
}

func (p *Publisher) publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", subject, err)
	}
	return p.conn.Publish(subject, data)
}

func (p *Publisher) Close() {
	p.conn.Close()
}
