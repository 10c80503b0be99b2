package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hirafic/marketplace-api/internal/core/domain"
	"github.com/hirafic/marketplace-api/internal/core/ports"
)

const collectionBookings = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

type mongoBooking struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	ClientID       string               `bson:"client_id"`
	ArtisanID      string               `bson:"artisan_id"`
	Title          string               `bson:"title"`
	Status         domain.BookingStatus `bson:"status"`
	RequestDate    time.Time            `bson:"request_date"`
	CompletionDate time.Time            `bson:"completion_date"`
	Details        string               `bson:"details"`
	CreatedAt      time.Time            `bson:"created_at"`
}

func toDomainBooking(mb mongoBooking) *domain.Booking {
	return &domain.Booking{
		ID:             mb.ID.Hex(),
		ClientID:       mb.ClientID,
		ArtisanID:      mb.ArtisanID,
		Title:          mb.Title,
		Status:         mb.Status,
		RequestDate:    mb.RequestDate,
		CompletionDate: mb.CompletionDate,
		Details:        mb.Details,
		CreatedAt:      mb.CreatedAt,
	}
}

// Create inserts a new booking document and backfills the generated id.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBooking{
		ClientID:       b.ClientID,
		ArtisanID:      b.ArtisanID,
		Title:          b.Title,
		Status:         b.Status,
		RequestDate:    b.RequestDate,
		CompletionDate: b.CompletionDate,
		Details:        b.Details,
		CreatedAt:      b.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid.Hex()
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	var mb mongoBooking
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return toDomainBooking(mb), nil
}

// UpdateStatus sets the booking's status. Only status is mutable; all other
// fields are immutable after creation.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookingNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// List returns a page of bookings matching the filter, sorted by request_date
// descending, plus the total count.
func (r *BookingRepository) List(ctx context.Context, filter ports.ListBookingsFilter) ([]*domain.Booking, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.ArtisanID != "" {
		query["artisan_id"] = filter.ArtisanID
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "request_date", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.PerPage)).
		SetLimit(int64(filter.PerPage))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []*domain.Booking
	for cur.Next(ctx) {
		var mb mongoBooking
		if err := cur.Decode(&mb); err != nil {
			return nil, 0, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, toDomainBooking(mb))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, total, nil
}

// EnsureIndexes creates the lookup and sort indexes on the bookings collection.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "request_date", Value: -1}}},
		{Keys: bson.D{{Key: "artisan_id", Value: 1}, {Key: "request_date", Value: -1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
