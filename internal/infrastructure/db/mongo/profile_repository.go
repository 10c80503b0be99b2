package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hirafic/marketplace-api/internal/core/domain"
)

const (
	collectionClients  = "clients"
	collectionArtisans = "artisans"
)

type mongoClient struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	PhoneNumber string             `bson:"phone_number"`
	Location    string             `bson:"location"`
}

type mongoArtisan struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"user_id"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	PhoneNumber    string             `bson:"phone_number"`
	Location       string             `bson:"location"`
	Specialization string             `bson:"specialization"`
	Skills         string             `bson:"skills"`
	SalaryPerHour  float64            `bson:"salary_per_hour"`
}

// ClientRepository persists client profiles.
type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(collectionClients)}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"user_id":      c.UserID,
		"name":         c.Name,
		"email":        c.Email,
		"phone_number": c.PhoneNumber,
		"location":     c.Location,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	return nil
}

func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *ClientRepository) FindByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *ClientRepository) findOne(ctx context.Context, filter bson.M) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoClient
	if err := r.col.FindOne(ctx, filter).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return &domain.Client{
		ID:          mc.ID.Hex(),
		UserID:      mc.UserID,
		Name:        mc.Name,
		Email:       mc.Email,
		PhoneNumber: mc.PhoneNumber,
		Location:    mc.Location,
	}, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return domain.ErrClientNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":         c.Name,
		"email":        c.Email,
		"phone_number": c.PhoneNumber,
		"location":     c.Location,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes on the clients collection.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// ArtisanRepository persists artisan profiles.
type ArtisanRepository struct {
	col *mongo.Collection
}

func NewArtisanRepository(db *mongo.Database) *ArtisanRepository {
	return &ArtisanRepository{col: db.Collection(collectionArtisans)}
}

func (r *ArtisanRepository) Create(ctx context.Context, a *domain.Artisan) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"user_id":         a.UserID,
		"name":            a.Name,
		"email":           a.Email,
		"phone_number":    a.PhoneNumber,
		"location":        a.Location,
		"specialization":  a.Specialization,
		"skills":          a.Skills,
		"salary_per_hour": a.SalaryPerHour,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert artisan: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid.Hex()
	}
	return nil
}

func (r *ArtisanRepository) FindByEmail(ctx context.Context, email string) (*domain.Artisan, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *ArtisanRepository) FindByUserID(ctx context.Context, userID string) (*domain.Artisan, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *ArtisanRepository) findOne(ctx context.Context, filter bson.M) (*domain.Artisan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoArtisan
	if err := r.col.FindOne(ctx, filter).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find artisan: %w", err)
	}
	return &domain.Artisan{
		ID:             ma.ID.Hex(),
		UserID:         ma.UserID,
		Name:           ma.Name,
		Email:          ma.Email,
		PhoneNumber:    ma.PhoneNumber,
		Location:       ma.Location,
		Specialization: ma.Specialization,
		Skills:         ma.Skills,
		SalaryPerHour:  ma.SalaryPerHour,
	}, nil
}

func (r *ArtisanRepository) Update(ctx context.Context, a *domain.Artisan) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return domain.ErrClientNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":            a.Name,
		"email":           a.Email,
		"phone_number":    a.PhoneNumber,
		"location":        a.Location,
		"specialization":  a.Specialization,
		"skills":          a.Skills,
		"salary_per_hour": a.SalaryPerHour,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update artisan: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes on the artisans collection.
func (r *ArtisanRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
