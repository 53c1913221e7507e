package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
)

// NewsRepository implements ports.NewsRepository.
type NewsRepository struct {
	col *mongo.Collection
}

func NewNewsRepository(db *mongo.Database) *NewsRepository {
	return &NewsRepository{col: db.Collection(collectionNews)}
}

// List runs a count and a find for the filter. Search is a case-insensitive
// substring match over title and content.
func (r *NewsRepository) List(ctx context.Context, f ports.NewsListFilter) ([]*domain.News, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": f.Search, "$options": "i"}},
			bson.M{"content": bson.M{"$regex": f.Search, "$options": "i"}},
		}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count news: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: f.SortField, Value: f.SortDir}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list news: %w", err)
	}
	defer cur.Close(ctx)

	news := []*domain.News{}
	if err := cur.All(ctx, &news); err != nil {
		return nil, 0, fmt.Errorf("decode news: %w", err)
	}
	return news, total, nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id string) (*domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := parseObjectID(id)
	if !ok {
		return nil, domain.ErrNewsNotFound
	}

	var n domain.News
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, fmt.Errorf("find news: %w", err)
	}
	return &n, nil
}

func (r *NewsRepository) Create(ctx context.Context, n *domain.News) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, n)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrNewsExists
		}
		return fmt.Errorf("insert news: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		n.ID = oid
	}
	return nil
}

func (r *NewsRepository) Update(ctx context.Context, n *domain.News) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": n.ID}, n)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrNewsExists
		}
		return fmt.Errorf("update news: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := parseObjectID(id)
	if !ok {
		return domain.ErrNewsNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

// CalendarEntries fetches only the date and slug of every article.
func (r *NewsRepository) CalendarEntries(ctx context.Context) ([]*domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"date": 1, "slug": 1})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("news calendar entries: %w", err)
	}
	defer cur.Close(ctx)

	news := []*domain.News{}
	if err := cur.All(ctx, &news); err != nil {
		return nil, fmt.Errorf("decode news calendar entries: %w", err)
	}
	return news, nil
}
