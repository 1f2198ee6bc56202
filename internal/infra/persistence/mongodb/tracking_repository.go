package mongodb

import (
	"context"
	"time"

	"rumbo/internal/domain/entity"
	"rumbo/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const trackingCollection = "tracking"

// trackingRepository implements the repository.TrackingRepository interface.
type trackingRepository struct {
	collection *mongo.Collection
}

// NewTrackingRepository is the constructor for trackingRepository.
func NewTrackingRepository(db *mongo.Database) repository.TrackingRepository {
	return &trackingRepository{
		collection: db.Collection(trackingCollection),
	}
}

// Insert stores a new event and returns the generated document ID as hex.
// Order existence is deliberately not checked here; the API layer does that.
func (repo *trackingRepository) Insert(ctx context.Context, event *entity.TrackingEvent) (string, error) {
	doc := fromTrackingDomain(event)

	result, err := repo.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", errors.Wrap(err, "failed to insert tracking document")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted ID type")
	}

	return oid.Hex(), nil
}

// FindLatest returns the most recent event for the order, or nil when there
// is none. Timestamp ties are broken by the store's natural result order.
func (repo *trackingRepository) FindLatest(ctx context.Context, orderID int64) (*entity.TrackingEvent, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	var doc trackingDocument
	err := repo.collection.FindOne(ctx, bson.M{"orden_id": orderID}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find latest tracking event")
	}

	return toTrackingDomain(&doc), nil
}

// FindByOrder returns events for the order newest-first, capped at limit.
func (repo *trackingRepository) FindByOrder(ctx context.Context, orderID int64, limit int) ([]*entity.TrackingEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	return repo.find(ctx, bson.M{"orden_id": orderID}, opts)
}

// FindByOrderChronological returns every event for the order oldest-first.
func (repo *trackingRepository) FindByOrderChronological(ctx context.Context, orderID int64) ([]*entity.TrackingEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	return repo.find(ctx, bson.M{"orden_id": orderID}, opts)
}

// FindNearby runs a $nearSphere query against the 2dsphere index over active
// events only. Results come back ascending by distance from the point.
func (repo *trackingRepository) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]*entity.TrackingEvent, error) {
	filter := bson.M{
		"activo": true,
		"ubicacion": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        geoJSONPointType,
					"coordinates": []float64{lng, lat},
				},
				"$maxDistance": radiusMeters,
			},
		},
	}

	return repo.find(ctx, filter, nil)
}

// DeactivateByOrder clears the active flag on every event of the order and
// stamps the synchronization time. This is the delivery-synchronization
// write; it is the only bulk mutation the collection sees.
func (repo *trackingRepository) DeactivateByOrder(ctx context.Context, orderID int64, syncedAt time.Time) (int64, error) {
	update := bson.M{"$set": bson.M{
		"activo":               false,
		"fecha_sincronizacion": syncedAt,
	}}

	result, err := repo.collection.UpdateMany(ctx, bson.M{"orden_id": orderID}, update)
	if err != nil {
		return 0, errors.Wrap(err, "failed to deactivate tracking events")
	}

	return result.ModifiedCount, nil
}

// DeleteByOrder removes every event of the order.
func (repo *trackingRepository) DeleteByOrder(ctx context.Context, orderID int64) (int64, error) {
	result, err := repo.collection.DeleteMany(ctx, bson.M{"orden_id": orderID})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete tracking events")
	}

	return result.DeletedCount, nil
}

func (repo *trackingRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entity.TrackingEvent, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = repo.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = repo.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, errors.Wrap(err, "tracking query failed")
	}
	defer cursor.Close(ctx)

	var docs []trackingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode tracking documents")
	}

	events := make([]*entity.TrackingEvent, 0, len(docs))
	for i := range docs {
		events = append(events, toTrackingDomain(&docs[i]))
	}

	return events, nil
}

// ensureTrackingIndexes creates the collection's indexes: the 2dsphere
// spatial index backing proximity queries, the compound (orden_id,
// timestamp desc) index backing latest-location and history reads, and the
// activo index backing the proximity filter.
func ensureTrackingIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "ubicacion", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "orden_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "activo", Value: 1}}},
	}

	_, err := db.Collection(trackingCollection).Indexes().CreateMany(ctx, indexes)

	return errors.Wrap(err, "failed to create tracking indexes")
}
