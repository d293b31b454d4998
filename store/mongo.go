package store

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore is the production IssueStore: records in a MongoDB
// collection, live upvote fan-out over Redis pub/sub. A nil redis
// client disables the live channel but not the rest of the store.
type MongoStore struct {
	issues *mongo.Collection
	rdb    *redis.Client
}

func NewMongoStore(issues *mongo.Collection, rdb *redis.Client) *MongoStore {
	return &MongoStore{issues: issues, rdb: rdb}
}

func upvoteChannel(id string) string {
	return "issues:" + id + ":upvotes"
}

func (s *MongoStore) FetchAll(ctx context.Context) ([]RawIssue, error) {
	if s.issues == nil {
		return nil, ErrStoreUnavailable
	}

	cursor, err := s.issues.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	raws := make([]RawIssue, 0, len(docs))
	for _, doc := range docs {
		raws = append(raws, toRawIssue(doc))
	}
	return raws, nil
}

func (s *MongoStore) Fetch(ctx context.Context, id string) (RawIssue, error) {
	if s.issues == nil {
		return RawIssue{}, ErrStoreUnavailable
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return RawIssue{}, ErrNotFound
	}

	var doc bson.M
	err = s.issues.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return RawIssue{}, ErrNotFound
	}
	if err != nil {
		return RawIssue{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return toRawIssue(doc), nil
}

func (s *MongoStore) Create(ctx context.Context, draft IssueDraft) (string, error) {
	if s.issues == nil {
		return "", ErrStoreUnavailable
	}

	res, err := s.issues.InsertOne(ctx, draft)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	objID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: unexpected inserted id %v", ErrWriteFailed, res.InsertedID)
	}
	return objID.Hex(), nil
}

func (s *MongoStore) IncrementUpvotes(ctx context.Context, id string, current int) (int, error) {
	if s.issues == nil {
		return 0, ErrStoreUnavailable
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrNotFound
	}

	// Plain overwrite of current+1, not $inc: concurrent supporters
	// holding the same stale read write the same value and one
	// increment is lost. Matches the store's observed last-writer-wins
	// behavior.
	next := current + 1
	res, err := s.issues.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"upvotes": next}})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if res.MatchedCount == 0 {
		return 0, ErrNotFound
	}

	s.publishUpvotes(ctx, id, next)
	return next, nil
}

// publishUpvotes fans the new count out to live subscribers. Fan-out
// is advisory; failure is logged and the write stands.
func (s *MongoStore) publishUpvotes(ctx context.Context, id string, value int) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Publish(ctx, upvoteChannel(id), strconv.Itoa(value)).Err(); err != nil {
		log.Printf("issue %s: failed to publish upvote count: %v", id, err)
	}
}

func (s *MongoStore) SubscribeUpvotes(ctx context.Context, id string, onChange func(int)) (func(), error) {
	raw, err := s.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	// Initial value fires synchronously at attach time.
	onChange(currentUpvotes(raw))

	if s.rdb == nil {
		return func() {}, nil
	}

	pubsub := s.rdb.Subscribe(ctx, upvoteChannel(id))
	go func() {
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				n, err := strconv.Atoi(msg.Payload)
				if err != nil {
					log.Printf("issue %s: bad upvote payload %q", id, msg.Payload)
					continue
				}
				onChange(n)
			}
		}
	}()

	return func() { _ = pubsub.Close() }, nil
}

func currentUpvotes(raw RawIssue) int {
	switch v := raw.Fields["upvotes"].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// toRawIssue strips the identifier out of a decoded document and
// flattens driver types into plain Go values so nothing above the
// store layer sees bson.
func toRawIssue(doc bson.M) RawIssue {
	raw := RawIssue{Fields: make(map[string]any, len(doc))}
	for k, v := range doc {
		if k == "_id" {
			switch id := v.(type) {
			case primitive.ObjectID:
				raw.ID = id.Hex()
			case string:
				raw.ID = id
			}
			continue
		}
		raw.Fields[k] = plainValue(v)
	}
	return raw
}

func plainValue(v any) any {
	switch val := v.(type) {
	case bson.M:
		m := make(map[string]any, len(val))
		for k, inner := range val {
			m[k] = plainValue(inner)
		}
		return m
	case bson.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = plainValue(e.Value)
		}
		return m
	case bson.A:
		a := make([]any, len(val))
		for i, inner := range val {
			a[i] = plainValue(inner)
		}
		return a
	case primitive.DateTime:
		return val.Time()
	case primitive.ObjectID:
		return val.Hex()
	default:
		return v
	}
}
