// Package mongo implements crawler.Store on a MongoDB database.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"newswatch/internal/crawler"
)

// Collection names used by the daemon.
const (
	newsCollection  = "news"
	statsCollection = "stats"
	wordsCollection = "word_frequency"
)

// Store wraps a MongoDB database holding the three crawl collections.
type Store struct {
	client *mongo.Client
	news   *mongo.Collection
	stats  *mongo.Collection
	words  *mongo.Collection
}

// New connects to MongoDB and prepares the collections. A unique index on
// the article URL backs the first-write-wins upsert against concurrent
// duplicate fetches.
func New(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	db := client.Database(database)
	s := &Store{
		client: client,
		news:   db.Collection(newsCollection),
		stats:  db.Collection(statsCollection),
		words:  db.Collection(wordsCollection),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		// Index creation needs a reachable server; surface it as the
		// connectivity failure it is.
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.news.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "url", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create url index: %w", err)
	}

	_, err = s.words.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "word", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create word index: %w", err)
	}
	return nil
}

// UpsertArticle inserts the article unless a record with the same URL
// exists. Two workers racing on the same URL both pass the existence check
// at most once; the unique index turns the loser's insert into a skip.
func (s *Store) UpsertArticle(ctx context.Context, article crawler.Article) (bool, error) {
	err := s.news.FindOne(ctx, bson.M{"url": article.URL}).Err()
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, fmt.Errorf("check existing article: %w", err)
	}

	if _, err := s.news.InsertOne(ctx, article); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("insert article: %w", err)
	}
	return true, nil
}

// AppendSnapshot inserts the snapshot into the append-only stats log.
func (s *Store) AppendSnapshot(ctx context.Context, snapshot crawler.Snapshot) error {
	if _, err := s.stats.InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// ReconcileWordFrequencies folds the latest top-N list into the stored
// entries. Counts accumulate for words that persist across cycles; words
// that dropped out of the list are deleted, so the stored set always mirrors
// the most recent ranking.
func (s *Store) ReconcileWordFrequencies(ctx context.Context, top []crawler.WordCount) error {
	keep := make([]string, 0, len(top))
	for _, wc := range top {
		keep = append(keep, wc.Word)
		_, err := s.words.UpdateOne(ctx,
			bson.M{"word": wc.Word},
			bson.M{"$inc": bson.M{"count": wc.Count}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("upsert word %q: %w", wc.Word, err)
		}
	}

	if _, err := s.words.DeleteMany(ctx, bson.M{"word": bson.M{"$nin": keep}}); err != nil {
		return fmt.Errorf("prune stale words: %w", err)
	}
	return nil
}

// ArticleBodies scans the whole news collection and returns every body text.
func (s *Store) ArticleBodies(ctx context.Context) ([]string, error) {
	cursor, err := s.news.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"text": 1, "_id": 0}))
	if err != nil {
		return nil, fmt.Errorf("scan articles: %w", err)
	}
	defer cursor.Close(ctx)

	var bodies []string
	for cursor.Next(ctx) {
		var doc struct {
			Text string `bson:"text"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode article body: %w", err)
		}
		bodies = append(bodies, doc.Text)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}
	return bodies, nil
}

// UpdateDateCounts groups articles by the day part of their update date,
// skipping records without one.
func (s *Store) UpdateDateCounts(ctx context.Context) ([]crawler.DateCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"update_date": bson.M{"$nin": bson.A{"", crawler.NoInformation}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$substrCP": bson.A{"$update_date", 0, 10}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := s.news.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate update dates: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []crawler.DateCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode date counts: %w", err)
	}
	return counts, nil
}

// Ping verifies the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects from the server.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
