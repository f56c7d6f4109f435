package mongo

import (
	"VibeCheck/internal/model"
	"VibeCheck/internal/repository"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VoteCollection 投票集合名
const VoteCollection = "votes"

type voteRepoImpl struct {
	col *mongo.Collection
	now func() time.Time
}

func NewVoteRepo(db *mongo.Database) repository.VoteRepo {
	return &voteRepoImpl{
		col: db.Collection(VoteCollection),
		now: time.Now,
	}
}

// UpsertVote 以 (user_id, day) 为键 Upsert，唯一索引保证并发下只有一条
func (s *voteRepoImpl) UpsertVote(ctx context.Context, userID, day string, optionIndex int) (*model.WriteResult, error) {
	filter := bson.M{"user_id": userID, "day": day}
	update := bson.M{"$set": bson.M{
		"option_index": optionIndex,
		"updated_at":   s.now(),
	}}

	result, err := s.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, unavailable("upsert vote", err)
	}

	return &model.WriteResult{
		Inserted: result.UpsertedCount > 0 || result.UpsertedID != nil,
		Matched:  result.MatchedCount,
	}, nil
}

// ListVotes 按 _id 升序，即首次写入顺序
func (s *voteRepoImpl) ListVotes(ctx context.Context, day string) ([]*model.Vote, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := s.col.Find(ctx, bson.M{"day": day}, opts)
	if err != nil {
		return nil, unavailable("find votes", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	votes := make([]*model.Vote, 0)
	if err = cursor.All(ctx, &votes); err != nil {
		return nil, unavailable("decode votes", err)
	}
	return votes, nil
}

// DeleteVotes 空集合返回 0
func (s *voteRepoImpl) DeleteVotes(ctx context.Context, day string) (int64, error) {
	result, err := s.col.DeleteMany(ctx, bson.M{"day": day})
	if err != nil {
		return 0, unavailable("delete votes", err)
	}
	return result.DeletedCount, nil
}

func (s *voteRepoImpl) Ping(ctx context.Context) error {
	if err := s.col.Database().Client().Ping(ctx, nil); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

// EnsureVoteIndexes 创建 (user_id, day) 唯一索引与 day 查询索引
func EnsureVoteIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "day", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_user_day"),
		},
		{
			Keys:    bson.D{{Key: "day", Value: 1}},
			Options: options.Index().SetName("idx_day"),
		},
	}
	_, err := db.Collection(VoteCollection).Indexes().CreateMany(ctx, models)
	return err
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", repository.ErrStoreUnavailable, op, err)
}
