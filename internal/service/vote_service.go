package service

import (
	"VibeCheck/internal/api/dto"
	"VibeCheck/internal/model"
	"VibeCheck/internal/pkg/util"
	"VibeCheck/internal/repository"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

type VoteService interface {
	CastVote(ctx context.Context, userID string, optionIndex int) (*model.Vote, error)
	ListVotes(ctx context.Context, day string) ([]*dto.VoteDTO, error)
	Today() string
	Ping(ctx context.Context) error
}

type voteServiceImpl struct {
	voteRepo repository.VoteRepo
	catalog  *model.Catalog
	clock    util.Clock
	loc      *time.Location
}

func NewVoteService(voteRepo repository.VoteRepo, catalog *model.Catalog, clock util.Clock, loc *time.Location) VoteService {
	if clock == nil {
		clock = util.SystemClock
	}
	if loc == nil {
		loc = time.UTC
	}
	return &voteServiceImpl{
		voteRepo: voteRepo,
		catalog:  catalog,
		clock:    clock,
		loc:      loc,
	}
}

// CastVote 记录当天投票，同一用户当天重复投票会覆盖
func (s *voteServiceImpl) CastVote(ctx context.Context, userID string, optionIndex int) (*model.Vote, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrParamInvalid
	}
	if !s.catalog.Valid(optionIndex) {
		return nil, ErrInvalidOption
	}

	day := s.Today()
	if _, err := s.voteRepo.UpsertVote(ctx, userID, day, optionIndex); err != nil {
		return nil, fmt.Errorf("cast vote: %w", err)
	}

	return &model.Vote{
		UserID:      userID,
		Day:         day,
		OptionIndex: optionIndex,
		UpdatedAt:   s.clock.Now(),
	}, nil
}

// ListVotes 获取某天投票并补全心情文案
func (s *voteServiceImpl) ListVotes(ctx context.Context, day string) ([]*dto.VoteDTO, error) {
	if _, err := util.ParseDay(day); err != nil {
		return nil, err
	}

	votes, err := s.voteRepo.ListVotes(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	return toVoteDTOs(votes, s.catalog), nil
}

func (s *voteServiceImpl) Today() string {
	return util.DayOf(s.clock.Now(), s.loc)
}

func (s *voteServiceImpl) Ping(ctx context.Context) error {
	return s.voteRepo.Ping(ctx)
}

func toVoteDTOs(votes []*model.Vote, catalog *model.Catalog) []*dto.VoteDTO {
	res := make([]*dto.VoteDTO, 0, len(votes))
	for _, v := range votes {
		d := &dto.VoteDTO{}
		_ = copier.Copy(d, v)
		d.UpdatedAt = v.UpdatedAt.UTC().Format(time.RFC3339)
		if mood, ok := catalog.At(v.OptionIndex); ok {
			d.Mood = mood.Label()
		}
		res = append(res, d)
	}
	return res
}
