package roll_history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/greed/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) addRoll(id, gameID, playerID string, offset time.Duration, faces []int, score int) *models.Roll {
	roll := &models.Roll{
		ID:          id,
		GameID:      gameID,
		PlayerID:    playerID,
		Faces:       faces,
		Score:       score,
		TurnScore:   score,
		DiceAllowed: 5,
		Busted:      score == 0,
		Timestamp:   s.testNow.Add(offset),
	}
	s.Require().NoError(s.repo.AddRoll(context.Background(), &AddRollInput{Roll: roll}))
	return roll
}

func (s *RedisRepositoryTestSuite) rollIDs(rolls []*models.Roll) []string {
	ids := make([]string, 0, len(rolls))
	for _, r := range rolls {
		ids = append(ids, r.ID)
	}
	return ids
}

func (s *RedisRepositoryTestSuite) TestAddAndGetRollsForGame() {
	first := s.addRoll("roll-1", "game-1", "player-1", 0, []int{5, 1, 3, 4, 1}, 250)
	s.addRoll("roll-2", "game-1", "player-2", 0, []int{2, 3, 3, 4, 6}, 0)
	s.addRoll("roll-3", "game-2", "player-1", time.Second, []int{1, 1, 1, 3, 1}, 1100)

	out, err := s.repo.GetRollsForGame(context.Background(), &GetRollsForGameInput{GameID: "game-1"})
	s.Require().NoError(err)

	s.Equal([]string{"roll-1", "roll-2"}, s.rollIDs(out.Rolls))
	s.Equal(first, out.Rolls[0])
	s.True(out.Rolls[1].Busted)
}

func (s *RedisRepositoryTestSuite) TestAddRoll_InvalidInput() {
	ctx := context.Background()

	s.Error(s.repo.AddRoll(ctx, nil))
	s.Error(s.repo.AddRoll(ctx, &AddRollInput{}))
	s.Error(s.repo.AddRoll(ctx, &AddRollInput{Roll: &models.Roll{GameID: "g", PlayerID: "p"}}))
	s.Error(s.repo.AddRoll(ctx, &AddRollInput{Roll: &models.Roll{ID: "r", PlayerID: "p"}}))
	s.Error(s.repo.AddRoll(ctx, &AddRollInput{Roll: &models.Roll{ID: "r", GameID: "g"}}))
}

func (s *RedisRepositoryTestSuite) TestGetRollsForGame_Empty() {
	out, err := s.repo.GetRollsForGame(context.Background(), &GetRollsForGameInput{GameID: "none"})

	s.Require().NoError(err)
	s.Empty(out.Rolls)
}

func (s *RedisRepositoryTestSuite) TestGetRollsForPlayer_NewestFirst() {
	for i := 0; i < 5; i++ {
		s.addRoll(fmt.Sprintf("roll-%d", i), "game-1", "player-1", time.Duration(i)*time.Second, []int{5}, 50)
	}
	s.addRoll("other", "game-1", "player-2", time.Minute, []int{1}, 100)

	out, err := s.repo.GetRollsForPlayer(context.Background(), &GetRollsForPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal([]string{"roll-4", "roll-3", "roll-2", "roll-1", "roll-0"}, s.rollIDs(out.Rolls))

	out, err = s.repo.GetRollsForPlayer(context.Background(), &GetRollsForPlayerInput{PlayerID: "player-1", Limit: 2})
	s.Require().NoError(err)
	s.Equal([]string{"roll-4", "roll-3"}, s.rollIDs(out.Rolls))
}

func (s *RedisRepositoryTestSuite) TestGetRollStats() {
	s.addRoll("roll-1", "game-1", "player-1", 0, []int{5, 1, 3, 4, 1}, 250)
	s.addRoll("roll-2", "game-1", "player-1", time.Second, []int{3, 4}, 0)

	hot := &models.Roll{
		ID:        "roll-3",
		GameID:    "game-1",
		PlayerID:  "player-1",
		Faces:     []int{5, 2, 1, 2, 2},
		Score:     350,
		HotDice:   true,
		Timestamp: s.testNow.Add(2 * time.Second),
	}
	s.Require().NoError(s.repo.AddRoll(context.Background(), &AddRollInput{Roll: hot}))

	stats, err := s.repo.GetRollStats(context.Background(), &GetRollStatsInput{PlayerID: "player-1"})
	s.Require().NoError(err)

	s.Equal(&models.RollStats{
		PlayerID: "player-1",
		Rolls:    3,
		Busts:    1,
		HotDice:  1,
		Points:   600,
	}, stats)
}

func (s *RedisRepositoryTestSuite) TestGetRollStats_NoRolls() {
	stats, err := s.repo.GetRollStats(context.Background(), &GetRollStatsInput{PlayerID: "nobody"})

	s.Require().NoError(err)
	s.Equal(&models.RollStats{PlayerID: "nobody"}, stats)
}

func (s *RedisRepositoryTestSuite) TestDeleteRollsForGame() {
	s.addRoll("roll-1", "game-1", "player-1", 0, []int{5}, 50)
	s.addRoll("roll-2", "game-2", "player-1", time.Second, []int{1}, 100)

	err := s.repo.DeleteRollsForGame(context.Background(), &DeleteRollsForGameInput{GameID: "game-1"})
	s.Require().NoError(err)

	out, err := s.repo.GetRollsForGame(context.Background(), &GetRollsForGameInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.Empty(out.Rolls)

	player, err := s.repo.GetRollsForPlayer(context.Background(), &GetRollsForPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal([]string{"roll-2"}, s.rollIDs(player.Rolls))

	stats, err := s.repo.GetRollStats(context.Background(), &GetRollStatsInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(2, stats.Rolls)
}
