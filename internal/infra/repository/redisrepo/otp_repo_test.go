package redisrepo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/stretchr/testify/suite"
)

// OTPRepoTestSuite 需要真實redis, 未設TEST_REDIS_ADDR直接跳過
type OTPRepoTestSuite struct {
	suite.Suite
	repo *OTPRepo
}

func TestOTPRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OTPRepoTestSuite))
}

func (s *OTPRepoTestSuite) SetupSuite() {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		s.T().Skip("TEST_REDIS_ADDR not set")
	}
	s.repo = NewOTPRepo(NewRedisClient(addr))
}

func (s *OTPRepoTestSuite) TestUpsertGetDelete() {
	ctx := context.Background()
	createdAt := time.Now().UTC().Truncate(time.Millisecond)

	otp := &model.PasswordResetOTP{UserID: 1001, Code: "123456", CreatedAt: createdAt}
	s.Require().NoError(s.repo.Upsert(ctx, otp))

	got, err := s.repo.Get(ctx, 1001)
	s.Require().NoError(err)
	s.Equal("123456", got.Code)
	s.True(got.CreatedAt.Equal(createdAt))

	s.Require().NoError(s.repo.Delete(ctx, 1001))
	_, err = s.repo.Get(ctx, 1001)
	s.Require().ErrorIs(err, ErrOTPNotFound)
}

func (s *OTPRepoTestSuite) TestUpsertReplaces() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Upsert(ctx, &model.PasswordResetOTP{
		UserID: 1002, Code: "111111", CreatedAt: time.Now().UTC(),
	}))
	s.Require().NoError(s.repo.Upsert(ctx, &model.PasswordResetOTP{
		UserID: 1002, Code: "222222", CreatedAt: time.Now().UTC(),
	}))

	got, err := s.repo.Get(ctx, 1002)
	s.Require().NoError(err)
	s.Equal("222222", got.Code)

	s.Require().NoError(s.repo.Delete(ctx, 1002))
}

func (s *OTPRepoTestSuite) TestTTLMatchesValidity() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Upsert(ctx, &model.PasswordResetOTP{
		UserID: 1003, Code: "333333", CreatedAt: time.Now().UTC(),
	}))

	ttl, err := s.repo.client.TTL(ctx, generateOTPKey(1003)).Result()
	s.Require().NoError(err)
	s.Greater(ttl, model.OTPValidity-time.Minute)
	s.LessOrEqual(ttl, model.OTPValidity)

	s.Require().NoError(s.repo.Delete(ctx, 1003))
}
