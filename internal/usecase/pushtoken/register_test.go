package pushtoken

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type fakeTokenRepo struct {
	tokens []models.PushToken
}

func (r *fakeTokenRepo) Exists(_ context.Context, userID, token string) (bool, error) {
	for _, pt := range r.tokens {
		if pt.UserID == userID && pt.Token == token {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTokenRepo) Create(_ context.Context, pt *models.PushToken) error {
	r.tokens = append(r.tokens, *pt)
	return nil
}

func (r *fakeTokenRepo) ListForUser(_ context.Context, userID string, limit int) ([]models.PushToken, error) {
	var out []models.PushToken
	for _, pt := range r.tokens {
		if pt.UserID == userID && len(out) < limit {
			out = append(out, pt)
		}
	}
	return out, nil
}

func TestRegister_Idempotent(t *testing.T) {
	repo := &fakeTokenRepo{}
	uc := NewRegister(repo)

	in := RegisterInput{
		UserID:   "user_000000000001",
		Token:    "ExponentPushToken[abc]",
		Platform: models.PlatformIOS,
	}

	res, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, Registered, res)

	res, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, AlreadyRegistered, res)

	// exactly one row for the pair
	assert.Len(t, repo.tokens, 1)
}

func TestRegister_DistinctPairsBothStored(t *testing.T) {
	repo := &fakeTokenRepo{}
	uc := NewRegister(repo)

	_, err := uc.Execute(context.Background(), RegisterInput{
		UserID: "user_a", Token: "tok-1", Platform: models.PlatformAndroid,
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), RegisterInput{
		UserID: "user_a", Token: "tok-2", Platform: models.PlatformAndroid,
	})
	require.NoError(t, err)

	assert.Len(t, repo.tokens, 2)
}

func TestRegister_InvalidPlatform(t *testing.T) {
	uc := NewRegister(&fakeTokenRepo{})

	_, err := uc.Execute(context.Background(), RegisterInput{
		UserID: "user_a", Token: "tok", Platform: "blackberry",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_platform"), "got %v", err)
}

func TestRegister_LostUniqueIndexRace(t *testing.T) {
	// Create fails because a concurrent request inserted the pair first;
	// the re-check turns that into AlreadyRegistered.
	repo := &racingTokenRepo{createErr: errors.New("duplicate key")}
	uc := NewRegister(repo)

	res, err := uc.Execute(context.Background(), RegisterInput{
		UserID: "user_a", Token: "tok", Platform: models.PlatformWeb,
	})
	require.NoError(t, err)
	assert.Equal(t, AlreadyRegistered, res)
}

// racingTokenRepo reports the pair as absent on the first Exists call
// and present afterwards, mimicking a concurrent winner.
type racingTokenRepo struct {
	createErr error
	checks    int
}

func (r *racingTokenRepo) Exists(ctx context.Context, userID, token string) (bool, error) {
	r.checks++
	return r.checks > 1, nil
}

func (r *racingTokenRepo) Create(ctx context.Context, pt *models.PushToken) error {
	return r.createErr
}

func (r *racingTokenRepo) ListForUser(ctx context.Context, userID string, limit int) ([]models.PushToken, error) {
	return nil, nil
}
