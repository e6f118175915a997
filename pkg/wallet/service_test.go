package wallet

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/enttest"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/ent/wallettransaction"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/cliptokk/api/pkg/domain"
	"github.com/cliptokk/api/pkg/models"
	"github.com/cliptokk/api/pkg/payments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	paymentsService := payments.NewService(client, &payments.StripeConfig{
		SecretKey:     "sk_test_offline",
		WebhookSecret: "whsec_offline",
	})

	limits := Limits{MinPayout: 10, MaxRecharge: 10000}
	return NewService(client, cacheClient, paymentsService, limits), client
}

func createClipper(t *testing.T, client *ent.Client) *ent.User {
	u, err := client.User.Create().
		SetEmail("clipper@example.com").
		SetPasswordHash("x").
		SetPseudo("clipper").
		SetRole(user.RoleClipper).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func addTransaction(t *testing.T, client *ent.Client, userID int, typ wallettransaction.Type, amount float64, status wallettransaction.Status) {
	_, err := client.WalletTransaction.Create().
		SetUserID(userID).
		SetType(typ).
		SetAmount(amount).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
}

func TestBalance(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	clipper := createClipper(t, client)

	// 4.20 + 12.00 settled earnings, one failed earning that must not count,
	// a 5.00 completed payout and a 2.00 pending payout reserving funds.
	addTransaction(t, client, clipper.ID, wallettransaction.TypeEarning, 4.20, wallettransaction.StatusCompleted)
	addTransaction(t, client, clipper.ID, wallettransaction.TypeEarning, 12.00, wallettransaction.StatusCompleted)
	addTransaction(t, client, clipper.ID, wallettransaction.TypeEarning, 99.00, wallettransaction.StatusFailed)
	addTransaction(t, client, clipper.ID, wallettransaction.TypePayout, 5.00, wallettransaction.StatusCompleted)
	addTransaction(t, client, clipper.ID, wallettransaction.TypePayout, 2.00, wallettransaction.StatusPending)

	balance, err := service.Balance(ctx, clipper.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.20, balance.Available)
	assert.Equal(t, 5.00, balance.Paid)
	assert.Equal(t, 0.0, balance.Pending)
}

func TestBalance_PendingMilestoneEstimate(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	clipper := createClipper(t, client)

	creator, err := client.User.Create().
		SetEmail("creator@example.com").
		SetPasswordHash("x").
		SetPseudo("creator").
		SetRole(user.RoleCreator).
		Save(ctx)
	require.NoError(t, err)

	m, err := client.Mission.Create().
		SetTitle("Clip it").
		SetDescription("Clips wanted").
		SetCreatorID(creator.ID).
		SetPricePer1kViews(0.12).
		SetTotalBudget(100).
		Save(ctx)
	require.NoError(t, err)

	sub, err := client.Submission.Create().
		SetMissionID(m.ID).
		SetUserID(clipper.ID).
		SetTiktokURL("https://www.tiktok.com/@c/video/1").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ClipSubmission.Create().
		SetUserID(clipper.ID).
		SetMissionID(m.ID).
		SetSubmissionID(sub.ID).
		SetPalier(10000).
		SetViewsDeclared(35000).
		SetTiktokLink("https://www.tiktok.com/@c/video/1").
		Save(ctx)
	require.NoError(t, err)

	balance, err := service.Balance(ctx, clipper.ID)
	require.NoError(t, err)
	// 35000 views at 0.12 per 1000, awaiting review
	assert.Equal(t, 4.20, balance.Pending)
	assert.Equal(t, 0.0, balance.Available)
}

func TestHistory(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	clipper := createClipper(t, client)

	for i := 0; i < 5; i++ {
		addTransaction(t, client, clipper.ID, wallettransaction.TypeEarning, float64(i+1), wallettransaction.StatusCompleted)
	}

	result, err := service.History(ctx, clipper.ID, 1, 3)
	require.NoError(t, err)
	assert.Len(t, result.Data, 3)
	assert.Equal(t, 5, result.Pagination.Total)
	assert.True(t, result.Pagination.HasNext)
}

func TestCreateRecharge_Validation(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	clipper := createClipper(t, client)

	t.Run("Failure - zero amount", func(t *testing.T) {
		_, err := service.CreateRecharge(ctx, clipper.ID, models.RechargeRequest{Amount: 0})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - above maximum", func(t *testing.T) {
		_, err := service.CreateRecharge(ctx, clipper.ID, models.RechargeRequest{Amount: 20000})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestRequestPayout_Validation(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	clipper := createClipper(t, client)

	t.Run("Failure - below minimum payout", func(t *testing.T) {
		_, err := service.RequestPayout(ctx, clipper.ID, models.PayoutRequest{
			Amount: 5,
			Phone:  "+33612345678",
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - invalid phone rejected before any write", func(t *testing.T) {
		addTransaction(t, client, clipper.ID, wallettransaction.TypeEarning, 50, wallettransaction.StatusCompleted)

		_, err := service.RequestPayout(ctx, clipper.ID, models.PayoutRequest{
			Amount: 20,
			Phone:  "not-a-phone",
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))

		count, err := client.WalletTransaction.Query().
			Where(wallettransaction.TypeEQ(wallettransaction.TypePayout)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Failure - insufficient balance caught before Stripe", func(t *testing.T) {
		_, err := service.RequestPayout(ctx, clipper.ID, models.PayoutRequest{
			Amount: 500,
			Phone:  "+33612345678",
		})
		require.Error(t, err)
		assert.True(t, domain.IsInsufficientBalance(err))
	})
}

func TestRequestPayout_StaleCachedBalance(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	clipper := createClipper(t, client)

	// Connect account already on file, so no network call stands between
	// the balance checks and the ledger write.
	_, err := client.User.UpdateOneID(clipper.ID).
		SetStripeAccountID("acct_test_offline").
		Save(ctx)
	require.NoError(t, err)

	addTransaction(t, client, clipper.ID, wallettransaction.TypeEarning, 50, wallettransaction.StatusCompleted)

	// Warm the cache at 50.00 available...
	balance, err := service.Balance(ctx, clipper.ID)
	require.NoError(t, err)
	require.Equal(t, 50.00, balance.Available)

	// ...then a concurrent payout settles behind the cache's back,
	// leaving only 5.00 in the ledger.
	addTransaction(t, client, clipper.ID, wallettransaction.TypePayout, 45, wallettransaction.StatusCompleted)

	_, err = service.RequestPayout(ctx, clipper.ID, models.PayoutRequest{
		Amount: 20,
		Phone:  "+33612345678",
	})
	require.Error(t, err)
	assert.True(t, domain.IsInsufficientBalance(err))

	// The transaction rolled back: only the settled payout is on the ledger.
	count, err := client.WalletTransaction.Query().
		Where(wallettransaction.TypeEQ(wallettransaction.TypePayout)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
