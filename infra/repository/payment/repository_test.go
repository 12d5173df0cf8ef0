package payment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/njagi/paylens/pkg/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return &repository{db: db}, mock
}

func TestTotalByPeriod_AppliesAllFilters(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 31, 23, 59, 59, 999999000, time.UTC)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) AS total, COUNT\(id\) AS count FROM "end_user_payments"`).
		WithArgs(start, end, "254700000001", "outgoing").
		WillReturnRows(sqlmock.NewRows([]string{"total", "count"}).AddRow("3000.00", 2))

	got, err := repo.TotalByPeriod(
		context.Background(), &start, &end, domain.DirectionOutgoing, "254700000001")
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("3000.00")))
	assert.Equal(t, int64(2), got.Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTotalByPeriod_DirectionAllSkipsDirectionFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) AS total, COUNT\(id\) AS count FROM "end_user_payments"`).
		WithArgs().
		WillReturnRows(sqlmock.NewRows([]string{"total", "count"}).AddRow("0", 0))

	got, err := repo.TotalByPeriod(
		context.Background(), nil, nil, domain.DirectionAll, "")
	require.NoError(t, err)
	assert.True(t, got.Total.IsZero())
	assert.Equal(t, int64(0), got.Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTotalByPeriod_EmptySetReturnsZeroes(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) AS total, COUNT\(id\) AS count FROM "end_user_payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "count"}).AddRow("0", 0))

	got, err := repo.TotalByPeriod(
		context.Background(), nil, nil, domain.DirectionIncoming, "")
	require.NoError(t, err)
	assert.True(t, got.Total.IsZero())
	assert.Equal(t, int64(0), got.Count)
}

func TestTotalByPeriod_RejectsInvalidDirection(t *testing.T) {
	repo, _ := newMockRepo(t)

	_, err := repo.TotalByPeriod(context.Background(), nil, nil, "sideways", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDirection)
}

func TestListByRecipientName_FuzzyMatchOrdering(t *testing.T) {
	repo, mock := newMockRepo(t)

	newer := time.Date(2026, time.January, 20, 10, 0, 0, 0, time.UTC)
	older := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	created := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	cols := []string{
		"id", "consumer_uid", "transaction_id", "name", "is_business",
		"direction", "amount", "sender_id", "country_code",
		"consumer_phone_number", "paid_at", "created_at", "updated_at",
	}
	mock.ExpectQuery(`SELECT \* FROM "end_user_payments" WHERE name ILIKE .+ ORDER BY paid_at DESC NULLS LAST`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "uid-1", "TXN1", "Safaricom Ltd", true,
				"outgoing", "1000.00", "MPESA", "KE",
				"254700000001", newer, created, created).
			AddRow(2, "uid-1", "TXN2", "Airtime Safaricom", true,
				"outgoing", "250.00", "MPESA", "KE",
				"254700000001", older, created, created))

	got, err := repo.ListByRecipientName(context.Background(), "Safaricom", 5, "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Safaricom Ltd", *got[0].Name)
	assert.Equal(t, "Airtime Safaricom", *got[1].Name)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("1000.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByRecipientName_EmptyMatchIsNotAnError(t *testing.T) {
	repo, mock := newMockRepo(t)

	cols := []string{"id", "consumer_uid", "transaction_id", "name"}
	mock.ExpectQuery(`SELECT \* FROM "end_user_payments" WHERE name ILIKE`).
		WillReturnRows(sqlmock.NewRows(cols))

	got, err := repo.ListByRecipientName(context.Background(), "Nobody", 10, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTopRecipients_ComputesAverage(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT name, SUM\(amount\) AS total, COUNT\(id\) AS count FROM "end_user_payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "total", "count"}).
			AddRow("Safaricom Ltd", "15000.00", 12).
			AddRow("KPLC", "4500.00", 3))

	got, err := repo.TopRecipients(
		context.Background(), domain.DirectionOutgoing, nil, nil, 5, "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Average.Equal(decimal.NewFromInt(1250)))
	assert.True(t, got[1].Average.Equal(decimal.NewFromInt(1500)))
	// average * count round-trips to the total
	assert.True(t, got[1].Average.Mul(decimal.NewFromInt(got[1].Count)).
		Equal(got[1].Total))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpendingBySender_GroupsOutgoingOnly(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT sender_id, SUM\(amount\) AS total, COUNT\(id\) AS count FROM "end_user_payments"`).
		WithArgs("outgoing").
		WillReturnRows(sqlmock.NewRows([]string{"sender_id", "total", "count"}).
			AddRow("MPESA", "30000.00", 15).
			AddRow("AIRTELMONEY", "15000.00", 8))

	got, err := repo.SpendingBySender(context.Background(), nil, nil, "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "MPESA", got[0].SenderID)
	assert.Equal(t, int64(8), got[1].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrendData_MonthBuckets(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT to_char\(paid_at, 'YYYY-MM'\) AS period, SUM\(amount\) AS total, COUNT\(id\) AS count, AVG\(amount\) AS average FROM "end_user_payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"period", "total", "count", "average"}).
			AddRow("2026-01", "45000.00", 23, "1956.5217391304348").
			AddRow("2025-12", "38000.00", 19, "2000.00"))

	got, err := repo.TrendData(context.Background(), domain.GranularityMonth, 12, "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-01", got[0].Period)
	assert.True(t, got[0].Average.Equal(decimal.RequireFromString("1956.52")))
	assert.True(t, got[1].Average.Equal(decimal.NewFromInt(2000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrendData_RejectsUnknownGranularity(t *testing.T) {
	repo, _ := newMockRepo(t)

	_, err := repo.TrendData(context.Background(), "fortnight", 10, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidGranularity)
}

func TestList_PaginatesAndCounts(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "end_user_payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(120))

	created := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{
		"id", "consumer_uid", "transaction_id", "name", "is_business",
		"direction", "amount", "sender_id", "country_code",
		"consumer_phone_number", "paid_at", "created_at", "updated_at",
	}
	mock.ExpectQuery(`SELECT \* FROM "end_user_payments" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(51, "uid-9", "TXN51", nil, false,
				"incoming", "75.25", "MPESA", "KE",
				"254700000009", nil, created, created))

	items, total, err := repo.List(context.Background(), 50, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(120), total)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Name)
	assert.Nil(t, items[0].PaidAt)
	assert.Equal(t, int64(51), items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
