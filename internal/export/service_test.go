package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/internal/entity"
	"github.com/wastetrack/slips-tracker/internal/repository"
)

type fakeSlipRepo struct {
	recs     []*entity.SlipRecord
	lastFrom *time.Time
	lastTo   *time.Time
}

func (f *fakeSlipRepo) FindSlip(context.Context, string, string, string) (*entity.SlipRecord, error) {
	return nil, nil
}

func (f *fakeSlipRepo) IsDuplicate(context.Context, string, string, string) (bool, error) {
	return false, nil
}

func (f *fakeSlipRepo) InsertSlip(context.Context, *repository.CreateSlipRequest) (*entity.SlipRecord, error) {
	return nil, nil
}

func (f *fakeSlipRepo) ListSlips(_ context.Context, from, to *time.Time) ([]*entity.SlipRecord, error) {
	f.lastFrom, f.lastTo = from, to
	return f.recs, nil
}

func TestExportSlipsXLSX(t *testing.T) {
	repo := &fakeSlipRepo{recs: []*entity.SlipRecord{
		{
			SlipType:       constants.SlipTypeWeighing,
			SlipDate:       "2025-06-27",
			ClientName:     "妙高アクアクリーンセンター",
			ItemName:       "汚泥",
			NetWeight:      "2110",
			ManifestNumber: "3456",
		},
		{
			SlipType:   constants.SlipTypeReceipt,
			SlipDate:   "2025-07-01",
			ClientName: "株式会社ブルボン 上越工場",
			NetWeight:  "1260.0",
		},
	}}

	svc := NewService(repo, nil)
	data, err := svc.ExportSlipsXLSX(context.Background(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Nil(t, repo.lastFrom)
	assert.Nil(t, repo.lastTo)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Slips")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "日付", rows[0][0])
	assert.Equal(t, "マニフェスト番号", rows[0][5])

	assert.Equal(t, "2025-06-27", rows[1][0])
	assert.Equal(t, "計量伝票", rows[1][1])
	assert.Equal(t, "妙高アクアクリーンセンター", rows[1][2])
	assert.Equal(t, "2110", rows[1][4])
	assert.Equal(t, "3456", rows[1][5])

	assert.Equal(t, "株式会社ブルボン 上越工場", rows[2][2])
}

func TestExportSlipsXLSXDateWindow(t *testing.T) {
	repo := &fakeSlipRepo{}
	svc := NewService(repo, nil)

	from := time.Date(2025, 6, 1, 15, 4, 5, 0, time.Local)
	_, err := svc.ExportSlipsXLSX(context.Background(), &from, nil)
	require.NoError(t, err)

	require.NotNil(t, repo.lastFrom)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *repo.lastFrom)
	// Open-ended windows close at today.
	require.NotNil(t, repo.lastTo)
	assert.Equal(t, time.UTC, repo.lastTo.Location())
}
