package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/auction-sales-report/infrastructure/repository/mocks"
	"github.com/vfg2006/auction-sales-report/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSource_HistoricalMonths(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(repo *mocks.MockSaleRecordRepository)
		wantLabels []string
		wantErr    bool
	}{
		{
			name: "ignora períodos com ano",
			setup: func(repo *mocks.MockSaleRecordRepository) {
				repo.EXPECT().ListPeriods(gomock.Any()).Return([]string{"January_25", "march", "April"}, nil)
				repo.EXPECT().ListByPeriod(gomock.Any(), "march").Return([]domain.SaleRecord{{ItemTag: "A1"}}, nil)
				repo.EXPECT().ListByPeriod(gomock.Any(), "April").Return([]domain.SaleRecord{}, nil)
			},
			wantLabels: []string{"March", "April"},
		},
		{
			name: "período inválido",
			setup: func(repo *mocks.MockSaleRecordRepository) {
				repo.EXPECT().ListPeriods(gomock.Any()).Return([]string{"Marcho"}, nil)
			},
			wantErr: true,
		},
		{
			name: "erro ao listar períodos",
			setup: func(repo *mocks.MockSaleRecordRepository) {
				repo.EXPECT().ListPeriods(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockSaleRecordRepository(ctrl)
			tt.setup(repo)

			months, err := New(repo, nil).HistoricalMonths(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			labels := make([]string, 0, len(months))
			for _, m := range months {
				labels = append(labels, m.Label)
			}
			assert.Equal(t, tt.wantLabels, labels)
		})
	}
}

func TestSource_CurrentMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSaleRecordRepository(ctrl)

	repo.EXPECT().ListByPeriod(gomock.Any(), "January_25").Return([]domain.SaleRecord{{ItemTag: "J1"}}, nil)
	repo.EXPECT().ListByPeriod(gomock.Any(), "February_25").Return([]domain.SaleRecord{}, nil)

	months, err := New(repo, []string{"January_25", "February_25"}).CurrentMonths(context.Background())

	require.NoError(t, err)
	require.Len(t, months, 2)
	assert.Equal(t, "January_25", months[0].Label)
	assert.Len(t, months[0].Records, 1)
	assert.Empty(t, months[1].Records)
}

func TestSource_CurrentMonths_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSaleRecordRepository(ctrl)

	repo.EXPECT().ListByPeriod(gomock.Any(), "January_25").Return(nil, errors.New("conexão recusada"))

	_, err := New(repo, []string{"January_25", "February_25"}).CurrentMonths(context.Background())

	assert.EqualError(t, err, "conexão recusada")
}
