package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/auction-sales-report/infrastructure/repository/mocks"
	"github.com/vfg2006/auction-sales-report/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestImportMonths(t *testing.T) {
	march := domain.MonthlySales{Label: "March", Records: []domain.SaleRecord{{ItemTag: "M1"}, {ItemTag: "M2"}}}
	january := domain.MonthlySales{Label: "January_25", Records: []domain.SaleRecord{{ItemTag: "J1"}}}

	tests := []struct {
		name    string
		setup   func(repo *mocks.MockSaleRecordRepository)
		wantErr bool
	}{
		{
			name: "Substitui cada mês na ordem recebida",
			setup: func(repo *mocks.MockSaleRecordRepository) {
				gomock.InOrder(
					repo.EXPECT().DeletePeriod(gomock.Any(), "March").Return(int64(5), nil),
					repo.EXPECT().InsertPeriod(gomock.Any(), "March", march.Records).Return(2, nil),
					repo.EXPECT().DeletePeriod(gomock.Any(), "January_25").Return(int64(0), nil),
					repo.EXPECT().InsertPeriod(gomock.Any(), "January_25", january.Records).Return(1, nil),
				)
			},
		},
		{
			name: "Erro ao remover interrompe antes de inserir",
			setup: func(repo *mocks.MockSaleRecordRepository) {
				repo.EXPECT().DeletePeriod(gomock.Any(), "March").Return(int64(0), errors.New("tabela bloqueada"))
			},
			wantErr: true,
		},
		{
			name: "Erro ao inserir interrompe os meses seguintes",
			setup: func(repo *mocks.MockSaleRecordRepository) {
				repo.EXPECT().DeletePeriod(gomock.Any(), "March").Return(int64(0), nil)
				repo.EXPECT().InsertPeriod(gomock.Any(), "March", march.Records).Return(0, errors.New("violação de chave"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockSaleRecordRepository(ctrl)
			tt.setup(repo)

			err := importMonths(context.Background(), repo, []domain.MonthlySales{march, january})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
