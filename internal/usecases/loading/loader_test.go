package loading

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Ctag,Brand Name,Sold,Profit / Loss,Cost(price after Tax)\n"

func TestLoader_Load(t *testing.T) {
	loader := NewLoader(DefaultColumns)

	tests := []struct {
		name     string
		content  string
		wantErr  error
		validate func(t *testing.T, records []recordView)
	}{
		{
			name: "Linhas completas com símbolos de moeda",
			content: header +
				"A001,Hermes,TRUE,\"¥12,345\",\"¥10,000\"\n" +
				"A002,Chanel,false,-440,¥5000\n",
			validate: func(t *testing.T, records []recordView) {
				require.Len(t, records, 2)
				assert.Equal(t, recordView{Tag: "A001", Brand: "Hermes", Sold: true, Profit: "12345", Cost: "10000"}, records[0])
				assert.Equal(t, recordView{Tag: "A002", Brand: "Chanel", Sold: false, Profit: "-440", Cost: "5000"}, records[1])
			},
		},
		{
			name: "Valores mal formatados viram nulos",
			content: header +
				"A003,Gucci,TRUE,n/a,\n",
			validate: func(t *testing.T, records []recordView) {
				require.Len(t, records, 1)
				assert.Equal(t, "null", records[0].Profit)
				assert.Equal(t, "null", records[0].Cost)
			},
		},
		{
			name: "Linha só com separadores conta como item não vendido",
			content: header +
				"A004,Dior,1,100,50\n" +
				",,,,\n" +
				"\n",
			validate: func(t *testing.T, records []recordView) {
				require.Len(t, records, 2)
				assert.True(t, records[0].Sold)
				assert.Equal(t, recordView{Profit: "null", Cost: "null"}, records[1])
			},
		},
		{
			name: "BOM no início do arquivo",
			content: "\ufeff" + header +
				"A005,Prada,yes,10,5\n",
			validate: func(t *testing.T, records []recordView) {
				require.Len(t, records, 1)
				assert.Equal(t, "A005", records[0].Tag)
			},
		},
		{
			name: "Vendido não reconhecido conta como não vendido",
			content: header +
				"A006,Prada,maybe,10,5\n",
			validate: func(t *testing.T, records []recordView) {
				require.Len(t, records, 1)
				assert.False(t, records[0].Sold)
			},
		},
		{
			name:    "Coluna obrigatória ausente",
			content: "Ctag,Brand Name,Profit / Loss\nA001,Hermes,10\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "Arquivo vazio",
			content: "",
			wantErr: ErrEmptyFile,
		},
		{
			name:    "Somente cabeçalho",
			content: header,
			validate: func(t *testing.T, records []recordView) {
				assert.Empty(t, records)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := loader.Load("teste.csv", strings.NewReader(tt.content))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)

			views := make([]recordView, 0, len(records))
			for _, r := range records {
				views = append(views, recordView{
					Tag:    r.ItemTag,
					Brand:  r.BrandName,
					Sold:   r.Sold,
					Profit: nullString(r.ProfitLoss),
					Cost:   nullString(r.Cost),
				})
			}
			tt.validate(t, views)
		})
	}
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eco_march_2024.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"A001,Hermes,TRUE,100,80\n"), 0o600))

	records, err := NewLoader(DefaultColumns).LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].ProfitLoss.Decimal.Equal(decimal.NewFromInt(100)))

	_, err = NewLoader(DefaultColumns).LoadFile(filepath.Join(dir, "inexistente.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_FromRows(t *testing.T) {
	loader := NewLoader(DefaultColumns)

	records, err := loader.FromRows("February_25",
		[]string{"Ctag", "Brand Name", "Sold", "Profit / Loss"},
		[][]string{
			{"B001", "Celine", "TRUE", "1,200.50"},
			{"B002", "Celine", "FALSE"},
		})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1200.5", records[0].ProfitLoss.Decimal.String())
	assert.False(t, records[0].Cost.Valid)
	assert.False(t, records[1].ProfitLoss.Valid)
}

// recordView achata um registro para comparações legíveis
type recordView struct {
	Tag    string
	Brand  string
	Sold   bool
	Profit string
	Cost   string
}

func nullString(value decimal.NullDecimal) string {
	if !value.Valid {
		return "null"
	}
	return value.Decimal.String()
}
