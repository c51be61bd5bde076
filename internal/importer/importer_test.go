package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autosave-dev/autosave/internal/wire"
)

func TestChaseParser_Parse(t *testing.T) {
	f, err := os.Open("testdata/chase_checking.csv")
	require.NoError(t, err)
	defer f.Close()

	p := &ChaseParser{}
	exps, err := p.Parse(f)
	require.NoError(t, err)
	// Six rows, one of them a credit.
	require.Len(t, exps, 5)

	assert.Equal(t, "4.00", exps[0].Amount.StringFixed(2))
	assert.Equal(t, 2025, exps[0].Date.Year())
	assert.Equal(t, 1, int(exps[0].Date.Month()))
	assert.Equal(t, 3, exps[0].Date.Day())

	last := exps[4]
	assert.Equal(t, 22, last.Date.Day())
	assert.Equal(t, "54.99", last.Amount.StringFixed(2))

	for _, e := range exps {
		assert.True(t, e.Amount.IsPositive())
	}
}

func TestChaseParser_EmptyFile(t *testing.T) {
	p := &ChaseParser{}
	exps, err := p.Parse(strings.NewReader("Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"))
	require.NoError(t, err)
	assert.Nil(t, exps)
}

func TestChaseParser_BadDate(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,NOTADATE,desc,-4.00,ACH_DEBIT,100.00,\n"
	p := &ChaseParser{}
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestChaseParser_BadAmount(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,01/03/2025,desc,NOTANUMBER,ACH_DEBIT,100.00,\n"
	p := &ChaseParser{}
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestCSVParser_Parse(t *testing.T) {
	f, err := os.Open("testdata/expenses.csv")
	require.NoError(t, err)
	defer f.Close()

	exps, err := (&CSVParser{}).Parse(f)
	require.NoError(t, err)
	require.Len(t, exps, 4)
	assert.Equal(t, "250", exps[0].Amount.String())
	assert.Equal(t, "2023-10-12 20:15:30", wire.FormatTime(exps[0].Date))
	assert.Equal(t, "480", exps[3].Amount.String())
}

func TestCSVParser_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing amount column", "date,value\n2023-01-01,1\n", "must name"},
		{"bad date", "date,amount\nsoon,1\n", "row 2: parsing date"},
		{"bad amount", "date,amount\n2023-01-01,lots\n", "row 2: parsing amount"},
		{"ragged row", "date,amount\n2023-01-01\n", "reading CSV"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&CSVParser{}).Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCSVParser_Empty(t *testing.T) {
	exps, err := (&CSVParser{}).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, exps)
}

func TestJSONParser_Array(t *testing.T) {
	f, err := os.Open("testdata/expenses.json")
	require.NoError(t, err)
	defer f.Close()

	exps, err := (&JSONParser{}).Parse(f)
	require.NoError(t, err)
	require.Len(t, exps, 4)
	assert.Equal(t, "620", exps[2].Amount.String())
}

func TestJSONParser_Object(t *testing.T) {
	in := `{"age": 29, "transactions": [{"date": "2023-01-05", "amount": "12.5"}]}`
	exps, err := (&JSONParser{}).Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, "12.5", exps[0].Amount.String())
}

func TestJSONParser_SchemaError(t *testing.T) {
	_, err := (&JSONParser{}).Parse(strings.NewReader(`[{"date":"2023-01-05"}]`))
	var schemaErr *wire.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "body[0].amount", schemaErr.Details[0].Field)
}

func TestJSONParser_Malformed(t *testing.T) {
	_, err := (&JSONParser{}).Parse(strings.NewReader(`[{`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding JSON")
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	assert.NotNil(t, r.Get("Chase"))
	assert.NotNil(t, r.Get("CHASE"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVParser{})
	assert.Panics(t, func() { r.Register(&CSVParser{}) })
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"chase", "csv", "json"}, r.Formats())
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, "csv", DetectFormat("spend.CSV"))
	assert.Equal(t, "json", DetectFormat("spend.json"))
	assert.Equal(t, "json", DetectFormat(""))
}

func TestReadFile(t *testing.T) {
	r := DefaultRegistry()

	exps, err := r.ReadFile("testdata/expenses.csv", "", nil)
	require.NoError(t, err)
	assert.Len(t, exps, 4)

	exps, err = r.ReadFile("-", "", strings.NewReader(`[{"date":"2023-01-01","amount":5}]`))
	require.NoError(t, err)
	assert.Len(t, exps, 1)

	exps, err = r.ReadFile("testdata/chase_checking.csv", "chase", nil)
	require.NoError(t, err)
	assert.Len(t, exps, 5)

	_, err = r.ReadFile(filepath.Join(t.TempDir(), "missing.json"), "", nil)
	assert.ErrorContains(t, err, "opening")

	_, err = r.ReadFile("-", "xml", strings.NewReader(""))
	assert.ErrorContains(t, err, `unknown input format "xml"`)
}
