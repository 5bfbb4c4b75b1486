package donationcsv

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phillip/youth-portal/models"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestRoundTrip(t *testing.T) {
	in := []models.Donation{
		{DonorName: "Ana Cruz", Amount: 1500, Method: models.MethodCash, Status: models.DonationCompleted,
			Date: time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC), ReferenceNumber: "OR-001", Notes: "Christmas drive, batch 2"},
		{DonorName: "Ben \"BJ\" Reyes", Amount: 250.75, Method: models.MethodGCash, Status: models.DonationRefunded,
			Date: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))
	assert.True(t, strings.HasPrefix(buf.String(), "Donor Name,Amount,Method,Status,Date,Reference Number,Notes\n"))

	out, err := Read(&buf, now)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].DonorName, out[i].DonorName)
		assert.Equal(t, in[i].Amount, out[i].Amount)
		assert.Equal(t, in[i].Method, out[i].Method)
		assert.Equal(t, in[i].Status, out[i].Status)
		assert.True(t, in[i].Date.Equal(out[i].Date))
		assert.Equal(t, in[i].ReferenceNumber, out[i].ReferenceNumber)
		assert.Equal(t, in[i].Notes, out[i].Notes)
	}
}

func TestRoundTripKeepsSubSecondDates(t *testing.T) {
	date := time.Date(2026, 1, 15, 9, 30, 0, 123_000_000, time.UTC)
	in := []models.Donation{{DonorName: "Ana Cruz", Amount: 10, Method: models.MethodCash, Status: models.DonationCompleted, Date: date}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))
	assert.Contains(t, buf.String(), "2026-01-15T09:30:00.123Z")

	out, err := Read(&buf, now)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, date.Equal(out[0].Date), "got %s", out[0].Date)
}

func TestReadDefaults(t *testing.T) {
	sheet := "donor name,AMOUNT,method\nCarla,100,gcash\n,,\nDan,50,Cash\n"

	out, err := Read(strings.NewReader(sheet), now)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, models.MethodGCash, out[0].Method)
	assert.Equal(t, models.DonationCompleted, out[0].Status)
	assert.Equal(t, now, out[0].Date)
	assert.Equal(t, "Dan", out[1].DonorName)
}

func TestReadDateFormats(t *testing.T) {
	sheet := "Donor Name,Amount,Method,Date\nA,1,Cash,2026-03-04\nB,2,Cash,03/04/2026\nC,3,Cash,2026-03-04T08:00:00+08:00\n"

	out, err := Read(strings.NewReader(sheet), now)
	require.NoError(t, err)
	require.Len(t, out, 3)

	want := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(out[0].Date))
	assert.True(t, want.Equal(out[1].Date))
	assert.True(t, want.Equal(out[2].Date))
}

func TestReadRowErrors(t *testing.T) {
	cases := map[string]struct {
		sheet string
		row   int
	}{
		"bad amount":       {"Donor Name,Amount,Method\nA,ten,Cash\n", 1},
		"negative amount":  {"Donor Name,Amount,Method\nA,1,Cash\nB,-5,Cash\n", 2},
		"bad method":       {"Donor Name,Amount,Method\nA,1,Cheque\n", 1},
		"bad status":       {"Donor Name,Amount,Method,Status\nA,1,Cash,Pending\n", 1},
		"bad date":         {"Donor Name,Amount,Method,Date\nA,1,Cash,yesterday\n", 1},
		"missing donor":    {"Donor Name,Amount,Method\n,1,Cash\n", 1},
		"after blank rows": {"Donor Name,Amount,Method\nA,1,Cash\n,,\n\nB,1,Cheque\n", 4},
		"notes too long":   {"Donor Name,Amount,Method,Notes\nA,1,Cash,ok\n,,\nB,1,Cash," + strings.Repeat("x", 1001) + "\n", 3},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.sheet), now)
			var rowErr *RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, tc.row, rowErr.Row)
		})
	}
}

func TestReadMissingColumn(t *testing.T) {
	_, err := Read(strings.NewReader("Donor Name,Method\nA,Cash\n"), now)
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = Read(strings.NewReader(""), now)
	assert.ErrorIs(t, err, ErrMissingColumn)
}
