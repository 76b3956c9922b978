package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "northwind/internal/errors"
)

func TestFormatDate_FixedLayout(t *testing.T) {
	d := time.Date(1996, 7, 4, 13, 5, 9, 0, time.UTC)
	assert.Equal(t, "1996-07-04 13:05:09", formatDate(d))
}

func TestParseDate_RoundTrip(t *testing.T) {
	want := time.Date(1996, 7, 4, 0, 0, 0, 0, time.UTC)

	got, err := parseDate("OrderDate", formatDate(want))
	assert.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestParseDate_MalformedText(t *testing.T) {
	_, err := parseDate("OrderDate", "04/07/1996")

	pe, ok := apperrors.IsParseError(err)
	assert.True(t, ok)
	assert.Contains(t, pe.Message, "OrderDate")
}

func TestNullableString(t *testing.T) {
	assert.Nil(t, nullableString(nil))

	region := "Champagne"
	assert.Equal(t, "Champagne", nullableString(&region))
}

func TestOrderInsertArgs_ColumnOrder(t *testing.T) {
	order := sampleOrder(7)

	args := orderInsertArgs(order)
	assert.Len(t, args, 14)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, "ALFKI", args[1])
	assert.Equal(t, int64(1), args[2])
	assert.Equal(t, "1996-07-04 00:00:00", args[3])
	assert.Nil(t, args[11]) // ShipRegion absent binds NULL
	assert.Equal(t, "France", args[13])
}

func TestOrderUpdateArgs_IDLast(t *testing.T) {
	order := sampleOrder(7)

	args := orderUpdateArgs(order)
	assert.Len(t, args, 14)
	assert.Equal(t, "ALFKI", args[0])
	assert.Equal(t, int64(7), args[13])
}
