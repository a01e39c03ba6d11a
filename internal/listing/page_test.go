package listing

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	testCases := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: 1},
		{raw: " 2 ", want: 2},
		{raw: "15", want: 15},
		{raw: "0", wantErr: true},
		{raw: "-1", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "1.5", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			page, err := ParsePage(tc.raw, DefaultPageSize)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, page.Number)
			assert.Equal(t, DefaultPageSize, page.Size)
		})
	}
}

func TestParsePage_DefaultsSize(t *testing.T) {
	page, err := ParsePage("1", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, page.Size)
}

func TestParsePage_ClampsHugeNumbers(t *testing.T) {
	max := MaxPage(DefaultPageSize)

	for _, raw := range []string{
		strconv.Itoa(max + 1),
		"922337203685477590",
		"99999999999999999999999",
	} {
		t.Run(raw, func(t *testing.T) {
			page, err := ParsePage(raw, DefaultPageSize)
			require.NoError(t, err)
			assert.Equal(t, max, page.Number)
			assert.Greater(t, page.Offset(), 0)
		})
	}

	_, err := ParsePage("-99999999999999999999999", DefaultPageSize)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestPage_OffsetNeverOverflows(t *testing.T) {
	page := Page{Number: math.MaxInt, Size: 10}
	assert.Greater(t, page.Offset(), 0)
	assert.Equal(t, 0, Page{Number: 0, Size: 10}.Offset())
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, Page{Number: 1, Size: 10}.Offset())
	assert.Equal(t, 10, Page{Number: 2, Size: 10}.Offset())
	assert.Equal(t, 90, Page{Number: 10, Size: 10}.Offset())
}

func TestNewPagination(t *testing.T) {
	testCases := []struct {
		name      string
		total     int64
		page      int
		wantPages int
	}{
		{name: "empty", total: 0, page: 1, wantPages: 0},
		{name: "exact", total: 20, page: 1, wantPages: 2},
		{name: "partial last page", total: 15, page: 2, wantPages: 2},
		{name: "beyond last page keeps true total", total: 15, page: 9, wantPages: 2},
		{name: "single row", total: 1, page: 1, wantPages: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.total, Page{Number: tc.page, Size: 10})
			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, 10, p.Limit)
			assert.Equal(t, tc.wantPages, p.TotalPages)
		})
	}
}
