package listing

import (
	"fmt"
	"testing"

	"go-delivery-api/internal/model"
	"go-delivery-api/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func uintPtr(v uint) *uint { return &v }

func dryRunDB(t *testing.T) *gorm.DB {
	return testutil.NewDB(t).Session(&gorm.Session{DryRun: true})
}

func activeProducts(db *gorm.DB, categoryID, storeID *uint, term string) *gorm.DB {
	return db.Model(&model.Product{}).
		Where("active = ?", true).
		Scopes(Equal("category_id", categoryID), Equal("store_id", storeID), Contains("name", term))
}

func TestScopes_FilterOrderAndParity(t *testing.T) {
	testCases := []struct {
		name       string
		categoryID *uint
		storeID    *uint
		term       string
		wantWhere  string
		wantArgs   []interface{}
	}{
		{
			name:      "no filters",
			wantWhere: "WHERE active = ?",
			wantArgs:  []interface{}{true},
		},
		{
			name:       "category only",
			categoryID: uintPtr(3),
			wantWhere:  "WHERE active = ? AND category_id = ?",
			wantArgs:   []interface{}{true, uint(3)},
		},
		{
			name:      "store only",
			storeID:   uintPtr(7),
			wantWhere: "WHERE active = ? AND store_id = ?",
			wantArgs:  []interface{}{true, uint(7)},
		},
		{
			name:      "term only",
			term:      "Shirt",
			wantWhere: "WHERE active = ? AND LOWER(name) LIKE ?",
			wantArgs:  []interface{}{true, "%shirt%"},
		},
		{
			name:       "all filters keep category, store, term order",
			categoryID: uintPtr(1),
			storeID:    uintPtr(2),
			term:       "mug",
			wantWhere:  "WHERE active = ? AND category_id = ? AND store_id = ? AND LOWER(name) LIKE ?",
			wantArgs:   []interface{}{true, uint(1), uint(2), "%mug%"},
		},
		{
			name:      "blank term is ignored",
			term:      "   ",
			wantWhere: "WHERE active = ?",
			wantArgs:  []interface{}{true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := activeProducts(dryRunDB(t), tc.categoryID, tc.storeID, tc.term)

			var total int64
			cnt := q.Session(&gorm.Session{}).Count(&total).Statement
			sel := q.Session(&gorm.Session{}).Order("id ASC").
				Scopes(Paginate(Page{Number: 3, Size: 10})).
				Find(&[]model.Product{}).Statement

			assert.Contains(t, cnt.SQL.String(), tc.wantWhere)
			assert.Contains(t, sel.SQL.String(), tc.wantWhere)
			assert.NotContains(t, cnt.SQL.String(), "LIMIT")
			assert.Contains(t, sel.SQL.String(), "LIMIT 10")
			assert.Contains(t, sel.SQL.String(), "OFFSET 20")
			assert.Equal(t, tc.wantArgs, cnt.Vars)
			assert.Equal(t, tc.wantArgs, sel.Vars)
		})
	}
}

func TestContains_TermIsNeverInterpolated(t *testing.T) {
	stmt := dryRunDB(t).Model(&model.Product{}).
		Scopes(Contains("name", "x' OR '1'='1")).
		Find(&[]model.Product{}).Statement

	assert.NotContains(t, stmt.SQL.String(), "OR '1'='1")
	assert.Equal(t, []interface{}{"%x' or '1'='1%"}, stmt.Vars)
}

func TestScopes_UseModelTableName(t *testing.T) {
	stmt := dryRunDB(t).Model(&model.Category{}).
		Scopes(Paginate(Page{Number: 1, Size: 10})).
		Find(&[]model.Category{}).Statement

	assert.Contains(t, stmt.SQL.String(), "product_categories")
}

func TestFindPage_ReusesQuery(t *testing.T) {
	db := testutil.NewDB(t)
	for i := 1; i <= 12; i++ {
		require.NoError(t, db.Create(&model.Product{
			Name:   fmt.Sprintf("Shirt %02d", i),
			Price:  decimal.NewFromInt(5),
			Stock:  i,
			Active: true,
		}).Error)
	}

	q := activeProducts(db, nil, nil, "shirt")

	var second []model.Product
	total, err := FindPage(q, "id ASC", Page{Number: 2, Size: 10}, &second)
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
	require.Len(t, second, 2)
	assert.Equal(t, "Shirt 11", second[0].Name)

	var first []model.Product
	total, err = FindPage(q, "id ASC", Page{Number: 1, Size: 10}, &first)
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
	assert.Len(t, first, 10)

	var beyond []model.Product
	total, err = FindPage(q, "id ASC", Page{Number: MaxPage(10), Size: 10}, &beyond)
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
	assert.Empty(t, beyond)
}
