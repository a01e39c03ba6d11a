// Package listing holds the filter scopes and pagination shared by every
// listing endpoint.
package listing

import (
	"strings"

	"gorm.io/gorm"
)

// Equal filters on "column = ?" only when value is set.
func Equal(column string, value *uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db
		}
		return db.Where(column+" = ?", *value)
	}
}

// Contains is a case-insensitive substring match on column, skipped when term
// is blank. The wildcards travel inside the bound argument.
func Contains(column, term string) func(*gorm.DB) *gorm.DB {
	term = strings.TrimSpace(term)
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(term)+"%")
	}
}

// Paginate applies the page's LIMIT and OFFSET.
func Paginate(page Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(page.Offset()).Limit(page.Limit())
	}
}

// FindPage counts the rows matched by query, then loads one page of them in
// order. Both statements run on clones of query, so they share its WHERE
// clause and bind order.
func FindPage(query *gorm.DB, order string, page Page, dest interface{}) (int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}

	rows := query.Session(&gorm.Session{})
	if order != "" {
		rows = rows.Order(order)
	}
	if err := rows.Scopes(Paginate(page)).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}
