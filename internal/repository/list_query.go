package repository

import (
	"strings"

	"go-clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// applySearch composes a case-insensitive substring match over the given
// columns. Column names come from repository code, never from the caller.
func applySearch(db *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return db
	}
	conds := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	pattern := "%" + search + "%"
	for i, col := range columns {
		conds[i] = col + " ILIKE ?"
		args[i] = pattern
	}
	return db.Where(strings.Join(conds, " OR "), args...)
}

// applyOrder translates a validated sort key ("name", "-created_at") into
// an ORDER BY clause. The key was whitelisted by entity.NewListQuery.
func applyOrder(db *gorm.DB, order string) *gorm.DB {
	if order == "" {
		return db
	}
	if strings.HasPrefix(order, "-") {
		return db.Order(order[1:] + " DESC")
	}
	return db.Order(order + " ASC")
}

// qualifyOrder prefixes a validated sort key with a table name, keeping
// the leading "-" direction marker intact.
func qualifyOrder(order, table string) string {
	if order == "" {
		return order
	}
	if strings.HasPrefix(order, "-") {
		return "-" + table + "." + order[1:]
	}
	return table + "." + order
}

// applyPage applies the limit/offset window of a list query.
func applyPage(db *gorm.DB, query *entity.ListQuery) *gorm.DB {
	limit := entity.DefaultListLimit
	offset := 0
	if query != nil {
		limit = query.Limit
		offset = query.Offset
	}
	return db.Limit(limit).Offset(offset)
}
