package models

import "gorm.io/gorm"

// Every read path must state both visibility predicates it applies:
// active rows (NotDeleted) and visible rows (NotArchived). Join
// queries qualify the columns inline instead, since these scopes do
// not carry a table prefix.

func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_delete = ?", false)
}

func NotArchived(db *gorm.DB) *gorm.DB {
	return db.Where("archive = ?", false)
}
