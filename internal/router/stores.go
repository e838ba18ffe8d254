package router

import (
	mem "cattery-cms/internal/adapters/storage/memory"
	"cattery-cms/internal/adapters/storage/sqldb"
	"cattery-cms/internal/domain/admin"
	"cattery-cms/internal/domain/catalog"
	"cattery-cms/internal/domain/content"
	"cattery-cms/internal/domain/waitlist"
)

// Stores agrupa los repos de todos los módulos.
type Stores struct {
	Content  content.Repository
	Kittens  catalog.Repository[catalog.Kitten]
	Parents  catalog.Repository[catalog.Parent]
	Products catalog.Repository[catalog.Product]
	Waitlist waitlist.Repository
	Settings admin.Repository
}

// NewStores: con DB usa SQL (Postgres o stoolap); sin DB, in-memory.
func NewStores(db *sqldb.DB) Stores {
	if db == nil {
		return Stores{
			Content:  mem.NewContentRepo(),
			Kittens:  mem.NewEntityRepo[catalog.Kitten](),
			Parents:  mem.NewEntityRepo[catalog.Parent](),
			Products: mem.NewEntityRepo[catalog.Product](),
			Waitlist: mem.NewWaitlistRepo(),
			Settings: mem.NewSettingsRepo(),
		}
	}
	return Stores{
		Content:  sqldb.NewContentRepo(db),
		Kittens:  sqldb.NewEntityRepo(db, sqldb.KittensTable),
		Parents:  sqldb.NewEntityRepo(db, sqldb.ParentsTable),
		Products: sqldb.NewEntityRepo(db, sqldb.ProductsTable),
		Waitlist: sqldb.NewWaitlistRepo(db),
		Settings: sqldb.NewSettingsRepo(db),
	}
}
