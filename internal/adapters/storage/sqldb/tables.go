package sqldb

import (
	"database/sql"

	"cattery-cms/internal/domain/catalog"
)

var KittensTable = Table[catalog.Kitten]{
	Name:    "kittens",
	Columns: []string{"name", "birth_date", "color", "gender", "price", "description", "image_url", "available"},
	Values: func(k catalog.Kitten) []any {
		return []any{k.Name, k.BirthDate, k.Color, string(k.Gender), k.Price, k.Description, k.ImageURL, k.Available}
	},
	Scan: func(s scanner) (catalog.Kitten, error) {
		var (
			k                                   catalog.Kitten
			birth, color, gender, desc, img, ts sql.NullString
			price                               sql.NullFloat64
			available                           sql.NullBool
		)
		if err := s.Scan(&k.ID, &k.Name, &birth, &color, &gender, &price, &desc, &img, &available, &ts); err != nil {
			return catalog.Kitten{}, err
		}
		k.BirthDate = birth.String
		k.Color = color.String
		k.Gender = catalog.Gender(gender.String)
		k.Price = price.Float64
		k.Description = desc.String
		k.ImageURL = img.String
		k.Available = available.Bool

		created, err := parseTime(ts.String)
		k.CreatedAt = created
		return k, err
	},
}

var ParentsTable = Table[catalog.Parent]{
	Name:    "parents",
	Columns: []string{"name", "gender", "color", "description", "image_url"},
	Values: func(p catalog.Parent) []any {
		return []any{p.Name, string(p.Gender), p.Color, p.Description, p.ImageURL}
	},
	Scan: func(s scanner) (catalog.Parent, error) {
		var (
			p                            catalog.Parent
			gender, color, desc, img, ts sql.NullString
		)
		if err := s.Scan(&p.ID, &p.Name, &gender, &color, &desc, &img, &ts); err != nil {
			return catalog.Parent{}, err
		}
		p.Gender = catalog.Gender(gender.String)
		p.Color = color.String
		p.Description = desc.String
		p.ImageURL = img.String

		created, err := parseTime(ts.String)
		p.CreatedAt = created
		return p, err
	},
}

var ProductsTable = Table[catalog.Product]{
	Name:    "products",
	Columns: []string{"name", "description", "price", "category", "image_url", "stock_quantity", "available"},
	Values: func(p catalog.Product) []any {
		return []any{p.Name, p.Description, p.Price, p.Category, p.ImageURL, int64(p.StockQuantity), p.Available}
	},
	Scan: func(s scanner) (catalog.Product, error) {
		var (
			p                  catalog.Product
			desc, cat, img, ts sql.NullString
			price              sql.NullFloat64
			stock              sql.NullInt64
			available          sql.NullBool
		)
		if err := s.Scan(&p.ID, &p.Name, &desc, &price, &cat, &img, &stock, &available, &ts); err != nil {
			return catalog.Product{}, err
		}
		p.Description = desc.String
		p.Price = price.Float64
		p.Category = cat.String
		p.ImageURL = img.String
		p.StockQuantity = int(stock.Int64)
		p.Available = available.Bool

		created, err := parseTime(ts.String)
		p.CreatedAt = created
		return p, err
	},
}
