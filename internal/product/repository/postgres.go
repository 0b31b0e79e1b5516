package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/coffee-storefront-service/internal/model"
	"github.com/fekuna/coffee-storefront-service/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, name_en, name_ar, description_en, description_ar, category, image_url,
            price_omr, price_usd, price_sar, on_sale, sale_price_omr, sale_price_usd,
            sale_price_sar, is_active, created_at, updated_at
        )
        VALUES (
            :id, :name_en, :name_ar, :description_en, :description_ar, :category, :image_url,
            :price_omr, :price_usd, :price_sar, :on_sale, :sale_price_omr, :sale_price_usd,
            :sale_price_sar, :is_active, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	props, err := r.loadProperties(ctx, []string{product.ID})
	if err != nil {
		return nil, err
	}
	product.Properties = props[product.ID]
	return &product, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var products []model.Product
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.Category != "" {
		conditions = append(conditions, "category = :category")
		args["category"] = f.Category
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name_en ILIKE :search OR name_ar ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM products" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			rows.Close()
			return nil, 0, err
		}
	}
	rows.Close()

	orderBy := "created_at DESC"
	if f.SortBy != "" {
		// Whitelisted columns only
		switch f.SortBy {
		case "name":
			orderBy = "name_en"
		case "price":
			orderBy = "price_omr"
		default:
			orderBy = "created_at"
		}
		if strings.ToLower(f.SortOrder) == "asc" {
			orderBy += " ASC"
		} else {
			orderBy += " DESC"
		}
	}

	query := fmt.Sprintf("SELECT * FROM products%s ORDER BY %s", whereClause, orderBy)

	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &products, args); err != nil {
		return nil, 0, err
	}

	if len(products) == 0 {
		return products, count, nil
	}

	ids := make([]string, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}
	props, err := r.loadProperties(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range products {
		products[i].Properties = props[products[i].ID]
	}

	return products, count, nil
}

// loadProperties fetches properties and options for the given products, keyed by
// product id, both in display order.
func (r *PGRepository) loadProperties(ctx context.Context, productIDs []string) (map[string][]model.Property, error) {
	query, args, err := sqlx.In(
		`SELECT * FROM product_properties WHERE product_id IN (?) ORDER BY sort_order ASC, name ASC`,
		productIDs,
	)
	if err != nil {
		return nil, err
	}
	var props []model.Property
	if err := r.DB.SelectContext(ctx, &props, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}

	out := make(map[string][]model.Property, len(productIDs))
	if len(props) == 0 {
		return out, nil
	}

	propIDs := make([]string, len(props))
	for i := range props {
		propIDs[i] = props[i].ID
	}
	query, args, err = sqlx.In(
		`SELECT * FROM property_options WHERE property_id IN (?) ORDER BY sort_order ASC, value ASC`,
		propIDs,
	)
	if err != nil {
		return nil, err
	}
	var options []model.PropertyOption
	if err := r.DB.SelectContext(ctx, &options, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}

	byProperty := make(map[string][]model.PropertyOption, len(props))
	for _, o := range options {
		byProperty[o.PropertyID] = append(byProperty[o.PropertyID], o)
	}
	for _, p := range props {
		p.Options = byProperty[p.ID]
		out[p.ProductID] = append(out[p.ProductID], p)
	}
	return out, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name_en = :name_en,
            name_ar = :name_ar,
            description_en = :description_en,
            description_ar = :description_ar,
            category = :category,
            image_url = :image_url,
            price_omr = :price_omr,
            price_usd = :price_usd,
            price_sar = :price_sar,
            on_sale = :on_sale,
            sale_price_omr = :sale_price_omr,
            sale_price_usd = :sale_price_usd,
            sale_price_sar = :sale_price_sar,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	// properties and options cascade
	_, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	return err
}
