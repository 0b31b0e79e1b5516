package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/coffee-storefront-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const updateOptionQuery = `
        UPDATE property_options
        SET value = :value,
            label_en = :label_en,
            label_ar = :label_ar,
            price_omr = :price_omr,
            price_usd = :price_usd,
            price_sar = :price_sar,
            price_modifier = :price_modifier,
            price_modifier_usd = :price_modifier_usd,
            price_modifier_sar = :price_modifier_sar,
            on_sale = :on_sale,
            sale_price_omr = :sale_price_omr,
            sale_price_usd = :sale_price_usd,
            sale_price_sar = :sale_price_sar,
            sale_price_modifier = :sale_price_modifier,
            sort_order = :sort_order,
            updated_at = :updated_at
        WHERE id = :id
    `

func (r *PGRepository) CreateProperty(ctx context.Context, p *model.Property) error {
	query := `
        INSERT INTO product_properties (id, product_id, name, label_en, label_ar, affects_price, sort_order, created_at, updated_at)
        VALUES (:id, :product_id, :name, :label_en, :label_ar, :affects_price, :sort_order, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) FindPropertyByID(ctx context.Context, id string) (*model.Property, error) {
	var property model.Property
	err := r.DB.GetContext(ctx, &property, `SELECT * FROM product_properties WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.DB.SelectContext(ctx, &property.Options,
		`SELECT * FROM property_options WHERE property_id = $1 ORDER BY sort_order ASC, value ASC`, id,
	); err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *PGRepository) ListByProduct(ctx context.Context, productID string) ([]model.Property, error) {
	var props []model.Property
	if err := r.DB.SelectContext(ctx, &props,
		`SELECT * FROM product_properties WHERE product_id = $1 ORDER BY sort_order ASC, name ASC`, productID,
	); err != nil {
		return nil, err
	}
	if len(props) == 0 {
		return props, nil
	}

	var options []model.PropertyOption
	if err := r.DB.SelectContext(ctx, &options, `
        SELECT o.* FROM property_options o
        JOIN product_properties p ON p.id = o.property_id
        WHERE p.product_id = $1
        ORDER BY o.sort_order ASC, o.value ASC`, productID,
	); err != nil {
		return nil, err
	}

	byProperty := make(map[string][]model.PropertyOption, len(props))
	for _, o := range options {
		byProperty[o.PropertyID] = append(byProperty[o.PropertyID], o)
	}
	for i := range props {
		props[i].Options = byProperty[props[i].ID]
	}
	return props, nil
}

func (r *PGRepository) UpdateProperty(ctx context.Context, p *model.Property) error {
	query := `
        UPDATE product_properties
        SET label_en = :label_en,
            label_ar = :label_ar,
            affects_price = :affects_price,
            sort_order = :sort_order,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) DeleteProperty(ctx context.Context, id string) error {
	// options cascade
	_, err := r.DB.ExecContext(ctx, "DELETE FROM product_properties WHERE id = $1", id)
	return err
}

func (r *PGRepository) CreateOption(ctx context.Context, o *model.PropertyOption) error {
	query := `
        INSERT INTO property_options (
            id, property_id, value, label_en, label_ar, price_omr, price_usd, price_sar,
            price_modifier, price_modifier_usd, price_modifier_sar, on_sale, sale_price_omr,
            sale_price_usd, sale_price_sar, sale_price_modifier, sort_order, created_at, updated_at
        )
        VALUES (
            :id, :property_id, :value, :label_en, :label_ar, :price_omr, :price_usd, :price_sar,
            :price_modifier, :price_modifier_usd, :price_modifier_sar, :on_sale, :sale_price_omr,
            :sale_price_usd, :sale_price_sar, :sale_price_modifier, :sort_order, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, o)
	return err
}

func (r *PGRepository) FindOptionByID(ctx context.Context, id string) (*model.PropertyOption, error) {
	var option model.PropertyOption
	err := r.DB.GetContext(ctx, &option, `SELECT * FROM property_options WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &option, nil
}

func (r *PGRepository) UpdateOption(ctx context.Context, o *model.PropertyOption) error {
	_, err := r.DB.NamedExecContext(ctx, updateOptionQuery, o)
	return err
}

func (r *PGRepository) DeleteOption(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM property_options WHERE id = $1", id)
	return err
}

func (r *PGRepository) UpdateOptions(ctx context.Context, options []model.PropertyOption) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range options {
		if _, err := tx.NamedExecContext(ctx, updateOptionQuery, &options[i]); err != nil {
			return fmt.Errorf("update option %s: %w", options[i].ID, err)
		}
	}
	return tx.Commit()
}
