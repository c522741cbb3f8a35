package repository

import (
	"context"
	"database/sql"
	"fmt"

	"catalog/internal/domain"
	apperrors "catalog/internal/errors"
)

// MySQLRepository reads the catalog from the Product table.
type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, title, price, description, category, image, rating_rate, rating_count
		FROM Product
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewFetchError("", fmt.Errorf("querying products: %w", err))
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var (
			p           domain.Product
			description sql.NullString
			category    sql.NullString
		)
		err := rows.Scan(
			&p.ID, &p.Title, &p.Price, &description, &category, &p.Image,
			&p.Rating.Rate, &p.Rating.Count,
		)
		if err != nil {
			return nil, apperrors.NewFetchError("", fmt.Errorf("scanning product row: %w", err))
		}
		p.Description = description.String
		p.Category = category.String
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewFetchError("", fmt.Errorf("iterating product rows: %w", err))
	}

	return products, nil
}
