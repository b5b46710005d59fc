package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prodcat/catalog_backend_app/internal/apperrors"
	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	portsrepo "github.com/prodcat/catalog_backend_app/internal/core/ports/repositories"
	"github.com/prodcat/catalog_backend_app/internal/models"
)

// sortColumns maps the API-level sort fields to actual columns. The service
// layer validates sort input against its whitelist; this map is the final
// word on what reaches the ORDER BY clause.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"price":     "price",
}

type PgxProductRepository struct {
	db *pgxpool.Pool
}

func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{db: db}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

func toModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		UserID:      d.UserID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Images:      d.Images,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Images:      m.Images,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = toDomainProduct(m)
	}
	return ds
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	modelProduct := toModelProduct(product)
	query := `
        INSERT INTO products (product_id, user_id, name, description, price, images, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		modelProduct.ProductID,
		modelProduct.UserID,
		modelProduct.Name,
		modelProduct.Description,
		modelProduct.Price,
		modelProduct.Images,
		modelProduct.IsActive,
		modelProduct.CreatedAt,
		modelProduct.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT product_id, user_id, name, description, price, images, is_active, created_at, updated_at
		FROM products
		WHERE product_id = $1 AND is_active = TRUE;
	`
	var modelProduct models.Product
	err := r.db.QueryRow(ctx, query, productID).Scan(
		&modelProduct.ProductID,
		&modelProduct.UserID,
		&modelProduct.Name,
		&modelProduct.Description,
		&modelProduct.Price,
		&modelProduct.Images,
		&modelProduct.IsActive,
		&modelProduct.CreatedAt,
		&modelProduct.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	domainProduct := toDomainProduct(modelProduct)
	return &domainProduct, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, userID string, filter portsrepo.ProductListFilter) ([]domain.Product, int64, error) {
	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortOrder == "ASC" {
		direction = "ASC"
	}

	where := `WHERE user_id = $1 AND is_active = TRUE`
	args := []any{userID}
	if filter.Search != "" {
		where += ` AND (name ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')`
		args = append(args, filter.Search)
	}

	countQuery := `SELECT COUNT(*) FROM products ` + where + `;`
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	listQuery := fmt.Sprintf(`
        SELECT product_id, user_id, name, description, price, images, is_active, created_at, updated_at
        FROM products
        %s
        ORDER BY %s %s
        LIMIT $%d OFFSET $%d;
    `, where, column, direction, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	modelProducts := []models.Product{}
	for rows.Next() {
		var modelProduct models.Product
		err := rows.Scan(
			&modelProduct.ProductID,
			&modelProduct.UserID,
			&modelProduct.Name,
			&modelProduct.Description,
			&modelProduct.Price,
			&modelProduct.Images,
			&modelProduct.IsActive,
			&modelProduct.CreatedAt,
			&modelProduct.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product row: %w", err)
		}
		modelProducts = append(modelProducts, modelProduct)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}

	return toDomainProductSlice(modelProducts), total, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	modelProduct := toModelProduct(product)
	query := `
        UPDATE products
        SET name = $1, description = $2, price = $3, images = $4, updated_at = $5
        WHERE product_id = $6 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelProduct.Name,
		modelProduct.Description,
		modelProduct.Price,
		modelProduct.Images,
		modelProduct.UpdatedAt,
		modelProduct.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update product query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product not found or inactive: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProductRepository) MarkProductInactive(ctx context.Context, productID string, deletedAt time.Time) error {
	query := `
        UPDATE products
        SET is_active = FALSE, updated_at = $1
        WHERE product_id = $2 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, productID)
	if err != nil {
		return fmt.Errorf("failed to mark product inactive: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product not found or already inactive: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProductRepository) CountProductsByUser(ctx context.Context, userID string) (int64, int64, error) {
	query := `
        SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active = TRUE)
        FROM products
        WHERE user_id = $1;
    `
	var total, active int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total, &active); err != nil {
		return 0, 0, fmt.Errorf("failed to count products for user %s: %w", userID, err)
	}
	return total, active, nil
}
