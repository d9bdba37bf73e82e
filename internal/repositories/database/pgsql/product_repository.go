package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dejmenek/pms-backend/internal/apperrors"
	"github.com/dejmenek/pms-backend/internal/core/domain"
	portsrepo "github.com/dejmenek/pms-backend/internal/core/ports/repositories"
	"github.com/dejmenek/pms-backend/internal/models"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{BaseRepository{Pool: db}}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepository
var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

const productColumns = `
	id, product_type, name, price, is_active, date_added,
	processor_brand, processor_model, processor_core_count, processor_clock_speed_ghz,
	ram_size, storage_value, storage_unit, operating_system, graphics_card,
	screen_size, battery_life, webcam_quality, case_type`

// sortColumns whitelists the ORDER BY targets; sort input never reaches the
// query text directly.
var sortColumns = map[domain.ProductSortColumn]string{
	domain.SortByName:      "name",
	domain.SortByPrice:     "price",
	domain.SortByDateAdded: "date_added",
	domain.SortByID:        "id",
}

func toModelProduct(d domain.Product) models.Product {
	m := models.Product{
		ID:              d.ID,
		ProductType:     string(d.Kind),
		Name:            d.Name,
		Price:           d.Price,
		IsActive:        d.IsActive,
		DateAdded:       d.DateAdded,
		ProcessorBrand:  string(d.Processor.Brand),
		ProcessorModel:  d.Processor.Model,
		ProcessorCores:  d.Processor.CoreCount,
		ProcessorClock:  d.Processor.ClockSpeedGHz,
		RAMSize:         int(d.RAMSize),
		StorageValue:    d.Storage.Value,
		StorageUnit:     string(d.Storage.Unit),
		OperatingSystem: string(d.OperatingSystem),
		GraphicsCard:    d.GraphicsCard,
	}
	switch d.Kind {
	case domain.KindLaptop:
		m.ScreenSize = sql.NullFloat64{Float64: d.ScreenSize, Valid: true}
		m.BatteryLife = sql.NullInt32{Int32: int32(d.BatteryLife), Valid: true}
		m.WebcamQuality = sql.NullString{String: d.WebcamQuality, Valid: true}
	case domain.KindDesktop:
		m.CaseType = sql.NullString{String: string(d.CaseType), Valid: true}
	}
	return m
}

func toDomainProduct(m models.Product) domain.Product {
	d := domain.Product{
		ID:        m.ID,
		Kind:      domain.ProductKind(m.ProductType),
		Name:      m.Name,
		Price:     m.Price,
		IsActive:  m.IsActive,
		DateAdded: m.DateAdded,
		Processor: domain.Processor{
			Brand:         domain.Brand(m.ProcessorBrand),
			Model:         m.ProcessorModel,
			CoreCount:     m.ProcessorCores,
			ClockSpeedGHz: m.ProcessorClock,
		},
		RAMSize: domain.RAMSize(m.RAMSize),
		Storage: domain.StorageCapacity{
			Value: m.StorageValue,
			Unit:  domain.StorageUnit(m.StorageUnit),
		},
		OperatingSystem: domain.SystemType(m.OperatingSystem),
		GraphicsCard:    m.GraphicsCard,
	}
	if m.ScreenSize.Valid {
		d.ScreenSize = m.ScreenSize.Float64
	}
	if m.BatteryLife.Valid {
		d.BatteryLife = int(m.BatteryLife.Int32)
	}
	if m.WebcamQuality.Valid {
		d.WebcamQuality = m.WebcamQuality.String
	}
	if m.CaseType.Valid {
		d.CaseType = domain.CaseType(m.CaseType.String)
	}
	return d
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ID, &m.ProductType, &m.Name, &m.Price, &m.IsActive, &m.DateAdded,
		&m.ProcessorBrand, &m.ProcessorModel, &m.ProcessorCores, &m.ProcessorClock,
		&m.RAMSize, &m.StorageValue, &m.StorageUnit, &m.OperatingSystem, &m.GraphicsCard,
		&m.ScreenSize, &m.BatteryLife, &m.WebcamQuality, &m.CaseType,
	)
	return m, err
}

func (r *PgxProductRepository) GetProducts(ctx context.Context, page int, search string, perPage pagination.PageSize, sortColumn domain.ProductSortColumn, sortDirection pagination.SortDirection) (pagination.Paged[domain.Product], error) {
	orderBy, ok := sortColumns[sortColumn]
	if !ok {
		orderBy = sortColumns[domain.SortByName]
	}
	direction := "ASC"
	if sortDirection == pagination.Descending {
		direction = "DESC"
	}

	pattern := searchPattern(search)

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM products WHERE name ILIKE $1;`
	if err := r.Pool.QueryRow(ctx, countQuery, pattern).Scan(&totalCount); err != nil {
		return pagination.Paged[domain.Product]{}, fmt.Errorf("failed to count products: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE name ILIKE $1
		ORDER BY %s %s
		LIMIT $2 OFFSET $3;
	`, productColumns, orderBy, direction)

	rows, err := r.Pool.Query(ctx, query, pattern, int(perPage), pagination.Offset(page, perPage))
	if err != nil {
		return pagination.Paged[domain.Product]{}, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return pagination.Paged[domain.Product]{}, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, toDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return pagination.Paged[domain.Product]{}, fmt.Errorf("failed to iterate product rows: %w", err)
	}

	return pagination.NewPaged(products, page, perPage, totalCount), nil
}

func (r *PgxProductRepository) CountProducts(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM products;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *PgxProductRepository) RemoveProducts(ctx context.Context, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}
	if _, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE id = ANY($1);`, productIDs); err != nil {
		return fmt.Errorf("failed to remove products: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) RemoveProduct(ctx context.Context, productID int64) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1;`, productID); err != nil {
		return fmt.Errorf("failed to remove product %d: %w", productID, err)
	}
	return nil
}

func (r *PgxProductRepository) AddLaptop(ctx context.Context, laptop domain.Product) (domain.Product, error) {
	return r.insertProduct(ctx, laptop)
}

func (r *PgxProductRepository) AddDesktop(ctx context.Context, desktop domain.Product) (domain.Product, error) {
	return r.insertProduct(ctx, desktop)
}

func (r *PgxProductRepository) insertProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	m := toModelProduct(product)
	query := `
		INSERT INTO products (
			product_type, name, price, is_active, date_added,
			processor_brand, processor_model, processor_core_count, processor_clock_speed_ghz,
			ram_size, storage_value, storage_unit, operating_system, graphics_card,
			screen_size, battery_life, webcam_quality, case_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.ProductType, m.Name, m.Price, m.IsActive, m.DateAdded,
		m.ProcessorBrand, m.ProcessorModel, m.ProcessorCores, m.ProcessorClock,
		m.RAMSize, m.StorageValue, m.StorageUnit, m.OperatingSystem, m.GraphicsCard,
		m.ScreenSize, m.BatteryLife, m.WebcamQuality, m.CaseType,
	).Scan(&product.ID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to insert %s: %w", m.ProductType, err)
	}
	return product, nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1;`, productColumns)
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, apperrors.ErrNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to find product %d: %w", productID, err)
	}
	return toDomainProduct(m), nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := toModelProduct(product)
	query := `
		UPDATE products SET
			product_type = $2,
			name = $3,
			price = $4,
			is_active = $5,
			processor_brand = $6,
			processor_model = $7,
			processor_core_count = $8,
			processor_clock_speed_ghz = $9,
			ram_size = $10,
			storage_value = $11,
			storage_unit = $12,
			operating_system = $13,
			graphics_card = $14,
			screen_size = $15,
			battery_life = $16,
			webcam_quality = $17,
			case_type = $18
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.ProductType, m.Name, m.Price, m.IsActive,
		m.ProcessorBrand, m.ProcessorModel, m.ProcessorCores, m.ProcessorClock,
		m.RAMSize, m.StorageValue, m.StorageUnit, m.OperatingSystem, m.GraphicsCard,
		m.ScreenSize, m.BatteryLife, m.WebcamQuality, m.CaseType,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
