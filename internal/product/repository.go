package product

import (
	"context"
	"database/sql"

	"ecowear-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	ListBySeller(ctx context.Context, sellerID int) ([]Product, error)
	Create(ctx context.Context, input NewProductInput, sellerID int) (Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productSelect = `
	SELECT p.id, p.seller_id, u.name, p.name, p.description, p.price,
	       p.category, p.image, p.materials, p.eco_certifications,
	       p.carbon_footprint, p.production_process, p.stock, p.created_at
	FROM products p
	JOIN users u ON u.id = p.seller_id`

func scanProduct(s interface {
	Scan(dest ...interface{}) error
}) (Product, error) {
	var p Product
	err := s.Scan(
		&p.ID, &p.SellerID, &p.SellerName, &p.Name, &p.Description, &p.Price,
		&p.Category, &p.Image, &p.Materials, pq.Array(&p.EcoCertifications),
		&p.CarbonFootprint, &p.ProductionProcess, &p.Stock, &p.CreatedAt,
	)
	return p, err
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, productSelect+" ORDER BY p.created_at DESC, p.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+" WHERE p.id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListBySeller(ctx context.Context, sellerID int) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx,
		productSelect+" WHERE p.seller_id = $1 ORDER BY p.created_at DESC, p.id",
		sellerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *repository) Create(ctx context.Context, input NewProductInput, sellerID int) (Product, error) {
	log := logger.FromCtx(ctx)

	certs := input.EcoCertifications
	if certs == nil {
		certs = []string{}
	}

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (
			id, seller_id, name, description, price, category, image,
			materials, eco_certifications, carbon_footprint,
			production_process, stock
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		id, sellerID, input.Name, input.Description, input.Price,
		input.Category, input.Image, input.Materials, pq.Array(certs),
		input.CarbonFootprint, input.ProductionProcess, input.Stock,
	)
	if err != nil {
		log.Error("db: failed to insert product",
			zap.Int("seller_id", sellerID),
			zap.Error(err),
		)
		return Product{}, err
	}

	created, err := r.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	return *created, nil
}

func collectProducts(rows *sql.Rows) ([]Product, error) {
	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
