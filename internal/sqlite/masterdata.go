package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aasia/cladtrack/internal/domain/masterdata"
	"github.com/aasia/cladtrack/internal/repository"
)

// MasterDataRepository implements masterdata.Repository for SQLite
type MasterDataRepository struct {
	db *DB
}

// NewMasterDataRepository creates a new MasterDataRepository
func NewMasterDataRepository(db *DB) *MasterDataRepository {
	return &MasterDataRepository{db: db}
}

// CreateCustomer creates a new customer
func (r *MasterDataRepository) CreateCustomer(ctx context.Context, c *masterdata.Customer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (id, name, industry, country, phone, email, division, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Industry, c.Country, c.Phone, c.Email, c.Division, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// UpdateCustomer replaces a customer's fields
func (r *MasterDataRepository) UpdateCustomer(ctx context.Context, c *masterdata.Customer) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE customers SET name = ?, industry = ?, country = ?, phone = ?, email = ?, division = ?
		WHERE id = ?
	`, c.Name, c.Industry, c.Country, c.Phone, c.Email, c.Division, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return checkAffected(result)
}

// GetCustomer retrieves a customer by ID
func (r *MasterDataRepository) GetCustomer(ctx context.Context, id string) (*masterdata.Customer, error) {
	var c masterdata.Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, industry, country, phone, email, division, created_at
		FROM customers WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.Industry, &c.Country, &c.Phone, &c.Email, &c.Division, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &c, nil
}

// DeleteCustomer removes a customer
func (r *MasterDataRepository) DeleteCustomer(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return checkAffected(result)
}

// ListCustomers returns all customers by name
func (r *MasterDataRepository) ListCustomers(ctx context.Context) ([]masterdata.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, industry, country, phone, email, division, created_at
		FROM customers ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []masterdata.Customer
	for rows.Next() {
		var c masterdata.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Industry, &c.Country, &c.Phone, &c.Email, &c.Division, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

// CreateVendor creates a new vendor
func (r *MasterDataRepository) CreateVendor(ctx context.Context, v *masterdata.Vendor) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vendors (id, name, category, contact_person, phone, email, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, v.ID, v.Name, v.Category, v.ContactPerson, v.Phone, v.Email, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	return nil
}

// UpdateVendor replaces a vendor's fields
func (r *MasterDataRepository) UpdateVendor(ctx context.Context, v *masterdata.Vendor) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE vendors SET name = ?, category = ?, contact_person = ?, phone = ?, email = ?
		WHERE id = ?
	`, v.Name, v.Category, v.ContactPerson, v.Phone, v.Email, v.ID)
	if err != nil {
		return fmt.Errorf("failed to update vendor: %w", err)
	}
	return checkAffected(result)
}

// GetVendor retrieves a vendor by ID
func (r *MasterDataRepository) GetVendor(ctx context.Context, id string) (*masterdata.Vendor, error) {
	var v masterdata.Vendor
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, contact_person, phone, email, created_at
		FROM vendors WHERE id = ?
	`, id).Scan(&v.ID, &v.Name, &v.Category, &v.ContactPerson, &v.Phone, &v.Email, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return &v, nil
}

// DeleteVendor removes a vendor
func (r *MasterDataRepository) DeleteVendor(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vendors WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	return checkAffected(result)
}

// ListVendors returns all vendors by name
func (r *MasterDataRepository) ListVendors(ctx context.Context) ([]masterdata.Vendor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, contact_person, phone, email, created_at
		FROM vendors ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []masterdata.Vendor
	for rows.Next() {
		var v masterdata.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, &v.ContactPerson, &v.Phone, &v.Email, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vendor rows: %w", err)
	}
	return vendors, nil
}

// CreateProduct creates a new product
func (r *MasterDataRepository) CreateProduct(ctx context.Context, p *masterdata.Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, code, name, category, uom, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.ID, p.Code, p.Name, p.Category, p.UOM, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateProduct replaces a product's fields
func (r *MasterDataRepository) UpdateProduct(ctx context.Context, p *masterdata.Product) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE products SET code = ?, name = ?, category = ?, uom = ? WHERE id = ?
	`, p.Code, p.Name, p.Category, p.UOM, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return checkAffected(result)
}

// GetProduct retrieves a product by ID
func (r *MasterDataRepository) GetProduct(ctx context.Context, id string) (*masterdata.Product, error) {
	var p masterdata.Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, code, name, category, uom, created_at FROM products WHERE id = ?
	`, id).Scan(&p.ID, &p.Code, &p.Name, &p.Category, &p.UOM, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

// DeleteProduct removes a product
func (r *MasterDataRepository) DeleteProduct(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return checkAffected(result)
}

// ListProducts returns all products by code
func (r *MasterDataRepository) ListProducts(ctx context.Context) ([]masterdata.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, code, name, category, uom, created_at FROM products ORDER BY code ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []masterdata.Product
	for rows.Next() {
		var p masterdata.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Category, &p.UOM, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// CreateWorkstation creates a new workstation
func (r *MasterDataRepository) CreateWorkstation(ctx context.Context, w *masterdata.Workstation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workstations (id, name, type, status, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, w.ID, w.Name, w.Type, w.Status, w.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create workstation: %w", err)
	}
	return nil
}

// UpdateWorkstation replaces a workstation's fields
func (r *MasterDataRepository) UpdateWorkstation(ctx context.Context, w *masterdata.Workstation) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE workstations SET name = ?, type = ?, status = ? WHERE id = ?
	`, w.Name, w.Type, w.Status, w.ID)
	if err != nil {
		return fmt.Errorf("failed to update workstation: %w", err)
	}
	return checkAffected(result)
}

// GetWorkstation retrieves a workstation by ID
func (r *MasterDataRepository) GetWorkstation(ctx context.Context, id string) (*masterdata.Workstation, error) {
	var w masterdata.Workstation
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, type, status, created_at FROM workstations WHERE id = ?
	`, id).Scan(&w.ID, &w.Name, &w.Type, &w.Status, &w.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workstation: %w", err)
	}
	return &w, nil
}

// DeleteWorkstation removes a workstation
func (r *MasterDataRepository) DeleteWorkstation(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workstations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workstation: %w", err)
	}
	return checkAffected(result)
}

// ListWorkstations returns all workstations by name
func (r *MasterDataRepository) ListWorkstations(ctx context.Context) ([]masterdata.Workstation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, status, created_at FROM workstations ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workstations: %w", err)
	}
	defer rows.Close()

	var stations []masterdata.Workstation
	for rows.Next() {
		var w masterdata.Workstation
		if err := rows.Scan(&w.ID, &w.Name, &w.Type, &w.Status, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workstation: %w", err)
		}
		stations = append(stations, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workstation rows: %w", err)
	}
	return stations, nil
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
