package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	FindByLogin(ctx context.Context, firstName, lastName string, id int) (*domain.Customer, error)
}

type PGCustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &PGCustomerRepository{db: db}
}

func (r *PGCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `SELECT nextval('customer_id_seq')`).Scan(&customer.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO customer (customerid, firstname, lastname, gender, dob, address, phone, zip)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		customer.ID, customer.FirstName, customer.LastName, customer.Gender,
		customer.DOB, customer.Address, customer.Phone, customer.Zip); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGCustomerRepository) FindByLogin(ctx context.Context, firstName, lastName string, id int) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT customerid, firstname, lastname, gender, dob, address, phone, zip
		FROM customer WHERE firstname=$1 AND lastname=$2 AND customerid=$3`, firstName, lastName, id)

	var c domain.Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Gender, &c.DOB, &c.Address, &c.Phone, &c.Zip)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

var _ CustomerRepository = (*PGCustomerRepository)(nil)
