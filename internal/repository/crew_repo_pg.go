package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CrewRepository interface {
	CreatePilot(ctx context.Context, name string) (*domain.Pilot, error)
	CreateTechnician(ctx context.Context, name string) (*domain.Technician, error)
	FindPilotByName(ctx context.Context, name string) (*domain.Pilot, error)
	FindTechnicianByName(ctx context.Context, name string) (*domain.Technician, error)
}

type PGCrewRepository struct {
	db *pgxpool.Pool
}

func NewCrewRepository(db *pgxpool.Pool) CrewRepository {
	return &PGCrewRepository{db: db}
}

// Pilot and technician identifiers share a padded three-digit space each,
// allocated from a sequence so concurrent creation never hands out the
// same suffix twice.
func (r *PGCrewRepository) CreatePilot(ctx context.Context, name string) (*domain.Pilot, error) {
	id, err := r.allocateID(ctx, "pilot_id_seq", 'P')
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Exec(ctx, `INSERT INTO pilot (pilotid, name) VALUES ($1, $2)`, id, name); err != nil {
		return nil, err
	}
	return &domain.Pilot{ID: id, Name: name}, nil
}

func (r *PGCrewRepository) CreateTechnician(ctx context.Context, name string) (*domain.Technician, error) {
	id, err := r.allocateID(ctx, "technician_id_seq", 'T')
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Exec(ctx, `INSERT INTO technician (technicianid, name) VALUES ($1, $2)`, id, name); err != nil {
		return nil, err
	}
	return &domain.Technician{ID: id, Name: name}, nil
}

func (r *PGCrewRepository) allocateID(ctx context.Context, sequence string, prefix byte) (string, error) {
	var seq int
	if err := r.db.QueryRow(ctx, `SELECT nextval($1::regclass)`, sequence).Scan(&seq); err != nil {
		return "", err
	}
	if seq > 999 {
		return "", domain.ErrCapacityExhausted
	}
	return fmt.Sprintf("%c%03d", prefix, seq), nil
}

func (r *PGCrewRepository) FindPilotByName(ctx context.Context, name string) (*domain.Pilot, error) {
	var p domain.Pilot
	err := r.db.QueryRow(ctx, `SELECT pilotid, name FROM pilot WHERE name=$1`, name).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGCrewRepository) FindTechnicianByName(ctx context.Context, name string) (*domain.Technician, error) {
	var t domain.Technician
	err := r.db.QueryRow(ctx, `SELECT technicianid, name FROM technician WHERE name=$1`, name).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

var _ CrewRepository = (*PGCrewRepository)(nil)
