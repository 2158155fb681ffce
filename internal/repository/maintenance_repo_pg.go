package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MaintenanceRepository interface {
	CreateRequest(ctx context.Context, req *domain.MaintenanceRequest) error
	RequestsByPilot(ctx context.Context, pilotID string) ([]domain.MaintenanceRequest, error)
	AddRepair(ctx context.Context, repair *domain.Repair) error
	RepairsBetween(ctx context.Context, planeID string, from, to time.Time) ([]domain.Repair, error)
}

type PGMaintenanceRepository struct {
	db *pgxpool.Pool
}

func NewMaintenanceRepository(db *pgxpool.Pool) MaintenanceRepository {
	return &PGMaintenanceRepository{db: db}
}

func (r *PGMaintenanceRepository) CreateRequest(ctx context.Context, req *domain.MaintenanceRequest) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `SELECT nextval('maintenance_request_id_seq')`).Scan(&req.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO maintenancerequest (requestid, planeid, repaircode, requestdate, pilotid)
		VALUES ($1, $2, $3, $4, $5)`, req.ID, req.PlaneID, req.RepairCode, req.RequestDate, req.PilotID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGMaintenanceRepository) RequestsByPilot(ctx context.Context, pilotID string) ([]domain.MaintenanceRequest, error) {
	rows, err := r.db.Query(ctx, `SELECT requestid, planeid, repaircode, requestdate, pilotid
		FROM maintenancerequest WHERE pilotid=$1 ORDER BY requestdate, requestid`, pilotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.MaintenanceRequest, 0)
	for rows.Next() {
		var m domain.MaintenanceRequest
		if err := rows.Scan(&m.ID, &m.PlaneID, &m.RepairCode, &m.RequestDate, &m.PilotID); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *PGMaintenanceRepository) AddRepair(ctx context.Context, repair *domain.Repair) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `SELECT nextval('repair_id_seq')`).Scan(&repair.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO repair (repairid, planeid, repaircode, repairdate, technicianid)
		VALUES ($1, $2, $3, $4, $5)`, repair.ID, repair.PlaneID, repair.RepairCode, repair.RepairDate, repair.TechnicianID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGMaintenanceRepository) RepairsBetween(ctx context.Context, planeID string, from, to time.Time) ([]domain.Repair, error) {
	rows, err := r.db.Query(ctx, `SELECT repairid, planeid, repaircode, repairdate, technicianid
		FROM repair
		WHERE planeid=$1 AND repairdate BETWEEN $2 AND $3
		ORDER BY repairdate`, planeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Repair, 0)
	for rows.Next() {
		var rep domain.Repair
		if err := rows.Scan(&rep.ID, &rep.PlaneID, &rep.RepairCode, &rep.RepairDate, &rep.TechnicianID); err != nil {
			return nil, err
		}
		items = append(items, rep)
	}
	return items, rows.Err()
}

var _ MaintenanceRepository = (*PGMaintenanceRepository)(nil)
