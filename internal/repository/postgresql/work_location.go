package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hrportal/hr-backend-go/internal/domain/worklocation"
	"github.com/hrportal/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workLocationRepository struct {
	db *database.DB
}

// Create implements worklocation.WorkLocationRepository.
func (w *workLocationRepository) Create(ctx context.Context, location worklocation.WorkLocation) (worklocation.WorkLocation, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_locations (id, name, address, latitude, longitude, radius_meters, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		location.ID, location.Name, location.Address,
		location.Latitude, location.Longitude, location.RadiusMeters,
		location.IsActive,
	).Scan(&location.CreatedAt, &location.UpdatedAt)

	if err != nil {
		return worklocation.WorkLocation{}, fmt.Errorf("failed to create work location: %w", err)
	}

	return location, nil
}

// GetByID implements worklocation.WorkLocationRepository.
func (w *workLocationRepository) GetByID(ctx context.Context, id string) (worklocation.WorkLocation, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, name, address, latitude, longitude, radius_meters, is_active, created_at, updated_at
		FROM work_locations
		WHERE id = $1
	`

	var location worklocation.WorkLocation
	err := q.QueryRow(ctx, query, id).Scan(
		&location.ID, &location.Name, &location.Address,
		&location.Latitude, &location.Longitude, &location.RadiusMeters,
		&location.IsActive, &location.CreatedAt, &location.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return worklocation.WorkLocation{}, worklocation.ErrWorkLocationNotFound
		}
		return worklocation.WorkLocation{}, fmt.Errorf("failed to get work location: %w", err)
	}

	return location, nil
}

// List implements worklocation.WorkLocationRepository.
func (w *workLocationRepository) List(ctx context.Context) ([]worklocation.WorkLocation, error) {
	return w.list(ctx, false)
}

// ListActive implements worklocation.WorkLocationRepository.
func (w *workLocationRepository) ListActive(ctx context.Context) ([]worklocation.WorkLocation, error) {
	return w.list(ctx, true)
}

func (w *workLocationRepository) list(ctx context.Context, activeOnly bool) ([]worklocation.WorkLocation, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, name, address, latitude, longitude, radius_meters, is_active, created_at, updated_at
		FROM work_locations
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query work locations: %w", err)
	}
	defer rows.Close()

	var locations []worklocation.WorkLocation
	for rows.Next() {
		var loc worklocation.WorkLocation
		err := rows.Scan(
			&loc.ID, &loc.Name, &loc.Address,
			&loc.Latitude, &loc.Longitude, &loc.RadiusMeters,
			&loc.IsActive, &loc.CreatedAt, &loc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read work location rows: %w", err)
	}

	return locations, nil
}

// Update implements worklocation.WorkLocationRepository.
func (w *workLocationRepository) Update(ctx context.Context, req worklocation.UpdateWorkLocationRequest) error {
	q := GetQuerier(ctx, w.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Address != nil {
		updates = append(updates, fmt.Sprintf("address = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}
	if req.Latitude != nil {
		updates = append(updates, fmt.Sprintf("latitude = $%d", argIdx))
		args = append(args, *req.Latitude)
		argIdx++
	}
	if req.Longitude != nil {
		updates = append(updates, fmt.Sprintf("longitude = $%d", argIdx))
		args = append(args, *req.Longitude)
		argIdx++
	}
	if req.RadiusMeters != nil {
		updates = append(updates, fmt.Sprintf("radius_meters = $%d", argIdx))
		args = append(args, *req.RadiusMeters)
		argIdx++
	}
	if req.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for work location update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID)

	query := "UPDATE work_locations SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return worklocation.ErrWorkLocationNotFound
		}
		return fmt.Errorf("failed to update work location: %w", err)
	}

	return nil
}

// Delete implements worklocation.WorkLocationRepository.
func (w *workLocationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, w.db)

	query := `DELETE FROM work_locations WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete work location: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return worklocation.ErrWorkLocationNotFound
	}

	return nil
}

func NewWorkLocationRepository(db *database.DB) worklocation.WorkLocationRepository {
	return &workLocationRepository{db: db}
}
