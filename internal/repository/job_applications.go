package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sysu-ecnc-dev/job-tracker/backend/internal/domain"
)

func (r *Repository) CreateJobApplication(ja *domain.JobApplication) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO job_applications (user_id, job_title, company, application_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	args := []any{ja.UserID, ja.JobTitle, ja.Company, ja.ApplicationDate.Time, ja.Status, ja.Notes}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&ja.ID, &ja.CreatedAt, &ja.UpdatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetJobApplicationsByUserID(userID int64) ([]*domain.JobApplication, error) {
	query := `
		SELECT id, job_title, company, application_date, status, notes, created_at, updated_at
		FROM job_applications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jas := make([]*domain.JobApplication, 0)
	for rows.Next() {
		ja := &domain.JobApplication{UserID: userID}
		dst := []any{&ja.ID, &ja.JobTitle, &ja.Company, &ja.ApplicationDate.Time, &ja.Status, &ja.Notes, &ja.CreatedAt, &ja.UpdatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		jas = append(jas, ja)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jas, nil
}

// GetJobApplicationByIDAndUserID 只会返回属于 userID 的记录，
// 记录不存在和记录属于其他用户这两种情况都返回 sql.ErrNoRows，对调用方不作区分
func (r *Repository) GetJobApplicationByIDAndUserID(id int64, userID int64) (*domain.JobApplication, error) {
	query := `
		SELECT job_title, company, application_date, status, notes, created_at, updated_at
		FROM job_applications
		WHERE id = $1 AND user_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	ja := &domain.JobApplication{
		ID:     id,
		UserID: userID,
	}

	dst := []any{&ja.JobTitle, &ja.Company, &ja.ApplicationDate.Time, &ja.Status, &ja.Notes, &ja.CreatedAt, &ja.UpdatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id, userID).Scan(dst...); err != nil {
		return nil, err
	}

	return ja, nil
}

func (r *Repository) UpdateJobApplication(ja *domain.JobApplication) error {
	query := `
		UPDATE job_applications
		SET
			job_title = $1,
			company = $2,
			application_date = $3,
			status = $4,
			notes = $5,
			updated_at = now()
		WHERE id = $6 AND user_id = $7
		RETURNING created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{ja.JobTitle, ja.Company, ja.ApplicationDate.Time, ja.Status, ja.Notes, ja.ID, ja.UserID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&ja.CreatedAt, &ja.UpdatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteJobApplication(id int64, userID int64) error {
	query := `
		DELETE FROM job_applications WHERE id = $1 AND user_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
