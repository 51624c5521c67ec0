package postgres

import (
	"context"
	"database/sql"
	"time"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/repository"

	"github.com/lib/pq"
)

type announcementRepository struct {
	db *sql.DB
}

func NewAnnouncementRepository(db *sql.DB) repository.AnnouncementRepository {
	return &announcementRepository{db: db}
}

const announcementColumns = `id, title, content, priority, audience, created_on, updated_on`

func scanAnnouncement(row interface{ Scan(...any) error }) (*domain.Announcement, error) {
	a := &domain.Announcement{}
	var created, updated time.Time
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Priority, &a.Audience, &created, &updated); err != nil {
		return nil, err
	}
	a.CreatedOn = created.Format(time.RFC3339)
	a.UpdatedOn = updated.Format(time.RFC3339)
	return a, nil
}

func (r *announcementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	query := `INSERT INTO announcements (title, content, priority, audience, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Title, a.Content, a.Priority, a.Audience, time.Now()).Scan(&a.ID)
}

func (r *announcementRepository) GetByID(ctx context.Context, id int32) (*domain.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE id = $1`
	return scanAnnouncement(r.db.QueryRowContext(ctx, query, id))
}

func (r *announcementRepository) Update(ctx context.Context, a *domain.Announcement) error {
	query := `UPDATE announcements SET title=$1, content=$2, priority=$3, audience=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, a.Title, a.Content, a.Priority, a.Audience, time.Now(), a.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *announcementRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *announcementRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Announcement, int32, error) {
	return r.query(ctx, ``, nil, page, pageSize)
}

func (r *announcementRepository) ListForAudiences(ctx context.Context, audiences []domain.AnnouncementAudience, page, pageSize int32) ([]domain.Announcement, int32, error) {
	strs := make([]string, len(audiences))
	for i, a := range audiences {
		strs[i] = string(a)
	}
	return r.query(ctx, ` WHERE audience = ANY($1)`, []interface{}{pq.Array(strs)}, page, pageSize)
}

func (r *announcementRepository) query(ctx context.Context, where string, args []interface{}, page, pageSize int32) ([]domain.Announcement, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM announcements`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + announcementColumns + ` FROM announcements` + where + orderAndPage("created_on DESC", len(args))
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var announcements []domain.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, 0, err
		}
		announcements = append(announcements, *a)
	}
	return announcements, count, rows.Err()
}
