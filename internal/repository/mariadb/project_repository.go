package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type ProjectRepository struct {
	db *sql.DB
}

// compile-time check: *ProjectRepository must satisfy port.ProjectRepository
var _ port.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, title, description, category, cover_image, images, media, likes, views, comments, created_at, updated_at`

func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) error {
	log.Printf("creating database record for project #%s...", p.ID)

	const query = `
      INSERT INTO projects
        (id, title, description, category, cover_image, images, media, likes, views, comments, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.Category,
		p.CoverImage, p.Images, p.Media,
		p.Likes, p.Views, p.Comments,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *ProjectRepository) Update(ctx context.Context, p *model.Project) error {
	log.Printf("updating database record for project #%s...", p.ID)

	const query = `
      UPDATE projects
      SET
        title       = ?,
        description = ?,
        category    = ?,
        cover_image = ?,
        images      = ?,
        media       = ?,
        updated_at  = ?
      WHERE id = ?
    `
	// Affected rows stay at 0 when nothing changed, so existence is checked by
	// the caller through GetByID.
	_, err := r.db.ExecContext(ctx, query,
		p.Title, p.Description, p.Category,
		p.CoverImage, p.Images, p.Media,
		p.UpdatedAt,
		p.ID, // WHERE clause
	)
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	log.Printf("fetching project #%s from the database...", id)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) List(ctx context.Context, category model.Category) ([]*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	var args []interface{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log.Printf("deleting project #%s from the database...", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return port.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*model.Project, error) {
	var (
		p        model.Project
		rawMedia []byte
	)
	if err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Category,
		&p.CoverImage, &p.Images, &rawMedia,
		&p.Likes, &p.Views, &p.Comments,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if rawMedia != nil {
		var m model.Media
		if err := m.Scan(rawMedia); err != nil {
			return nil, fmt.Errorf("project #%s: %w", p.ID, err)
		}
		p.Media = &m
	}
	return &p, nil
}
