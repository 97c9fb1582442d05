package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	"github.com/atlascompta/compta_backend/internal/models"
	"github.com/atlascompta/compta_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCabinetRepository struct {
	BaseRepository
}

// newPgxCabinetRepository creates a new repository for cabinet data.
func newPgxCabinetRepository(pool *pgxpool.Pool) portsrepo.CabinetRepositoryFacade {
	return &PgxCabinetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CabinetRepositoryFacade = (*PgxCabinetRepository)(nil)

// SaveCabinet inserts one cabinet. A duplicate name maps to ErrDuplicate.
func (r *PgxCabinetRepository) SaveCabinet(ctx context.Context, cabinet domain.Cabinet) error {
	m := mapping.ToModelCabinet(cabinet)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO cabinets (cabinet_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4);
	`, m.CabinetID, m.Name, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert cabinet "+m.Name, err)
	}
	return nil
}

// FindCabinetByID retrieves a cabinet by its ID.
func (r *PgxCabinetRepository) FindCabinetByID(ctx context.Context, cabinetID string) (*domain.Cabinet, error) {
	var m models.Cabinet
	err := r.Pool.QueryRow(ctx, `
		SELECT cabinet_id, name, created_at, updated_at FROM cabinets WHERE cabinet_id = $1;
	`, cabinetID).Scan(&m.CabinetID, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find cabinet by ID "+cabinetID, err)
	}
	cabinet := mapping.ToDomainCabinet(m)
	return &cabinet, nil
}

// ListCabinets retrieves all cabinets ordered by name.
func (r *PgxCabinetRepository) ListCabinets(ctx context.Context) ([]domain.Cabinet, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT cabinet_id, name, created_at, updated_at FROM cabinets ORDER BY name;
	`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cabinets", err)
	}
	defer rows.Close()

	cabinets := []domain.Cabinet{}
	for rows.Next() {
		var m models.Cabinet
		if err := rows.Scan(&m.CabinetID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cabinet row", err)
		}
		cabinets = append(cabinets, mapping.ToDomainCabinet(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cabinet rows", err)
	}
	return cabinets, nil
}

// DeleteCabinet removes the cabinet after detaching its companies. Both
// steps share one transaction. Returns ErrNotFound when no such cabinet
// exists.
func (r *PgxCabinetRepository) DeleteCabinet(ctx context.Context, cabinetID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		UPDATE societes SET cabinet_id = NULL, updated_at = $2 WHERE cabinet_id = $1;
	`, cabinetID, time.Now())
	if err != nil {
		return apperrors.NewAppError(500, "failed to detach societes of cabinet "+cabinetID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM cabinets WHERE cabinet_id = $1;`, cabinetID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete cabinet "+cabinetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

type PgxSocieteRepository struct {
	BaseRepository
}

// newPgxSocieteRepository creates a new repository for client company data.
func newPgxSocieteRepository(pool *pgxpool.Pool) portsrepo.SocieteRepositoryFacade {
	return &PgxSocieteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SocieteRepositoryFacade = (*PgxSocieteRepository)(nil)

const societeColumns = `societe_id, name, type_juridique, capital, gerant, rc, cabinet_id, created_at, updated_at`

// SaveSociete inserts one company.
func (r *PgxSocieteRepository) SaveSociete(ctx context.Context, societe domain.Societe) error {
	m := mapping.ToModelSociete(societe)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO societes (societe_id, name, type_juridique, capital, gerant, rc, cabinet_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, m.SocieteID, m.Name, m.TypeJuridique, m.Capital, m.Gerant, m.RC, m.CabinetID, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert societe "+m.Name, err)
	}
	return nil
}

// UpdateSociete rewrites a company's mutable fields. Returns ErrNotFound when
// no such company exists.
func (r *PgxSocieteRepository) UpdateSociete(ctx context.Context, societe domain.Societe) error {
	m := mapping.ToModelSociete(societe)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE societes
		SET name = $2, type_juridique = $3, capital = $4, gerant = $5, rc = $6, updated_at = $7
		WHERE societe_id = $1;
	`, m.SocieteID, m.Name, m.TypeJuridique, m.Capital, m.Gerant, m.RC, time.Now())
	if err != nil {
		return apperrors.NewAppError(500, "failed to update societe "+m.SocieteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSocieteByID retrieves a company by its ID, without associates.
func (r *PgxSocieteRepository) FindSocieteByID(ctx context.Context, societeID string) (*domain.Societe, error) {
	var m models.Societe
	query := `SELECT ` + societeColumns + ` FROM societes WHERE societe_id = $1;`
	err := r.Pool.QueryRow(ctx, query, societeID).Scan(
		&m.SocieteID, &m.Name, &m.TypeJuridique, &m.Capital, &m.Gerant, &m.RC, &m.CabinetID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find societe by ID "+societeID, err)
	}
	societe := mapping.ToDomainSociete(m)
	return &societe, nil
}

// ListSocietes returns companies of a cabinet ordered by name. An empty
// cabinetID lists across all cabinets.
func (r *PgxSocieteRepository) ListSocietes(ctx context.Context, cabinetID string) ([]domain.Societe, error) {
	query := `SELECT ` + societeColumns + ` FROM societes`
	args := []any{}
	if cabinetID != "" {
		query += ` WHERE cabinet_id = $1`
		args = append(args, cabinetID)
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query societes", err)
	}
	defer rows.Close()

	societes := []domain.Societe{}
	for rows.Next() {
		var m models.Societe
		if err := rows.Scan(
			&m.SocieteID, &m.Name, &m.TypeJuridique, &m.Capital, &m.Gerant, &m.RC, &m.CabinetID, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan societe row", err)
		}
		societes = append(societes, mapping.ToDomainSociete(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating societe rows", err)
	}
	return societes, nil
}

// CountByTypeJuridique aggregates companies per legal form, largest group
// first. Companies without a legal form show up under "N/A".
func (r *PgxSocieteRepository) CountByTypeJuridique(ctx context.Context, cabinetID string) ([]domain.TypeCount, error) {
	query := `
		SELECT COALESCE(type_juridique, 'N/A'), COUNT(*)
		FROM societes
	`
	args := []any{}
	if cabinetID != "" {
		query += ` WHERE cabinet_id = $1`
		args = append(args, cabinetID)
	}
	query += `
		GROUP BY COALESCE(type_juridique, 'N/A')
		ORDER BY COUNT(*) DESC;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to count societes by type", err)
	}
	defer rows.Close()

	counts := []domain.TypeCount{}
	for rows.Next() {
		var c domain.TypeCount
		if err := rows.Scan(&c.TypeJuridique, &c.Count); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan type count row", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating type count rows", err)
	}
	return counts, nil
}

// SaveAssociate inserts one shareholder.
func (r *PgxSocieteRepository) SaveAssociate(ctx context.Context, associate domain.Associate) error {
	m := mapping.ToModelAssociate(associate)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO associates (associate_id, societe_id, name, address, parts_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`, m.AssociateID, m.SocieteID, m.Name, m.Address, m.PartsCount, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert associate "+m.Name, err)
	}
	return nil
}

// FindAssociatesBySociete retrieves a company's shareholders ordered by name.
func (r *PgxSocieteRepository) FindAssociatesBySociete(ctx context.Context, societeID string) ([]domain.Associate, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT associate_id, societe_id, name, address, parts_count, created_at, updated_at
		FROM associates
		WHERE societe_id = $1
		ORDER BY name;
	`, societeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query associates for societe "+societeID, err)
	}
	defer rows.Close()

	associates := []models.Associate{}
	for rows.Next() {
		var m models.Associate
		if err := rows.Scan(
			&m.AssociateID, &m.SocieteID, &m.Name, &m.Address, &m.PartsCount, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan associate row for societe "+societeID, err)
		}
		associates = append(associates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating associate rows for societe "+societeID, err)
	}
	return mapping.ToDomainAssociateSlice(associates), nil
}

type PgxCessionRepository struct {
	BaseRepository
}

// newPgxCessionRepository creates a new repository for share transfer data.
func newPgxCessionRepository(pool *pgxpool.Pool) portsrepo.CessionRepositoryFacade {
	return &PgxCessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CessionRepositoryFacade = (*PgxCessionRepository)(nil)

const cessionColumns = `cession_id, societe_id, cession_date, cedant, cedant_address, cessionnaire, cessionnaire_address, parts_count, price, payment_mode, conditions, created_at, updated_at`

// SaveCessionWithDistribution records the cession and writes the updated
// associate part counts in one transaction. Passed associates without an ID
// are created; the rest get their parts_count rewritten. The transfer and
// the cap table it produces commit or roll back together.
func (r *PgxCessionRepository) SaveCessionWithDistribution(ctx context.Context, cession domain.Cession, associates []domain.Associate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelCession(cession)
	_, err = tx.Exec(ctx, `
		INSERT INTO cessions (cession_id, societe_id, cession_date, cedant, cedant_address, cessionnaire, cessionnaire_address, parts_count, price, payment_mode, conditions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`, m.CessionID, m.SocieteID, m.CessionDate, m.Cedant, m.CedantAddress, m.Cessionnaire, m.CessionnaireAddress,
		m.PartsCount, m.Price, m.PaymentMode, m.Conditions, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert cession for societe "+m.SocieteID, err)
	}

	now := time.Now()
	for i := range associates {
		ma := mapping.ToModelAssociate(associates[i])
		_, err = tx.Exec(ctx, `
			INSERT INTO associates (associate_id, societe_id, name, address, parts_count, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (associate_id) DO UPDATE
			SET parts_count = EXCLUDED.parts_count, updated_at = $7;
		`, ma.AssociateID, ma.SocieteID, ma.Name, ma.Address, ma.PartsCount, ma.CreatedAt, now)
		if err != nil {
			return apperrors.NewAppError(500, "failed to upsert associate "+ma.Name, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindCessionByID retrieves a cession by its ID.
func (r *PgxCessionRepository) FindCessionByID(ctx context.Context, cessionID string) (*domain.Cession, error) {
	var m models.Cession
	query := `SELECT ` + cessionColumns + ` FROM cessions WHERE cession_id = $1;`
	err := r.Pool.QueryRow(ctx, query, cessionID).Scan(
		&m.CessionID, &m.SocieteID, &m.CessionDate, &m.Cedant, &m.CedantAddress, &m.Cessionnaire, &m.CessionnaireAddress,
		&m.PartsCount, &m.Price, &m.PaymentMode, &m.Conditions, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find cession by ID "+cessionID, err)
	}
	cession := mapping.ToDomainCession(m)
	return &cession, nil
}

// ListCessionsBySociete returns a company's cessions, most recent first.
func (r *PgxCessionRepository) ListCessionsBySociete(ctx context.Context, societeID string) ([]domain.Cession, error) {
	query := `SELECT ` + cessionColumns + ` FROM cessions WHERE societe_id = $1 ORDER BY cession_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, societeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cessions for societe "+societeID, err)
	}
	defer rows.Close()

	cessions := []domain.Cession{}
	for rows.Next() {
		var m models.Cession
		if err := rows.Scan(
			&m.CessionID, &m.SocieteID, &m.CessionDate, &m.Cedant, &m.CedantAddress, &m.Cessionnaire, &m.CessionnaireAddress,
			&m.PartsCount, &m.Price, &m.PaymentMode, &m.Conditions, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cession row for societe "+societeID, err)
		}
		cessions = append(cessions, mapping.ToDomainCession(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cession rows for societe "+societeID, err)
	}
	return cessions, nil
}

// ListRecentCessionsByCabinet returns the latest cessions recorded across
// the cabinet's companies, newest first. An empty cabinetID spans all
// cabinets.
func (r *PgxCessionRepository) ListRecentCessionsByCabinet(ctx context.Context, cabinetID string, limit int) ([]domain.Cession, error) {
	query := `
		SELECT c.cession_id, c.societe_id, c.cession_date, c.cedant, c.cedant_address, c.cessionnaire, c.cessionnaire_address, c.parts_count, c.price, c.payment_mode, c.conditions, c.created_at, c.updated_at
		FROM cessions c
		JOIN societes s ON s.societe_id = c.societe_id
	`
	args := []any{limit}
	if cabinetID != "" {
		query += ` WHERE s.cabinet_id = $2`
		args = append(args, cabinetID)
	}
	query += ` ORDER BY c.created_at DESC LIMIT $1;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recent cessions", err)
	}
	defer rows.Close()

	cessions := []domain.Cession{}
	for rows.Next() {
		var m models.Cession
		if err := rows.Scan(
			&m.CessionID, &m.SocieteID, &m.CessionDate, &m.Cedant, &m.CedantAddress, &m.Cessionnaire, &m.CessionnaireAddress,
			&m.PartsCount, &m.Price, &m.PaymentMode, &m.Conditions, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan recent cession row", err)
		}
		cessions = append(cessions, mapping.ToDomainCession(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating recent cession rows", err)
	}
	return cessions, nil
}

type PgxDocTemplateRepository struct {
	BaseRepository
}

// newPgxDocTemplateRepository creates a new repository for document templates.
func newPgxDocTemplateRepository(pool *pgxpool.Pool) portsrepo.DocTemplateRepositoryFacade {
	return &PgxDocTemplateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocTemplateRepositoryFacade = (*PgxDocTemplateRepository)(nil)

// SaveDocTemplate inserts one template.
func (r *PgxDocTemplateRepository) SaveDocTemplate(ctx context.Context, tpl domain.DocTemplate) error {
	m := mapping.ToModelDocTemplate(tpl)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO doc_templates (template_id, title, doc_type, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, m.TemplateID, m.Title, m.DocType, m.Content, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert doc template "+m.Title, err)
	}
	return nil
}

// UpdateDocTemplate rewrites a template's title, type and content. Returns
// ErrNotFound when no such template exists.
func (r *PgxDocTemplateRepository) UpdateDocTemplate(ctx context.Context, tpl domain.DocTemplate) error {
	m := mapping.ToModelDocTemplate(tpl)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE doc_templates
		SET title = $2, doc_type = $3, content = $4, updated_at = $5
		WHERE template_id = $1;
	`, m.TemplateID, m.Title, m.DocType, m.Content, time.Now())
	if err != nil {
		return apperrors.NewAppError(500, "failed to update doc template "+m.TemplateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDocTemplate removes a template. Returns ErrNotFound when no such
// template exists.
func (r *PgxDocTemplateRepository) DeleteDocTemplate(ctx context.Context, templateID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM doc_templates WHERE template_id = $1;`, templateID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete doc template "+templateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindDocTemplateByID retrieves a template by its ID.
func (r *PgxDocTemplateRepository) FindDocTemplateByID(ctx context.Context, templateID string) (*domain.DocTemplate, error) {
	var m models.DocTemplate
	err := r.Pool.QueryRow(ctx, `
		SELECT template_id, title, doc_type, content, created_at, updated_at
		FROM doc_templates
		WHERE template_id = $1;
	`, templateID).Scan(&m.TemplateID, &m.Title, &m.DocType, &m.Content, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find doc template by ID "+templateID, err)
	}
	tpl := mapping.ToDomainDocTemplate(m)
	return &tpl, nil
}

// ListDocTemplates retrieves templates, optionally filtered by type, newest
// first.
func (r *PgxDocTemplateRepository) ListDocTemplates(ctx context.Context, docType string) ([]domain.DocTemplate, error) {
	query := `SELECT template_id, title, doc_type, content, created_at, updated_at FROM doc_templates`
	args := []any{}
	if docType != "" {
		query += ` WHERE doc_type = $1`
		args = append(args, docType)
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query doc templates", err)
	}
	defer rows.Close()

	templates := []domain.DocTemplate{}
	for rows.Next() {
		var m models.DocTemplate
		if err := rows.Scan(&m.TemplateID, &m.Title, &m.DocType, &m.Content, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan doc template row", err)
		}
		templates = append(templates, mapping.ToDomainDocTemplate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating doc template rows", err)
	}
	return templates, nil
}
