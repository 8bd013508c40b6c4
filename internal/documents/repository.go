package documents

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/realtime"
	"github.com/lasville/giustizia/pkg/pagination"
	"github.com/lasville/giustizia/pkg/query"
	"github.com/lasville/giustizia/pkg/repository"
	"github.com/lasville/giustizia/pkg/storage"
)

const documentColumns = `id, display_id, title, category, description, procedimento_id,
	citizen_a, citizen_b, created_by_id, created_by_name,
	attachment_key, attachment_type, attachment_size, page_count,
	created_at, updated_at`

type repo struct {
	db         *sql.DB
	storage    storage.System
	feed       realtime.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an act repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	feed realtime.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		feed:       feed,
		logger:     logger.With("system", "documents"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "CitizenA", "CitizenB")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count acts: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	docs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query acts: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Document, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &d, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand, author Author) (*Document, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		INSERT INTO documents(id, title, category, description, procedimento_id, citizen_a, citizen_b, created_by_id, created_by_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, documentColumns)

	args := []any{
		uuid.New(),
		cmd.Title,
		cmd.Category,
		nullable(cmd.Description),
		nullable(cmd.ProcedimentoID),
		nullable(cmd.CitizenA),
		nullable(cmd.CitizenB),
		author.ID,
		author.Name,
	}

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.publish(realtime.ActionInsert, d.ID)
	r.logger.Info("act registered", "id", d.ID, "display_id", d.DisplayID, "category", d.Category)
	return &d, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Document, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		UPDATE documents
		SET title = $1, category = $2, description = $3, procedimento_id = $4,
			citizen_a = $5, citizen_b = $6, updated_at = now()
		WHERE id = $7
		RETURNING %s`, documentColumns)

	args := []any{
		cmd.Title,
		cmd.Category,
		nullable(cmd.Description),
		nullable(cmd.ProcedimentoID),
		nullable(cmd.CitizenA),
		nullable(cmd.CitizenB),
		id,
	}

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.publish(realtime.ActionUpdate, d.ID)
	r.logger.Info("act updated", "id", d.ID, "display_id", d.DisplayID)
	return &d, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	if err := repository.ExecExpectOne(
		ctx, r.db,
		"DELETE FROM documents WHERE id = $1",
		id,
	); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if doc.AttachmentKey != nil {
		if delErr := r.storage.Delete(ctx, *doc.AttachmentKey); delErr != nil {
			r.logger.Warn(
				"blob delete failed after DB delete",
				"key", *doc.AttachmentKey,
				"error", delErr,
			)
		}
	}

	r.publish(realtime.ActionDelete, id)
	r.logger.Info("act deleted", "id", id)
	return nil
}

func (r *repo) AttachFile(ctx context.Context, id uuid.UUID, upload AttachmentUpload) (*Document, error) {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	key := buildStorageKey(id, sanitizeFilename(upload.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(upload.Data), upload.ContentType); err != nil {
		return nil, fmt.Errorf("upload attachment blob: %w", err)
	}

	q := fmt.Sprintf(`
		UPDATE documents
		SET attachment_key = $1, attachment_type = $2, attachment_size = $3,
			page_count = $4, updated_at = now()
		WHERE id = $5
		RETURNING %s`, documentColumns)

	args := []any{
		key,
		upload.ContentType,
		int64(len(upload.Data)),
		upload.PageCount,
		id,
	}

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	// The replaced blob is orphaned once the new key is recorded.
	if doc.AttachmentKey != nil && *doc.AttachmentKey != key {
		if delErr := r.storage.Delete(ctx, *doc.AttachmentKey); delErr != nil {
			r.logger.Warn("stale blob delete failed", "key", *doc.AttachmentKey, "error", delErr)
		}
	}

	r.publish(realtime.ActionUpdate, d.ID)
	r.logger.Info("attachment stored", "id", d.ID, "key", key, "size", len(upload.Data))
	return &d, nil
}

func (r *repo) OpenAttachment(ctx context.Context, id uuid.UUID) (*Document, *storage.DownloadResult, error) {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if doc.AttachmentKey == nil {
		return nil, nil, ErrNoAttachment
	}

	result, err := r.storage.Download(ctx, *doc.AttachmentKey)
	if err != nil {
		return nil, nil, fmt.Errorf("download attachment %s: %w", *doc.AttachmentKey, err)
	}

	return doc, result, nil
}

func (r *repo) RemoveAttachment(ctx context.Context, id uuid.UUID) error {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	if doc.AttachmentKey == nil {
		return ErrNoAttachment
	}

	if err := repository.ExecExpectOne(
		ctx, r.db,
		`UPDATE documents
		SET attachment_key = NULL, attachment_type = NULL, attachment_size = NULL,
			page_count = NULL, updated_at = now()
		WHERE id = $1`,
		id,
	); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if delErr := r.storage.Delete(ctx, *doc.AttachmentKey); delErr != nil {
		r.logger.Warn(
			"blob delete failed after DB update",
			"key", *doc.AttachmentKey,
			"error", delErr,
		)
	}

	r.publish(realtime.ActionUpdate, id)
	r.logger.Info("attachment removed", "id", id)
	return nil
}

func (r *repo) ListForCase(ctx context.Context, displayID string, originID *uuid.UUID) ([]Document, error) {
	qb := query.NewBuilder(projection, query.SortField{Field: "CreatedAt"})

	if originID != nil {
		qb.WhereRaw("(d.procedimento_id = $%d OR d.id = $%d)", displayID, *originID)
	} else {
		qb.WhereEquals("ProcedimentoID", displayID)
	}

	q, args := qb.Build()
	docs, err := repository.QueryMany(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query case file: %w", err)
	}
	return docs, nil
}

func (r *repo) ListByCategories(ctx context.Context, categories []string) ([]Document, error) {
	if len(categories) == 0 {
		return []Document{}, nil
	}

	values := make([]any, len(categories))
	for i, c := range categories {
		values[i] = c
	}

	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereIn("Category", values).
		Build()

	docs, err := repository.QueryMany(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query acts by category: %w", err)
	}
	return docs, nil
}

func (r *repo) publish(action realtime.Action, id uuid.UUID) {
	r.feed.Publish(realtime.Event{
		Table:  realtime.TableDocuments,
		Action: action,
		ID:     id.String(),
	})
}

func buildStorageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("documents/%s/%s", id, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "allegato"
	}
	return url.PathEscape(name)
}
