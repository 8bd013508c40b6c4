package documents

import (
	"context"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/pkg/pagination"
	"github.com/lasville/giustizia/pkg/storage"
)

// AttachmentUpload carries the file data for an act attachment.
// PageCount is optional and may be extracted by the caller via pdfcpu.
type AttachmentUpload struct {
	Data        []byte
	Filename    string
	ContentType string
	PageCount   *int
}

// System defines the public contract for act registry operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Document], error)

	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand, author Author) (*Document, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// AttachFile uploads a blob and records it on the act, replacing
	// any previous attachment.
	AttachFile(ctx context.Context, id uuid.UUID, upload AttachmentUpload) (*Document, error)
	// OpenAttachment streams the act's attachment. The caller closes
	// the result body.
	OpenAttachment(ctx context.Context, id uuid.UUID) (*Document, *storage.DownloadResult, error)
	// RemoveAttachment clears the attachment columns and deletes the blob.
	RemoveAttachment(ctx context.Context, id uuid.UUID) error

	// ListForCase returns the acts in a case file: those referencing
	// the case display id, plus the originating act when given.
	ListForCase(ctx context.Context, displayID string, originID *uuid.UUID) ([]Document, error)
	// ListByCategories returns every act in the given categories,
	// newest first.
	ListByCategories(ctx context.Context, categories []string) ([]Document, error)
}
