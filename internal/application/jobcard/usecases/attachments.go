package usecases

import (
	"context"
	"mime/multipart"

	"jobdesk/internal/domain/jobcard"
	"jobdesk/internal/shared/logger"
)

// fileEffects defers backing-file changes until the transaction outcome
// is known. Files of deleted attachment records are unlinked only after
// commit; files written for new attachments are unlinked when the
// records roll back. Unlink failures are logged, never raised.
type fileEffects struct {
	removals []string
	created  []string
}

// commit unlinks the files of records deleted by a committed transaction.
func (e *fileEffects) commit(ctx context.Context, fileStore FileStore, log logger.Interface) {
	for _, path := range e.removals {
		if err := fileStore.Remove(ctx, path); err != nil {
			log.Warnw("failed to remove attachment file", "path", path, "error", err)
		}
	}
}

// rollback reclaims files written during a transaction that failed.
func (e *fileEffects) rollback(ctx context.Context, fileStore FileStore, log logger.Interface) {
	for _, path := range e.created {
		if err := fileStore.Remove(ctx, path); err != nil {
			log.Warnw("failed to remove orphaned upload", "path", path, "error", err)
		}
	}
}

// storeUploads writes the uploaded files for one row and records them.
// A failed upload is logged and skipped; photos never abort the record
// writes they accompany. Written paths are tracked on effects so a
// rollback can reclaim them.
func storeUploads(
	ctx context.Context,
	fileStore FileStore,
	attachmentRepo jobcard.AttachmentRepository,
	log logger.Interface,
	effects *fileEffects,
	jobCardID uint,
	uploads []*multipart.FileHeader,
) int {
	stored := 0
	for _, upload := range uploads {
		saved, err := fileStore.Save(ctx, upload)
		if err != nil {
			log.Warnw("failed to store uploaded file", "job_card_id", jobCardID, "file", upload.Filename, "error", err)
			continue
		}
		effects.created = append(effects.created, saved.Path)

		attachment, err := jobcard.NewAttachment(
			jobCardID,
			saved.Path,
			saved.OriginalName,
			saved.ContentType,
			saved.Size,
		)
		if err != nil {
			log.Warnw("failed to build attachment", "job_card_id", jobCardID, "file", upload.Filename, "error", err)
			continue
		}

		if err := attachmentRepo.Save(ctx, attachment); err != nil {
			log.Warnw("failed to record attachment", "job_card_id", jobCardID, "file", upload.Filename, "error", err)
			continue
		}
		stored++
	}
	return stored
}

// deleteAttachmentRecords deletes attachment records and queues their
// backing files for removal once the transaction commits.
func deleteAttachmentRecords(
	ctx context.Context,
	attachmentRepo jobcard.AttachmentRepository,
	effects *fileEffects,
	attachments []*jobcard.Attachment,
) error {
	for _, attachment := range attachments {
		if err := attachmentRepo.Delete(ctx, attachment.ID()); err != nil {
			return err
		}
		effects.removals = append(effects.removals, attachment.FilePath())
	}
	return nil
}
