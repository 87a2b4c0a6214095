package usecases

import (
	"context"
	"mime/multipart"

	"jobdesk/internal/domain/jobcard"
	"jobdesk/internal/shared/logger"
)

type mockJobCardRepository struct {
	SaveFunc             func(ctx context.Context, card *jobcard.JobCard) error
	UpdateFunc           func(ctx context.Context, card *jobcard.JobCard) error
	DeleteFunc           func(ctx context.Context, cardID uint) error
	GetByIDFunc          func(ctx context.Context, cardID uint) (*jobcard.JobCard, error)
	GetByTicketNoFunc    func(ctx context.Context, ticketNo string) ([]*jobcard.JobCard, error)
	ListFunc             func(ctx context.Context, filter jobcard.JobCardFilter) ([]*jobcard.JobCard, int64, error)
	ExistsByTicketNoFunc func(ctx context.Context, ticketNo string) (bool, error)
}

func (m *mockJobCardRepository) Save(ctx context.Context, card *jobcard.JobCard) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, card)
	}
	return nil
}

func (m *mockJobCardRepository) Update(ctx context.Context, card *jobcard.JobCard) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, card)
	}
	return nil
}

func (m *mockJobCardRepository) Delete(ctx context.Context, cardID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, cardID)
	}
	return nil
}

func (m *mockJobCardRepository) GetByID(ctx context.Context, cardID uint) (*jobcard.JobCard, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, cardID)
	}
	return nil, nil
}

func (m *mockJobCardRepository) GetByTicketNo(ctx context.Context, ticketNo string) ([]*jobcard.JobCard, error) {
	if m.GetByTicketNoFunc != nil {
		return m.GetByTicketNoFunc(ctx, ticketNo)
	}
	return nil, nil
}

func (m *mockJobCardRepository) List(ctx context.Context, filter jobcard.JobCardFilter) ([]*jobcard.JobCard, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockJobCardRepository) ExistsByTicketNo(ctx context.Context, ticketNo string) (bool, error) {
	if m.ExistsByTicketNoFunc != nil {
		return m.ExistsByTicketNoFunc(ctx, ticketNo)
	}
	return false, nil
}

type mockAttachmentRepository struct {
	SaveFunc            func(ctx context.Context, attachment *jobcard.Attachment) error
	DeleteFunc          func(ctx context.Context, attachmentID uint) error
	GetByIDFunc         func(ctx context.Context, attachmentID uint) (*jobcard.Attachment, error)
	GetByJobCardIDFunc  func(ctx context.Context, jobCardID uint) ([]*jobcard.Attachment, error)
	GetByJobCardIDsFunc func(ctx context.Context, jobCardIDs []uint) ([]*jobcard.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, attachment *jobcard.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, attachment)
	}
	return nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, attachmentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, attachmentID)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*jobcard.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, attachmentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByJobCardID(ctx context.Context, jobCardID uint) ([]*jobcard.Attachment, error) {
	if m.GetByJobCardIDFunc != nil {
		return m.GetByJobCardIDFunc(ctx, jobCardID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByJobCardIDs(ctx context.Context, jobCardIDs []uint) ([]*jobcard.Attachment, error) {
	if m.GetByJobCardIDsFunc != nil {
		return m.GetByJobCardIDsFunc(ctx, jobCardIDs)
	}
	return nil, nil
}

type mockNumberAllocator struct {
	AllocateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberAllocator) Allocate(ctx context.Context) (string, error) {
	if m.AllocateFunc != nil {
		return m.AllocateFunc(ctx)
	}
	return "TK-TESTTEST", nil
}

type mockFileStore struct {
	SaveFunc   func(ctx context.Context, file *multipart.FileHeader) (*StoredFile, error)
	RemoveFunc func(ctx context.Context, path string) error

	removed []string
}

func (m *mockFileStore) Save(ctx context.Context, file *multipart.FileHeader) (*StoredFile, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, file)
	}
	return &StoredFile{
		Path:         "uploads/jobcards/" + file.Filename,
		OriginalName: file.Filename,
		ContentType:  "image/png",
		Size:         file.Size,
	}, nil
}

func (m *mockFileStore) Remove(ctx context.Context, path string) error {
	m.removed = append(m.removed, path)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, path)
	}
	return nil
}

// mockTxManager runs the callback directly; transactional behavior is
// covered by the repository integration tests.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	FatalFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) Fatal(msg string, args ...any) {
	if m.FatalFunc != nil {
		m.FatalFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
