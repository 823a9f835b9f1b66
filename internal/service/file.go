package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"brokerdesk/internal/model"
	"brokerdesk/internal/storage"
	"brokerdesk/internal/store"
)

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("file not found")
	ErrReaderNil       = errors.New("reader is nil")
	ErrNoContent       = errors.New("file has no stored content")
	ErrStorageDisabled = errors.New("object storage is not configured")
)

const objectPrefix = "files"

var tracer = otel.Tracer("brokerdesk/internal/service")

// FileService manages uploaded files: content in object storage, the record
// in the store.
type FileService interface {
	// Upload streams the content to object storage, then registers the file.
	// The object key is a fresh UUID plus the original extension.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, attrs model.Attributes) (*model.File, error)

	// Register records a file without content.
	Register(ctx context.Context, in model.FileInput) (*model.File, error)

	// Open streams a file's content.
	Open(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error)

	// DownloadURL returns a presigned URL for a file's content.
	DownloadURL(ctx context.Context, id string) (string, error)

	// Delete removes the content, then the record. Unknown ids are ignored.
	Delete(ctx context.Context, id string) error
}

type fileService struct {
	objects   storage.Storage
	state     *store.Store
	urlExpiry time.Duration
}

// NewFileService constructs a FileService. objects may be nil, in which case
// only metadata-only files are supported.
func NewFileService(objects storage.Storage, state *store.Store, urlExpiry time.Duration) FileService {
	if urlExpiry <= 0 {
		urlExpiry = 15 * time.Minute
	}
	return &fileService{objects: objects, state: state, urlExpiry: urlExpiry}
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal), trace.WithAttributes(attrs...))
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func (s *fileService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, attrs model.Attributes) (*model.File, error) {
	ctx, span := startSpan(ctx, "FileService.Upload", attribute.String("file.name", originalFilename))
	defer span.End()

	if r == nil {
		return nil, fail(span, ErrReaderNil)
	}
	if s.objects == nil {
		return nil, fail(span, ErrStorageDisabled)
	}

	key := filepath.ToSlash(filepath.Join(objectPrefix, uuid.New().String()+filepath.Ext(originalFilename)))
	info, err := s.objects.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fail(span, fmt.Errorf("upload to storage: %w", err))
	}

	f := s.state.AddFile(model.FileInput{
		Name:        originalFilename,
		ContentType: contentType,
		Size:        info.Size,
		StorageKey:  info.Key,
		Attributes:  attrs,
	})
	span.SetAttributes(attribute.String("file.id", f.ID))
	return &f, nil
}

func (s *fileService) Register(ctx context.Context, in model.FileInput) (*model.File, error) {
	_, span := startSpan(ctx, "FileService.Register", attribute.String("file.name", in.Name))
	defer span.End()

	// Keys are only ever assigned by Upload.
	in.StorageKey = ""
	f := s.state.AddFile(in)
	span.SetAttributes(attribute.String("file.id", f.ID))
	return &f, nil
}

func (s *fileService) lookup(id string) (model.File, error) {
	if id == "" {
		return model.File{}, ErrIDRequired
	}
	f, ok := s.state.File(id)
	if !ok {
		return model.File{}, ErrNotFound
	}
	if !f.HasContent() {
		return model.File{}, ErrNoContent
	}
	if s.objects == nil {
		return model.File{}, ErrStorageDisabled
	}
	return f, nil
}

func (s *fileService) Open(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error) {
	ctx, span := startSpan(ctx, "FileService.Open", attribute.String("file.id", id))
	defer span.End()

	f, err := s.lookup(id)
	if err != nil {
		return nil, storage.ObjectInfo{}, fail(span, err)
	}
	rc, info, err := s.objects.Get(ctx, f.StorageKey)
	if err != nil {
		return nil, storage.ObjectInfo{}, fail(span, fmt.Errorf("get from storage: %w", err))
	}
	return rc, info, nil
}

func (s *fileService) DownloadURL(ctx context.Context, id string) (string, error) {
	ctx, span := startSpan(ctx, "FileService.DownloadURL", attribute.String("file.id", id))
	defer span.End()

	f, err := s.lookup(id)
	if err != nil {
		return "", fail(span, err)
	}
	u, err := s.objects.PresignGet(ctx, f.StorageKey, s.urlExpiry)
	if err != nil {
		return "", fail(span, fmt.Errorf("presign: %w", err))
	}
	return u, nil
}

func (s *fileService) Delete(ctx context.Context, id string) error {
	ctx, span := startSpan(ctx, "FileService.Delete", attribute.String("file.id", id))
	defer span.End()

	if id == "" {
		return fail(span, ErrIDRequired)
	}
	f, ok := s.state.File(id)
	if !ok {
		return nil
	}
	// Remove content first; on failure the record stays so the object is not orphaned.
	if f.HasContent() {
		if s.objects == nil {
			return fail(span, ErrStorageDisabled)
		}
		if err := s.objects.Delete(ctx, f.StorageKey); err != nil {
			return fail(span, fmt.Errorf("delete storage: %w", err))
		}
	}
	s.state.DeleteFile(id)
	return nil
}
