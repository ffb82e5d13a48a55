package employee

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// PhotoStorage es el puerto del object storage de fotos.
// Lo implementa infrastructure/storage (MinIO); los tests usan un fake.
type PhotoStorage interface {
	Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error
	SignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, objectName string) error
}

// RosterPDFGenerator genera el PDF del directorio para export?format=pdf.
// Lo implementa infrastructure/pdf (Maroto).
type RosterPDFGenerator interface {
	GenerateRoster(ctx context.Context, employees []*entity.Employee, generatedAt time.Time) ([]byte, error)
}
