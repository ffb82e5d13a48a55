// Package storage implementa el object storage de fotos de empleados
// sobre MinIO (o cualquier servicio compatible S3).
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/jhoicas/Empleados-api/pkg/config"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// maxPresignExpiry es el máximo que permite el presign V4 de S3 (7 días).
// La política de la aplicación pide URLs de 1 año; se recorta a este tope.
const maxPresignExpiry = 7 * 24 * time.Hour

// MinioStorage almacena fotos en un bucket privado y emite URLs firmadas.
type MinioStorage struct {
	client *minio.Client
	bucket string
	log    *logger.Logger
}

// Connect inicializa el cliente MinIO y garantiza que el bucket exista.
func Connect(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("inicializar cliente minio: %w", err)
	}

	s := &MinioStorage{client: client, bucket: cfg.Bucket, log: log.Component("storage")}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	s.log.Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.Bucket).Msg("object storage listo")
	return s, nil
}

func (s *MinioStorage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("verificar bucket %q: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("crear bucket %q: %w", s.bucket, err)
		}
		s.log.Info().Str("bucket", s.bucket).Msg("bucket creado")
	}
	return nil
}

// Upload sube el objeto con el content type dado. El nombre lo decide el caso de uso
// (<employeeId>-<epochMillis>.<ext>).
func (s *MinioStorage) Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("subir objeto %q: %w", objectName, err)
	}
	return nil
}

// SignedURL emite una URL firmada de lectura. La expiración solicitada se recorta
// al máximo del protocolo si lo excede.
func (s *MinioStorage) SignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	if expiry > maxPresignExpiry {
		expiry = maxPresignExpiry
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("firmar URL de %q: %w", objectName, err)
	}
	return u.String(), nil
}

// Remove elimina un objeto (se usa para limpiar la foto anterior al reemplazarla).
func (s *MinioStorage) Remove(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("eliminar objeto %q: %w", objectName, err)
	}
	return nil
}
