package employee

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// Límites de la foto de perfil.
const (
	maxPhotoBytes = 5 * 1024 * 1024 // 5 MiB
	// Política de la app: URL firmada de 1 año. El backend de storage la
	// recorta al máximo que permita su protocolo de firma.
	photoURLExpiry = 365 * 24 * time.Hour
)

// Tipos MIME permitidos y su extensión por defecto.
var allowedPhotoTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// PhotoUpload describe el archivo recibido en el multipart.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadPhoto valida tipo y tamaño, sube el binario al object storage con el
// nombre <employeeId>-<epochMillis>.<ext> y guarda en el registro la URL
// firmada y el nombre del objeto. Un fallo de validación no toca ni el
// storage ni el registro. La foto anterior, si existía, se elimina best-effort.
func (uc *UseCase) UploadPhoto(ctx context.Context, employeeID, userID string, upload PhotoUpload) (*dto.PhotoUploadResponse, error) {
	emp, err := uc.repo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}

	ext, ok := allowedPhotoTypes[upload.ContentType]
	if !ok {
		return nil, domain.ErrInvalidFileType
	}
	if upload.Size > maxPhotoBytes {
		return nil, domain.ErrFileTooLarge
	}
	if e := strings.TrimPrefix(strings.ToLower(filepath.Ext(upload.FileName)), "."); e != "" {
		ext = e
	}

	objectName := fmt.Sprintf("%s-%d.%s", employeeID, time.Now().UnixMilli(), ext)
	if err := uc.photos.Upload(ctx, objectName, upload.Reader, upload.Size, upload.ContentType); err != nil {
		return nil, err
	}

	signedURL, err := uc.photos.SignedURL(ctx, objectName, photoURLExpiry)
	if err != nil {
		return nil, err
	}

	previous := emp.ProfilePictureFileName
	emp.ProfilePicture = &signedURL
	emp.ProfilePictureFileName = objectName
	emp.UpdatedAt = time.Now()
	emp.UpdatedBy = userID
	if err := uc.repo.Save(ctx, emp); err != nil {
		return nil, err
	}

	if previous != "" && previous != objectName {
		// Best-effort: un fallo al limpiar la foto anterior no invalida la subida.
		_ = uc.photos.Remove(ctx, previous)
	}

	details := entity.AuditDetails{EmployeeName: emp.FullName(), Changes: []string{"profilePicture"}}
	if err := uc.audit(ctx, entity.ActionUploadPhoto, employeeID, userID, details); err != nil {
		return nil, err
	}
	return &dto.PhotoUploadResponse{Message: "Photo uploaded successfully", ProfilePicture: signedURL}, nil
}
