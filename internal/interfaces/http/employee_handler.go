package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/employee"
	"github.com/jhoicas/Empleados-api/internal/domain"
)

// EmployeeHandler maneja las peticiones HTTP del directorio (protegido).
type EmployeeHandler struct {
	uc *employee.UseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *employee.UseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados (más nuevos primero)
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        q           query  string  false  "Búsqueda por nombre, email o cargo"
// @Param        department  query  string  false  "Filtro por departamento"
// @Param        status      query  string  false  "active | inactive"
// @Success      200  {object}  dto.EmployeeListResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	q := dto.ListEmployeesQuery{
		Search:     c.Query("q"),
		Department: c.Query("department"),
		Status:     c.Query("status"),
	}
	list, err := h.uc.List(c.Context(), q)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.EmployeeListResponse{Employees: list})
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	emp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		return internalError(c, err)
	}
	return c.JSON(dto.EmployeeResponse{Employee: emp})
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	emp, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "firstName, lastName, email, position y department son requeridos"})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "ya existe un empleado con ese email"})
		default:
			return internalError(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.EmployeeResponse{Employee: emp})
}

// Update godoc
// @Summary      Actualizar empleado (merge parcial)
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del empleado"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	emp, err := h.uc.Update(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c)
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "ya existe un empleado con ese email"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valor inválido en los campos a actualizar"})
		default:
			return internalError(c, err)
		}
	}
	return c.JSON(dto.EmployeeResponse{Employee: emp})
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del empleado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Employee deleted successfully"})
}

// BulkUpdate godoc
// @Summary      Actualización masiva (merge parcial por ID, fallos por ID sin abortar)
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUpdateRequest  true  "IDs y campos a actualizar"
// @Success      200   {object}  dto.BulkUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees/bulk-update [post]
func (h *EmployeeHandler) BulkUpdate(c *fiber.Ctx) error {
	var in dto.BulkUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.EmployeeIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employeeIds es requerido y no puede estar vacío"})
	}
	out, err := h.uc.BulkUpdate(c.Context(), GetUserID(c), in)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// UploadPhoto godoc
// @Summary      Subir foto de perfil (multipart, campo "photo")
// @Tags         employees
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "ID del empleado"
// @Param        photo  formData  file    true  "JPEG, PNG, GIF o WebP, máx 5 MiB"
// @Success      200    {object}  dto.PhotoUploadResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/photo [post]
func (h *EmployeeHandler) UploadPhoto(c *fiber.Ctx) error {
	header, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "archivo 'photo' requerido"})
	}
	file, err := header.Open()
	if err != nil {
		return internalError(c, err)
	}
	defer file.Close()

	out, err := h.uc.UploadPhoto(c.Context(), c.Params("id"), GetUserID(c), employee.PhotoUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c)
		case errors.Is(err, domain.ErrInvalidFileType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE_TYPE", Message: "solo se permiten JPEG, PNG, GIF y WebP"})
		case errors.Is(err, domain.ErrFileTooLarge):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera el máximo de 5 MB"})
		default:
			return internalError(c, err)
		}
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el directorio (csv, json o pdf)
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        format  query  string  false  "csv | json | pdf"  default(csv)
// @Success      200
// @Router       /api/employees/export [get]
func (h *EmployeeHandler) Export(c *fiber.Ctx) error {
	format := c.Query("format", "csv")
	switch format {
	case "csv":
		content, err := h.uc.ExportCSV(c.Context())
		if err != nil {
			return internalError(c, err)
		}
		filename := fmt.Sprintf("employees-%s.csv", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return c.SendString(content)
	case "pdf":
		doc, err := h.uc.ExportPDF(c.Context())
		if err != nil {
			return internalError(c, err)
		}
		filename := fmt.Sprintf("employees-%s.pdf", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return c.Send(doc)
	default:
		// Cualquier otro formato cae al export JSON crudo.
		list, err := h.uc.ExportJSON(c.Context())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(dto.EmployeeListResponse{Employees: list})
	}
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
}

// internalError responde 500 con mensaje genérico; el detalle solo va al log del servidor.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}
