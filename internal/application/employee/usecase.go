// Package employee implementa los casos de uso CRUD del directorio de
// empleados. Cada operación es un read-modify-write simple sobre el record
// store: sin transacciones ni reintentos; la unicidad de email se verifica
// con un scan completo en el momento de escribir (last-write-wins bajo
// escritores concurrentes, igual que el sistema original).
package employee

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

// UseCase casos de uso CRUD, bulk update, foto y export de empleados.
type UseCase struct {
	repo      repository.EmployeeRepository
	auditRepo repository.AuditRepository
	photos    PhotoStorage
	roster    RosterPDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.EmployeeRepository, auditRepo repository.AuditRepository, photos PhotoStorage, roster RosterPDFGenerator) *UseCase {
	return &UseCase{repo: repo, auditRepo: auditRepo, photos: photos, roster: roster}
}

// List devuelve los empleados más nuevos primero (createdAt descendente),
// aplicando los filtros opcionales de la query.
func (uc *UseCase) List(ctx context.Context, q dto.ListEmployeesQuery) ([]*entity.Employee, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := list[:0]
	for _, emp := range list {
		if matchesQuery(emp, q) {
			filtered = append(filtered, emp)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

func matchesQuery(emp *entity.Employee, q dto.ListEmployeesQuery) bool {
	if q.Status != "" && emp.Status != q.Status {
		return false
	}
	if q.Department != "" && emp.Department != q.Department {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		haystack := strings.ToLower(emp.FullName() + " " + emp.Email + " " + emp.Position)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

// GetByID obtiene un empleado; ErrNotFound si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	return emp, nil
}

// Create valida la entrada, verifica la unicidad del email con un scan
// completo y persiste el registro más su entrada de auditoría.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateEmployeeRequest) (*entity.Employee, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Position == "" || in.Department == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Salary < 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	taken, err := uc.emailTaken(ctx, in.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	emp := &entity.Employee{
		ID:               uuid.New().String(),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            in.Phone,
		Position:         in.Position,
		Department:       in.Department,
		Salary:           in.Salary,
		StartDate:        in.StartDate,
		Status:           status,
		Address:          in.Address,
		EmergencyContact: in.EmergencyContact,
		EmergencyPhone:   in.EmergencyPhone,
		ProfilePicture:   nil,
		CreatedAt:        now,
		UpdatedAt:        now,
		CreatedBy:        userID,
	}
	if err := uc.repo.Save(ctx, emp); err != nil {
		return nil, err
	}
	if err := uc.audit(ctx, entity.ActionCreateEmployee, emp.ID, userID, entity.AuditDetails{EmployeeName: emp.FullName()}); err != nil {
		return nil, err
	}
	return emp, nil
}

// Update aplica un merge superficial de los campos presentes sobre el
// registro existente. Si el email cambia se re-verifica la unicidad
// excluyendo al propio empleado; actualizarlo a su propio email es válido.
func (uc *UseCase) Update(ctx context.Context, id, userID string, in dto.UpdateEmployeeRequest) (*entity.Employee, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}

	if in.Email != nil {
		taken, err := uc.emailTaken(ctx, *in.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	if err := applyUpdates(emp, in); err != nil {
		return nil, err
	}
	emp.UpdatedAt = time.Now()
	emp.UpdatedBy = userID

	if err := uc.repo.Save(ctx, emp); err != nil {
		return nil, err
	}
	details := entity.AuditDetails{EmployeeName: emp.FullName(), Changes: in.ChangedFields()}
	if err := uc.audit(ctx, entity.ActionUpdateEmployee, emp.ID, userID, details); err != nil {
		return nil, err
	}
	return emp, nil
}

// Delete elimina el registro; ErrNotFound si no existe.
func (uc *UseCase) Delete(ctx context.Context, id, userID string) error {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if emp == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	return uc.audit(ctx, entity.ActionDeleteEmployee, id, userID, entity.AuditDetails{EmployeeName: emp.FullName()})
}

// BulkUpdate aplica el mismo merge parcial a cada ID de forma independiente.
// Los fallos por ID (inexistente, email en conflicto, valor inválido) se
// recogen en la lista de resultados en vez de abortar el lote; los errores
// de infraestructura sí abortan. TotalProcessed == len(ids) siempre.
func (uc *UseCase) BulkUpdate(ctx context.Context, userID string, in dto.BulkUpdateRequest) (*dto.BulkUpdateResponse, error) {
	results := make([]dto.BulkUpdateResult, 0, len(in.EmployeeIDs))
	for _, id := range in.EmployeeIDs {
		emp, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if emp == nil {
			results = append(results, dto.BulkUpdateResult{ID: id, Success: false, Error: "Employee not found"})
			continue
		}
		if in.Updates.Email != nil {
			taken, err := uc.emailTaken(ctx, *in.Updates.Email, id)
			if err != nil {
				return nil, err
			}
			if taken {
				results = append(results, dto.BulkUpdateResult{ID: id, Success: false, Error: domain.ErrEmailAlreadyExists.Error()})
				continue
			}
		}
		if err := applyUpdates(emp, in.Updates); err != nil {
			results = append(results, dto.BulkUpdateResult{ID: id, Success: false, Error: err.Error()})
			continue
		}
		emp.UpdatedAt = time.Now()
		emp.UpdatedBy = userID
		if err := uc.repo.Save(ctx, emp); err != nil {
			return nil, err
		}
		details := entity.AuditDetails{EmployeeName: emp.FullName(), Changes: in.Updates.ChangedFields()}
		if err := uc.audit(ctx, entity.ActionBulkUpdateEmployee, id, userID, details); err != nil {
			return nil, err
		}
		results = append(results, dto.BulkUpdateResult{ID: id, Success: true})
	}
	return &dto.BulkUpdateResponse{Results: results, TotalProcessed: len(results)}, nil
}

// emailTaken reporta si otro empleado (distinto de excludeID) ya usa el email,
// comparando case-insensitive sobre todos los registros.
func (uc *UseCase) emailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return false, err
	}
	for _, emp := range list {
		if emp.ID != excludeID && strings.EqualFold(emp.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// applyUpdates hace el merge superficial validando los valores presentes.
func applyUpdates(emp *entity.Employee, in dto.UpdateEmployeeRequest) error {
	if in.Email != nil && *in.Email == "" {
		return domain.ErrInvalidInput
	}
	if in.Salary != nil && *in.Salary < 0 {
		return domain.ErrInvalidInput
	}
	if in.Status != nil && !entity.ValidStatus(*in.Status) {
		return domain.ErrInvalidInput
	}
	if in.FirstName != nil {
		emp.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		emp.LastName = *in.LastName
	}
	if in.Email != nil {
		emp.Email = *in.Email
	}
	if in.Phone != nil {
		emp.Phone = *in.Phone
	}
	if in.Position != nil {
		emp.Position = *in.Position
	}
	if in.Department != nil {
		emp.Department = *in.Department
	}
	if in.Salary != nil {
		emp.Salary = *in.Salary
	}
	if in.StartDate != nil {
		emp.StartDate = *in.StartDate
	}
	if in.Status != nil {
		emp.Status = *in.Status
	}
	if in.Address != nil {
		emp.Address = *in.Address
	}
	if in.EmergencyContact != nil {
		emp.EmergencyContact = *in.EmergencyContact
	}
	if in.EmergencyPhone != nil {
		emp.EmergencyPhone = *in.EmergencyPhone
	}
	return nil
}

// audit agrega una entrada a la bitácora. La escritura del empleado y la de
// auditoría no son atómicas entre sí (pueden quedar parciales ante un fallo).
func (uc *UseCase) audit(ctx context.Context, action, entityID, userID string, details entity.AuditDetails) error {
	return uc.auditRepo.Append(ctx, &entity.AuditEntry{
		ID:         uuid.New().String(),
		Action:     action,
		EntityType: "employee",
		EntityID:   entityID,
		UserID:     userID,
		Timestamp:  time.Now(),
		Details:    details,
	})
}
