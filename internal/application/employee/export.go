package employee

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// csvHeader orden fijo de columnas del export.
var csvHeader = []string{
	"ID", "First Name", "Last Name", "Email", "Phone",
	"Position", "Department", "Salary", "Start Date",
	"Status", "Address", "Emergency Contact", "Emergency Phone",
}

// ExportCSV genera el CSV del directorio completo: fila de encabezado más una
// fila por empleado con TODOS los campos entre comillas dobles (los numéricos
// ausentes salen como 0, los de texto como cadena vacía). Se arma a mano
// porque encoding/csv solo entrecomilla cuando es necesario.
func (uc *UseCase) ExportCSV(ctx context.Context) (string, error) {
	list, err := uc.List(ctx, dto.ListEmployeesQuery{})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	for _, emp := range list {
		fields := []string{
			emp.ID,
			emp.FirstName,
			emp.LastName,
			emp.Email,
			emp.Phone,
			emp.Position,
			emp.Department,
			strconv.Itoa(emp.Salary),
			emp.StartDate,
			emp.Status,
			emp.Address,
			emp.EmergencyContact,
			emp.EmergencyPhone,
		}
		b.WriteString("\n")
		for i, f := range fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(quoteCSV(f))
		}
	}
	return b.String(), nil
}

// quoteCSV entrecomilla siempre y escapa comillas internas duplicándolas.
func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportJSON devuelve todos los empleados para el export crudo.
func (uc *UseCase) ExportJSON(ctx context.Context) ([]*entity.Employee, error) {
	return uc.List(ctx, dto.ListEmployeesQuery{})
}

// ExportPDF genera el roster en PDF vía el generador Maroto.
func (uc *UseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	list, err := uc.List(ctx, dto.ListEmployeesQuery{})
	if err != nil {
		return nil, err
	}
	return uc.roster.GenerateRoster(ctx, list, time.Now())
}
