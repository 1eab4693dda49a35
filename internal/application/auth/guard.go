package auth

import (
	"fmt"

	"github.com/UDDITwork/FINREP-sub006/internal/domain"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
)

// AuthorizeAdvisorPath compara la identidad autenticada con el asesor de la ruta.
// Ambos lados pasan por entity.ParseID, así que mayúsculas o el envoltorio
// ObjectId("...") no producen falsos 403.
//
// Errores:
//   - domain.ErrUnauthorized si no hay identidad autenticada.
//   - domain.ErrInvalidInput si el identificador de la ruta está mal formado.
//   - domain.ErrForbidden si los identificadores difieren.
func AuthorizeAdvisorPath(actor entity.AdvisorContext, pathAdvisorID string) error {
	if actor.IsZero() {
		return domain.ErrUnauthorized
	}
	id, err := entity.ParseID(pathAdvisorID)
	if err != nil {
		return fmt.Errorf("%w: advisorId: %v", domain.ErrInvalidInput, err)
	}
	if id != actor.AdvisorID() {
		return domain.ErrForbidden
	}
	return nil
}
