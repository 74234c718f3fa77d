package interfaces

import (
	"context"

	"salao_xpto/internal/domain/entities"
)

//go:generate mockgen -source=appointment_repository_interface.go -destination=mocks/appointment_repository_interface_mock.go -package=mock_interfaces

// IAppointmentRepository is the read-side port to the booking records this
// service cascades into. Appointment status writes never go through here:
// they only happen inside the payment repository's transactional pair-write.
type IAppointmentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
}
