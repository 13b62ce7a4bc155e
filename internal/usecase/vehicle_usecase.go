package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"garagejobs/internal/domain/entities"
	"garagejobs/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrVehicleAlreadyExists = errors.New("vehicle already registered")

// IVehicleUseCase backs the intake form's registration lookup and manual
// vehicle registration.
type IVehicleUseCase interface {
	Create(ctx context.Context, in VehicleInput) (entities.Vehicle, error)
	GetByRegistration(ctx context.Context, registration string) (entities.Vehicle, error)
}

type VehicleUseCase struct {
	repo interfaces.IVehicleRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

func (u *VehicleUseCase) Create(ctx context.Context, in VehicleInput) (entities.Vehicle, error) {
	registration := strings.TrimSpace(in.Registration)
	if registration == "" {
		return entities.Vehicle{}, ErrRegistrationRequired
	}

	// One record per registration plate.
	if existing, err := u.repo.GetByRegistration(ctx, registration); err != nil {
		return entities.Vehicle{}, err
	} else if existing.ID != "" {
		return entities.Vehicle{}, ErrVehicleAlreadyExists
	}

	return u.repo.Create(ctx, entities.Vehicle{
		ID:            uuid.NewString(),
		Registration:  registration,
		Brand:         strings.TrimSpace(in.Brand),
		Model:         strings.TrimSpace(in.Model),
		Type:          strings.TrimSpace(in.Type),
		Year:          strings.TrimSpace(in.Year),
		Color:         strings.TrimSpace(in.Color),
		ChassisNumber: strings.TrimSpace(in.ChassisNumber),
		CreatedAt:     time.Now().UTC(),
	})
}

func (u *VehicleUseCase) GetByRegistration(ctx context.Context, registration string) (entities.Vehicle, error) {
	registration = strings.TrimSpace(registration)
	if registration == "" {
		return entities.Vehicle{}, ErrRegistrationRequired
	}
	v, err := u.repo.GetByRegistration(ctx, registration)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}
