package services

import (
	"encoding/json"
	"time"

	"github.com/kaard-farm/farm-api/internal/models"
	"github.com/kaard-farm/farm-api/internal/repository"
)

// Resource is the capability set a record type exposes to the generic
// service: normalization, defaulting, validation, and identity access.
type Resource interface {
	Normalize()
	ApplyDefaults()
	Validate() models.FieldErrors
	GetID() uint
	SetID(uint)
	GetCreatedAt() time.Time
	SetCreatedAt(time.Time)
}

type resourcePtr[T any] interface {
	Resource
	*T
}

// ResourceService implements the CRUD contract once; each resource kind
// is an instantiation with its own repository and default list order.
type ResourceService[T any, PT resourcePtr[T]] struct {
	repo         *repository.ResourceRepository[T]
	defaultOrder string
}

func NewResourceService[T any, PT resourcePtr[T]](repo *repository.ResourceRepository[T], defaultOrder string) *ResourceService[T, PT] {
	return &ResourceService[T, PT]{
		repo:         repo,
		defaultOrder: defaultOrder,
	}
}

func (s *ResourceService[T, PT]) List() ([]T, error) {
	return s.repo.FindAll(s.defaultOrder)
}

func (s *ResourceService[T, PT]) Get(id uint) (*T, error) {
	record, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}

func (s *ResourceService[T, PT]) Create(body []byte) (*T, error) {
	var record T
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, invalidBody(err)
	}

	p := PT(&record)
	// Identity and timestamps are assigned by storage, not the client.
	p.SetID(0)
	p.SetCreatedAt(time.Time{})
	p.Normalize()
	p.ApplyDefaults()
	if fields := p.Validate(); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.repo.Create(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update merges the provided fields over the stored record and re-runs
// the full validation, so a partial update can never leave a record in a
// state that create would reject.
func (s *ResourceService[T, PT]) Update(id uint, body []byte) (*T, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	merged := *existing
	if err := json.Unmarshal(body, &merged); err != nil {
		return nil, invalidBody(err)
	}

	p := PT(&merged)
	p.SetID(id)
	p.SetCreatedAt(PT(existing).GetCreatedAt())
	p.Normalize()
	p.ApplyDefaults()
	if fields := p.Validate(); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.repo.Save(&merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *ResourceService[T, PT]) Delete(id uint) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
