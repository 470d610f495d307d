package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ResourceRepository is the storage adapter shared by every resource kind.
// Lookups that find nothing return (nil, nil); callers decide whether a
// miss is an error.
type ResourceRepository[T any] struct {
	db *gorm.DB
}

func NewResourceRepository[T any](db *gorm.DB) *ResourceRepository[T] {
	return &ResourceRepository[T]{db: db}
}

func (r *ResourceRepository[T]) FindAll(order string) ([]T, error) {
	var records []T
	err := r.db.Order(order).Find(&records).Error
	return records, err
}

func (r *ResourceRepository[T]) FindByID(id uint) (*T, error) {
	var record T
	err := r.db.First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *ResourceRepository[T]) Create(record *T) error {
	return r.db.Create(record).Error
}

func (r *ResourceRepository[T]) Save(record *T) error {
	return r.db.Save(record).Error
}

// Delete removes the record and reports whether anything matched.
func (r *ResourceRepository[T]) Delete(id uint) (bool, error) {
	result := r.db.Delete(new(T), id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ResourceRepository[T]) Count(conds ...any) (int64, error) {
	var count int64
	q := r.db.Model(new(T))
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *ResourceRepository[T]) Sum(column string) (float64, error) {
	var total float64
	err := r.db.Model(new(T)).
		Select(fmt.Sprintf("COALESCE(SUM(%s), 0)", column)).
		Scan(&total).Error
	return total, err
}
