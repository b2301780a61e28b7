package db

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/greencycle/recyclemart/models"
)

type UploadRepository interface {
	CreateUpload(upload *models.Upload) error
	GetUploads(limit int) ([]models.Upload, error)
	GetUploadByID(id string) (*models.Upload, error)
}

type uploadRepo struct {
	DB *gorm.DB
}

func NewUploadRepo(db *GormDB) UploadRepository {
	return &uploadRepo{db.DB}
}

func (r *uploadRepo) CreateUpload(upload *models.Upload) error {
	if err := r.DB.Create(upload).Error; err != nil {
		return errors.Wrap(err, "failed to create upload")
	}
	return nil
}

func (r *uploadRepo) GetUploads(limit int) ([]models.Upload, error) {
	var uploads []models.Upload
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&uploads).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list uploads")
	}
	return uploads, nil
}

func (r *uploadRepo) GetUploadByID(id string) (*models.Upload, error) {
	var upload models.Upload
	err := r.DB.Where("id = ?", id).First(&upload).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, errors.Wrap(err, "failed to get upload")
	}
	return &upload, nil
}
