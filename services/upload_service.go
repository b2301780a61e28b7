package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/greencycle/recyclemart/config"
	"github.com/greencycle/recyclemart/db"
	"github.com/greencycle/recyclemart/models"
)

const thumbnailMaxSize = 320

type UploadService interface {
	CreateUpload(userID uint, req *models.CreateUploadRequest, file *multipart.FileHeader) (*models.Upload, error)
	ListUploads(limit int) ([]models.Upload, error)
	GetUpload(id string) (*models.Upload, error)
}

type uploadService struct {
	Config        *config.Config
	uploadRepo    db.UploadRepository
	rewardService RewardService
}

func NewUploadService(uploadRepo db.UploadRepository, rewardService RewardService, conf *config.Config) UploadService {
	return &uploadService{
		Config:        conf,
		uploadRepo:    uploadRepo,
		rewardService: rewardService,
	}
}

// CreateUpload inserts the listing and awards recycling points. With an
// image, the file (plus a generated thumbnail) goes to the object storage
// bucket and the listing earns upload points; without one it is a
// media-less listing earning list points.
func (s *uploadService) CreateUpload(userID uint, req *models.CreateUploadRequest, fileHeader *multipart.FileHeader) (*models.Upload, error) {
	imageURL := ""
	thumbnailURL := ""
	activityType := models.ActivityList

	if fileHeader != nil {
		activityType = models.ActivityUpload

		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file: %v", err)
		}
		defer file.Close()

		fileContent, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file content: %v", err)
		}

		client, err := s.createS3Client()
		if err != nil {
			return nil, err
		}

		key := fmt.Sprintf("uploads/%d_%s", time.Now().UnixMilli(), filepath.Base(fileHeader.Filename))
		imageURL, err = s.putObject(client, key, fileContent, fileHeader.Header.Get("Content-Type"))
		if err != nil {
			return nil, err
		}

		// Thumbnail generation is best effort; the listing keeps the
		// full-size image either way.
		if thumb, err := makeThumbnail(fileContent); err != nil {
			log.Printf("thumbnail generation failed: %v", err)
		} else {
			thumbKey := fmt.Sprintf("uploads/thumbs/%d_%s.jpg", time.Now().UnixMilli(), uuid.NewString())
			thumbnailURL, err = s.putObject(client, thumbKey, thumb, "image/jpeg")
			if err != nil {
				log.Printf("thumbnail upload failed: %v", err)
				thumbnailURL = ""
			}
		}
	}

	upload := &models.Upload{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     imageURL,
		ThumbnailURL: thumbnailURL,
		UserID:       userID,
	}
	if err := s.uploadRepo.CreateUpload(upload); err != nil {
		return nil, err
	}

	if _, err := s.rewardService.RecordActivity(userID, activityType, upload.Title); err != nil {
		log.Printf("failed to record %s activity: %v", activityType, err)
	}

	return upload, nil
}

func (s *uploadService) ListUploads(limit int) ([]models.Upload, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.uploadRepo.GetUploads(limit)
}

func (s *uploadService) GetUpload(id string) (*models.Upload, error) {
	return s.uploadRepo.GetUploadByID(id)
}

func (s *uploadService) createS3Client() (*s3.Client, error) {
	cfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(s.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.Config.AwsAccessKeyID,
			s.Config.AwsSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}
	return s3.NewFromConfig(cfg), nil
}

func (s *uploadService) putObject(client *s3.Client, key string, content []byte, contentType string) (string, error) {
	_, err := client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.Config.AwsBucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %v", err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Config.AwsBucket, s.Config.AwsRegion, key), nil
}

// makeThumbnail downsizes the image, keeping aspect ratio, and re-encodes
// it as JPEG.
func makeThumbnail(content []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}
	thumb := resize.Thumbnail(thumbnailMaxSize, thumbnailMaxSize, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %v", err)
	}
	return buf.Bytes(), nil
}
