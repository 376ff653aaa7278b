package devserver

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"farm-market/models"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func (s *Server) validateImage(file *multipart.FileHeader) error {
	if file.Size > s.maxUploadSize {
		return errors.New("file size exceeds maximum allowed size")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")
	}
	return nil
}

// uploadImage stores a product image and returns its URL. With cloudinary
// credentials configured the file goes there; otherwise it lands in the local
// uploads dir served under /uploads.
func (s *Server) uploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Missing file field", Error: err.Error()})
		return
	}
	if err := s.validateImage(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		return
	}

	if s.cloudinary != nil {
		url, err := s.uploadToCloudinary(c.Request.Context(), fileHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Upload failed", Error: err.Error()})
			return
		}
		c.JSON(http.StatusCreated, models.UploadResponse{FileURL: url})
		return
	}

	if err := os.MkdirAll(s.uploadDir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Upload failed", Error: err.Error()})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(s.uploadDir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Upload failed", Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.UploadResponse{
		FileURL: fmt.Sprintf("http://%s/uploads/%s", c.Request.Host, filename),
	})
}

func (s *Server) uploadToCloudinary(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer file.Close()

	publicID := fmt.Sprintf("products/%d_%s", time.Now().Unix(), strings.ReplaceAll(fileHeader.Filename, " ", "_"))
	publicID = strings.TrimSuffix(publicID, filepath.Ext(publicID))

	result, err := s.cloudinary.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         "products",
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", fmt.Errorf("uploading to cloudinary: %w", err)
	}
	return result.SecureURL, nil
}

// newCloudinary reads credentials from the environment, returning nil when
// they are not configured so the stub falls back to local storage.
func newCloudinary() *cloudinary.Cloudinary {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		if cldURL := os.Getenv("CLOUDINARY_URL"); cldURL != "" {
			cld, err := cloudinary.NewFromURL(cldURL)
			if err != nil {
				return nil
			}
			return cld
		}
		return nil
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil
	}
	return cld
}
