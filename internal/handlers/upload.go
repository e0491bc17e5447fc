package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/stoicaf/stoicaf-backend/internal/config"
	"github.com/stoicaf/stoicaf-backend/internal/services"
)

var cloudinaryService *services.CloudinaryService

func InitCloudinaryService(c *config.Config) error {
	service, err := services.NewCloudinaryService(
		c.CloudinaryName,
		c.CloudinaryAPIKey,
		c.CloudinaryAPISecret,
	)
	if err != nil {
		return err
	}
	cloudinaryService = service
	return nil
}

type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// UploadFile handles image uploads (entry attachments) to Cloudinary
func UploadFile(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(r); !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(UploadResponse{Success: false, Message: "Authentication required"})
		return
	}

	if cloudinaryService == nil {
		http.Error(w, "Cloudinary service not initialized", http.StatusInternalServerError)
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No file provided: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	folder := r.URL.Query().Get("folder")
	if folder == "" {
		folder = "stoicaf"
	}

	url, err := cloudinaryService.UploadFile(r.Context(), file, folder)
	if err != nil {
		http.Error(w, "Upload failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(UploadResponse{
		Success: true,
		Message: "File uploaded successfully",
		URL:     url,
	})
}
