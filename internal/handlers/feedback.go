package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stoicaf/stoicaf-backend/internal/database"
	"github.com/stoicaf/stoicaf-backend/internal/models"
	"github.com/stoicaf/stoicaf-backend/internal/services"
)

type SubmitFeedbackRequest struct {
	Feedback string `json:"feedback"`
}

type SubmitFeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitFeedback stores anonymous product feedback
func SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SubmitFeedbackResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if len(req.Feedback) < 10 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SubmitFeedbackResponse{
			Success: false,
			Message: "Feedback must be at least 10 characters long",
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feedback := models.Feedback{
		ID:        primitive.NewObjectID(),
		CreatedAt: time.Now(),
		Feedback:  req.Feedback,
		IPAddress: services.GetIPAddress(r), // for abuse triage, not identity
	}

	if _, err := database.DB.Collection("feedbacks").InsertOne(ctx, feedback); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(SubmitFeedbackResponse{
			Success: false,
			Message: "Failed to submit feedback",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SubmitFeedbackResponse{
		Success: true,
		Message: "Thanks for the feedback",
	})
}
