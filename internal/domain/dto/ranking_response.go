package dto

import "github.com/guttosm/bfpulse/internal/domain/models"

// RankingResponse represents the JSON structure returned by the
// GET /api/v1/ranking endpoint: states ordered by total paid, descending.
type RankingResponse struct {
	K       int                    `json:"k" example:"12"`
	Entries []models.CategoryTotal `json:"entries"`
}
