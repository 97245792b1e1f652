package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/almursalaat/admin-api/config"
	"github.com/almursalaat/admin-api/model"
)

// SheetsService appends application rows to the shared spreadsheet through a
// webhook (an Apps Script endpoint bound to the sheet). The sheet is an
// external collaborator: one POST per application, failures logged only.
type SheetsService struct {
	webhookURL string
	client     *http.Client
}

// NewSheetsService creates a new sheets service instance
func NewSheetsService(cfg *config.Config) *SheetsService {
	return &SheetsService{
		webhookURL: cfg.SHEETS_WEBHOOK_URL,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// IsConfigured checks if the webhook URL is present
func (s *SheetsService) IsConfigured() bool {
	return s.webhookURL != ""
}

// AppendApplication writes one row for a new application. Column order must
// match the sheet header.
func (s *SheetsService) AppendApplication(app *model.Application) error {
	if !s.IsConfigured() {
		log.Printf("SHEETS_WEBHOOK_URL not set, skipping sheet append for application %d", app.ID)
		return nil
	}

	row := []interface{}{
		app.ID,
		app.CreatedAt.Format(time.RFC3339),
		app.FirstName,
		app.LastName,
		app.Email,
		app.PhoneNumber,
		app.Country,
		app.PreferredCourse,
		app.Age,
		app.PreviousExperience,
		app.LearningGoals,
	}

	body, err := json.Marshal(map[string]interface{}{"row": row})
	if err != nil {
		return err
	}

	res, err := s.client.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return fmt.Errorf("sheet webhook returned status %d", res.StatusCode)
	}

	log.Printf("Wrote application %d to spreadsheet", app.ID)
	return nil
}
