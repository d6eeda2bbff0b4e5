package closing

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type inputs struct {
	Reviews    []Review     `json:"reviews"`
	Additional []Additional `json:"additional"`
}

// ToRecord serializa a sessão para o registro persistido do dia.
func (s *Session) ToRecord() (*models.ClosingRecord, error) {
	in, err := json.Marshal(inputs{Reviews: s.Reviews, Additional: s.Additional})
	if err != nil {
		return nil, err
	}
	applied, err := json.Marshal(s.AppliedList())
	if err != nil {
		return nil, err
	}

	return &models.ClosingRecord{
		ID:           s.ID,
		Date:         s.Date,
		Step:         string(s.Step),
		Inputs:       datatypes.JSON(in),
		AppliedSteps: datatypes.JSON(applied),
		CompletedAt:  s.CompletedAt,
	}, nil
}

func FromRecord(rec *models.ClosingRecord) (*Session, error) {
	s := &Session{
		ID:          rec.ID,
		Date:        rec.Date,
		Step:        Step(rec.Step),
		Applied:     map[string]bool{},
		CompletedAt: rec.CompletedAt,
	}

	var in inputs
	if len(rec.Inputs) > 0 {
		if err := json.Unmarshal(rec.Inputs, &in); err != nil {
			return nil, err
		}
	}
	s.Reviews = in.Reviews
	s.Additional = in.Additional
	if s.Reviews == nil {
		s.Reviews = []Review{}
	}
	if s.Additional == nil {
		s.Additional = []Additional{}
	}

	var applied []string
	if len(rec.AppliedSteps) > 0 {
		if err := json.Unmarshal(rec.AppliedSteps, &applied); err != nil {
			return nil, err
		}
	}
	for _, p := range applied {
		s.Applied[p] = true
	}
	return s, nil
}
