package dtos

import (
	"encoding/json"
	"strings"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string. Form bindings land here as one element and get
// split during normalization.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*s = list
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = strings.Split(raw, ",")
	return nil
}

// Normalized splits any comma-joined elements and trims the rest, dropping
// empties.
func (s StringList) Normalized() []string {
	out := make([]string, 0, len(s))
	for _, el := range s {
		for _, part := range strings.Split(el, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

type PostJobRequest struct {
	Title           string     `form:"title" json:"title" binding:"required"`
	Description     string     `form:"description" json:"description" binding:"required"`
	Requirements    StringList `form:"requirements" json:"requirements" binding:"required"`
	JobType         string     `form:"jobType" json:"jobType" binding:"required"`
	Position        int        `form:"position" json:"position" binding:"required"`
	CompanyID       uint       `form:"companyId" json:"companyId" binding:"required"`
	Location        string     `form:"location" json:"location" binding:"required"`
	Salary          float64    `form:"salary" json:"salary" binding:"required"`
	ExperienceLevel int        `form:"experience" json:"experience" binding:"required"`
}
