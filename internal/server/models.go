package server

import "github.com/mohammad-safakhou/studyplan/internal/catalog"

// catalogResponse is the load-csv payload the form script consumes.
type catalogResponse struct {
	Courses []catalog.StudyItem `json:"courses"`
}
