package dto

// One survey location. Thickness and Boundary are index-aligned with
// Layers on the enclosing survey; nil marks an undefined value.
type ProfileRowResponse struct {
	Chainage  float64    `json:"chainage"`
	Thickness []*float64 `json:"thickness"`
	Boundary  []*float64 `json:"boundary"`
}

// Outcome for one uploaded file. Either Rows or Error is populated.
type SurveyResponse struct {
	File            string               `json:"file"`
	Layers          []string             `json:"layers,omitempty"`
	BoundaryColumns []string             `json:"boundary_columns,omitempty"`
	NoPlottableData bool                 `json:"no_plottable_data,omitempty"`
	Rows            []ProfileRowResponse `json:"rows,omitempty"`
	Error           string               `json:"error,omitempty"`
	ErrorKind       string               `json:"error_kind,omitempty"`
}

type ListSurveysResponse struct {
	Surveys []SurveyResponse `json:"surveys"`
}
