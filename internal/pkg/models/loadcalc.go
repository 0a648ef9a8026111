package models

// AxleGroupType identifies a heavy vehicle axle group configuration
type AxleGroupType string

const (
	AxleGroupSteerSingle AxleGroupType = "steer_single"
	AxleGroupDriveSingle AxleGroupType = "drive_single"
	AxleGroupDriveTandem AxleGroupType = "drive_tandem"
	AxleGroupTriAxle     AxleGroupType = "tri_axle"
)

// AxleGroupLoad is one axle group's measured mass
type AxleGroupLoad struct {
	Type       AxleGroupType `json:"type"`
	MassTonnes float64       `json:"mass_tonnes"`
}

// LoadCheckRequest asks whether a loaded combination is within general
// mass limits. GCMTonnes is the rated gross combination mass; zero means
// the rating is unknown and only per-group limits are checked.
type LoadCheckRequest struct {
	Groups    []AxleGroupLoad `json:"groups"`
	GCMTonnes float64         `json:"gcm_tonnes"`
}

// AxleGroupResult is the per-group verdict
type AxleGroupResult struct {
	Type        AxleGroupType `json:"type"`
	MassTonnes  float64       `json:"mass_tonnes"`
	LimitTonnes float64       `json:"limit_tonnes"`
	OverTonnes  float64       `json:"over_tonnes"`
	Compliant   bool          `json:"compliant"`
}

// LoadCheckResult is the full mass compliance verdict
type LoadCheckResult struct {
	Groups      []AxleGroupResult `json:"groups"`
	TotalTonnes float64           `json:"total_tonnes"`
	GCMTonnes   float64           `json:"gcm_tonnes,omitempty"`
	GCMExceeded bool              `json:"gcm_exceeded"`
	Compliant   bool              `json:"compliant"`
}
