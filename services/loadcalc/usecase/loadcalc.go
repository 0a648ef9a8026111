package usecase

import (
	"errors"

	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

// General mass limits (tonnes) for common heavy vehicle axle groups under
// the Australian general access rules.
const (
	limitSteerSingle  = 6.5
	limitDriveSingle  = 9.0
	limitDriveTandem  = 16.5
	limitTriAxleGroup = 20.0
)

var axleGroupLimits = map[models.AxleGroupType]float64{
	models.AxleGroupSteerSingle: limitSteerSingle,
	models.AxleGroupDriveSingle: limitDriveSingle,
	models.AxleGroupDriveTandem: limitDriveTandem,
	models.AxleGroupTriAxle:     limitTriAxleGroup,
}

// ErrUnknownAxleGroup is returned for an axle group type without a known
// general mass limit
var ErrUnknownAxleGroup = errors.New("unknown axle group type")

// LoadCalcUC evaluates axle group loads against general mass limits
type LoadCalcUC struct{}

// NewLoadCalcUC creates a new load calculator usecase
func NewLoadCalcUC() *LoadCalcUC {
	return &LoadCalcUC{}
}

// Evaluate checks each axle group and the combination total against its
// limit. Group masses at the limit are compliant; only exceeding it is a
// violation.
func (uc *LoadCalcUC) Evaluate(req *models.LoadCheckRequest) (*models.LoadCheckResult, error) {
	result := &models.LoadCheckResult{
		Groups:    make([]models.AxleGroupResult, 0, len(req.Groups)),
		Compliant: true,
	}

	var total float64
	for _, group := range req.Groups {
		limit, ok := axleGroupLimits[group.Type]
		if !ok {
			return nil, ErrUnknownAxleGroup
		}

		total += group.MassTonnes
		overBy := group.MassTonnes - limit
		if overBy < 0 {
			overBy = 0
		}

		groupResult := models.AxleGroupResult{
			Type:        group.Type,
			MassTonnes:  group.MassTonnes,
			LimitTonnes: limit,
			OverTonnes:  overBy,
			Compliant:   overBy == 0,
		}
		if !groupResult.Compliant {
			result.Compliant = false
		}
		result.Groups = append(result.Groups, groupResult)
	}

	result.TotalTonnes = total
	if req.GCMTonnes > 0 {
		result.GCMTonnes = req.GCMTonnes
		if total > req.GCMTonnes {
			result.GCMExceeded = true
			result.Compliant = false
		}
	}

	return result, nil
}
