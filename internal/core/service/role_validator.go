package service

import (
	"github.com/wheeltrip/assist-api/internal/core/domain"
	"github.com/wheeltrip/assist-api/internal/core/ports"
)

// ValidateRegistration is the sole gate that constructs a valid role variant.
// It checks the password/confirmation pair first so that basic input
// correctness is confirmed before any role-specific detail surfaces, then
// normalizes the optional attribute bag against the requested role:
//
//	client    — handicap type required, availability forbidden
//	assistant — handicap type forbidden, availability defaults to true
//
// It is a pure function; no mutation happens before it passes.
func ValidateRegistration(in ports.RegisterInput) (domain.Role, domain.RoleProfile, error) {
	if in.Password != in.ConfirmPassword {
		return "", domain.RoleProfile{}, domain.ErrPasswordMismatch
	}

	switch domain.Role(in.Role) {
	case domain.RoleClient:
		if in.Available != nil {
			return "", domain.RoleProfile{}, domain.ErrAvailabilityNotAllowed
		}
		if in.HandicapType == nil || *in.HandicapType == "" {
			return "", domain.RoleProfile{}, domain.ErrMissingHandicapType
		}
		ht := domain.HandicapType(*in.HandicapType)
		if !ht.IsValid() {
			return "", domain.RoleProfile{}, domain.ErrMissingHandicapType
		}
		return domain.RoleClient, domain.RoleProfile{
			Client: &domain.ClientProfile{HandicapType: ht},
		}, nil

	case domain.RoleAssistant:
		if in.HandicapType != nil {
			return "", domain.RoleProfile{}, domain.ErrHandicapNotAllowed
		}
		available := true
		if in.Available != nil {
			available = *in.Available
		}
		return domain.RoleAssistant, domain.RoleProfile{
			Assistant: &domain.AssistantProfile{Available: available},
		}, nil

	default:
		return "", domain.RoleProfile{}, domain.ErrInvalidRole
	}
}
