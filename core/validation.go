package core

// ValidCategory reports whether c is a member of the closed category enumeration.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryTechnical, CategoryCognitive, CategoryPersonality,
		CategoryLeadership, CategoryRoleSpecific, CategoryGeneral:
		return true
	}
	return false
}

// ValidSupportFlag reports whether f is a member of the Yes/No enumeration.
func ValidSupportFlag(f SupportFlag) bool {
	return f == SupportYes || f == SupportNo
}

// ValidateRecord checks an AssessmentRecord at the catalog boundary.
// Unknown category or support-flag values are rejected here so the hard
// filters downstream only ever see members of the closed enumerations.
func ValidateRecord(r *AssessmentRecord) error {
	if r.Name == "" {
		return ErrMissingName
	}
	if r.URL == "" {
		return ErrMissingURL
	}
	if !ValidSupportFlag(r.RemoteSupport) || !ValidSupportFlag(r.AdaptiveSupport) {
		return ErrInvalidSupportFlag
	}
	if !ValidCategory(r.Category) {
		return ErrInvalidCategory
	}
	return nil
}
