package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// CompanySize is the headcount bucket chosen during onboarding.
type CompanySize string

const (
	CompanySizeMicro  CompanySize = "1-10"
	CompanySizeSmall  CompanySize = "11-50"
	CompanySizeMedium CompanySize = "51-200"
	CompanySizeLarge  CompanySize = "200+"
)

// IsValid checks if the CompanySize is a valid value.
func (s CompanySize) IsValid() bool {
	return slices.Contains([]CompanySize{
		CompanySizeMicro, CompanySizeSmall, CompanySizeMedium, CompanySizeLarge,
	}, s)
}

// Industry is the business sector chosen during onboarding.
type Industry string

const (
	IndustryTech       Industry = "Tech"
	IndustryFinance    Industry = "Finance"
	IndustryHealthcare Industry = "Healthcare"
	IndustryRetail     Industry = "Retail"
	IndustryOther      Industry = "Other"
)

// IsValid checks if the Industry is a valid value.
func (i Industry) IsValid() bool {
	return slices.Contains([]Industry{
		IndustryTech, IndustryFinance, IndustryHealthcare, IndustryRetail, IndustryOther,
	}, i)
}

// Company is created once by an admin during onboarding. Employees attach
// themselves later by presenting the join code.
type Company struct {
	ID        uuid.UUID
	Name      string
	Size      CompanySize
	Industry  Industry
	JoinCode  string    // Human-shareable unique token for employee self-enrollment.
	OwnerID   uuid.UUID // The admin who created the company.
	CreatedAt time.Time
	UpdatedAt time.Time
}
