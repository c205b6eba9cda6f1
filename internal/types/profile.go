package types

// ExtractionStatus is the explicit result state of an extraction run.
// Failures are reported as states rather than raised, so callers can
// degrade gracefully.
type ExtractionStatus string

const (
	StatusOK                 ExtractionStatus = "ok"
	StatusExtractionFailed   ExtractionStatus = "extraction_failed"
	StatusInsufficientData   ExtractionStatus = "insufficient_data"
	StatusFormatNotSupported ExtractionStatus = "format_not_supported"
	StatusTimeout            ExtractionStatus = "timeout"
)

// PersonalInfo holds contact details extracted from the CV header zone.
// Every sub-field is optional; empty string means not found.
type PersonalInfo struct {
	FullName     string `json:"full_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	LinkedInURL  string `json:"linkedin_url,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
}

// WorkExperience represents a single employment entry. Dates are
// normalized to YYYY-MM (or YYYY when only a year was recognized); an
// unparseable date range is preserved as raw text in StartDate.
type WorkExperience struct {
	JobTitle     string   `json:"job_title"`
	Company      string   `json:"company"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education represents a single education entry.
type Education struct {
	Degree         string `json:"degree,omitempty"`
	Institution    string `json:"institution,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
	GPA            string `json:"gpa,omitempty"`
	Honors         string `json:"honors,omitempty"`
}

// SkillCategory tags a skill as technical, soft, or language.
type SkillCategory string

const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
	SkillLanguage  SkillCategory = "language"
)

// Skill is a deduplicated skill token with its category tag.
type Skill struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

// Confidence category names used as keys in ExtractedProfileData.Confidence.
const (
	CategoryPersonalInfo   = "personal_info"
	CategoryWorkExperience = "work_experience"
	CategoryEducation      = "education"
	CategorySkills         = "skills"
)

// ExtractedProfileData is the structured output of a CV extraction run.
// It is created fresh per run and immutable once returned. WorkExperience
// and Education are ordered newest first; current or undated entries sort
// first. Confidence values are always in [0,1].
type ExtractedProfileData struct {
	PersonalInfo   PersonalInfo       `json:"personal_info"`
	WorkExperience []WorkExperience   `json:"work_experience"`
	Education      []Education        `json:"education"`
	Skills         []Skill            `json:"skills"`
	Confidence     map[string]float64 `json:"confidence"`

	Status      ExtractionStatus `json:"status"`
	Incomplete  bool             `json:"incomplete,omitempty"` // true when a chunk budget was exhausted
	Fingerprint string           `json:"fingerprint,omitempty"`
}

// NewExtractedProfileData returns an empty result with all category
// confidences initialized to zero.
func NewExtractedProfileData() *ExtractedProfileData {
	return &ExtractedProfileData{
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Confidence: map[string]float64{
			CategoryPersonalInfo:   0,
			CategoryWorkExperience: 0,
			CategoryEducation:      0,
			CategorySkills:         0,
		},
		Status: StatusOK,
	}
}

// StoredProfile is the persisted profile shape consumed by the merger and
// the storage collaborator. The on-disk encoding belongs to the storage
// layer; this is only the in-memory shape.
type StoredProfile struct {
	ID             string             `json:"id,omitempty"`
	PersonalInfo   PersonalInfo       `json:"personal_info"`
	WorkExperience []WorkExperience   `json:"work_experience"`
	Education      []Education        `json:"education"`
	Skills         []Skill            `json:"skills"`
	Confidence     map[string]float64 `json:"confidence,omitempty"`

	// DocumentFingerprint identifies the CV document the profile's
	// extracted portions came from. The merger rejects extractions
	// produced from a different fingerprint.
	DocumentFingerprint string `json:"document_fingerprint,omitempty"`
}

// Clone returns a deep copy of the profile. The merger uses it so neither
// input is ever mutated.
func (p StoredProfile) Clone() StoredProfile {
	out := p
	out.WorkExperience = append([]WorkExperience(nil), p.WorkExperience...)
	for i, we := range out.WorkExperience {
		out.WorkExperience[i].Achievements = append([]string(nil), we.Achievements...)
	}
	out.Education = append([]Education(nil), p.Education...)
	out.Skills = append([]Skill(nil), p.Skills...)
	if p.Confidence != nil {
		out.Confidence = make(map[string]float64, len(p.Confidence))
		for k, v := range p.Confidence {
			out.Confidence[k] = v
		}
	}
	return out
}
