package patterns

import (
	"strings"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// attributeTokens maps each field type to the name/id/placeholder tokens
// form authors commonly use for it. Attribute matches carry the highest
// base confidence because attributes are author-authoritative.
var attributeTokens = map[types.FieldType][]string{
	types.FieldTypeFirstName:    {"firstname", "first_name", "first-name", "fname", "givenname", "given_name", "given-name"},
	types.FieldTypeLastName:     {"lastname", "last_name", "last-name", "lname", "surname", "familyname", "family_name", "family-name"},
	types.FieldTypeEmail:        {"email", "e-mail", "emailaddress", "email_address", "email-address"},
	types.FieldTypePhone:        {"phone", "telephone", "tel", "mobile", "cell", "phonenumber", "phone_number", "phone-number"},
	types.FieldTypeAddressLine:  {"address", "street", "address1", "address_line", "addressline1", "street_address"},
	types.FieldTypeCity:         {"city", "town", "locality"},
	types.FieldTypeState:        {"state", "province", "region"},
	types.FieldTypePostalCode:   {"zip", "zipcode", "zip_code", "postal", "postalcode", "postal_code", "postcode"},
	types.FieldTypeCountry:      {"country", "nation"},
	types.FieldTypeLinkedInURL:  {"linkedin", "linked_in", "linked-in"},
	types.FieldTypePortfolioURL: {"portfolio", "website", "personal_site", "github", "homepage"},
	types.FieldTypeCoverLetter:  {"coverletter", "cover_letter", "cover-letter", "motivation", "whyus", "why_us"},
	types.FieldTypeResumeText:   {"resume", "resumetext", "resume_text", "cv", "curriculum"},
}

// labelSynonyms maps each field type to the phrases that may appear in an
// associated label. Label matches carry medium confidence.
var labelSynonyms = map[types.FieldType][]string{
	types.FieldTypeFirstName:    {"first name", "given name", "forename"},
	types.FieldTypeLastName:     {"last name", "surname", "family name"},
	types.FieldTypeEmail:        {"email", "e-mail"},
	types.FieldTypePhone:        {"phone", "telephone", "mobile", "cell"},
	types.FieldTypeAddressLine:  {"address", "street"},
	types.FieldTypeCity:         {"city", "town"},
	types.FieldTypeState:        {"state", "province", "region"},
	types.FieldTypePostalCode:   {"zip", "postal code", "postcode"},
	types.FieldTypeCountry:      {"country"},
	types.FieldTypeLinkedInURL:  {"linkedin"},
	types.FieldTypePortfolioURL: {"portfolio", "website", "personal site", "github"},
	types.FieldTypeCoverLetter:  {"cover letter", "motivation letter", "why do you want"},
	types.FieldTypeResumeText:   {"resume", "cv", "curriculum vitae"},
}

// contextKeywords maps each field type to keywords scanned in the text
// surrounding a field. Context matches carry low confidence and are used
// to break ties or fill gaps.
var contextKeywords = map[types.FieldType][]string{
	types.FieldTypeFirstName:    {"first name"},
	types.FieldTypeLastName:     {"last name", "surname"},
	types.FieldTypeEmail:        {"email", "contact"},
	types.FieldTypePhone:        {"phone", "call you"},
	types.FieldTypeAddressLine:  {"address", "where you live"},
	types.FieldTypeCity:         {"city"},
	types.FieldTypeState:        {"state", "province"},
	types.FieldTypePostalCode:   {"zip", "postal"},
	types.FieldTypeCountry:      {"country"},
	types.FieldTypeLinkedInURL:  {"linkedin profile"},
	types.FieldTypePortfolioURL: {"portfolio", "personal website"},
	types.FieldTypeCoverLetter:  {"cover letter", "tell us why"},
	types.FieldTypeResumeText:   {"paste your resume", "resume text"},
}

// uploadTokens maps each upload kind to its purpose vocabulary, used by
// the file upload matcher across the attribute, label, and context
// strategies.
var uploadTokens = map[types.UploadKind][]string{
	types.UploadKindResume:      {"resume", "cv", "curriculum"},
	types.UploadKindCoverLetter: {"cover letter", "coverletter", "cover_letter", "motivation"},
	types.UploadKindPortfolio:   {"portfolio", "work sample", "worksample"},
}

// SectionHeaders maps canonical CV section names to the header phrases
// that introduce them. Matching is case-insensitive on whole trimmed
// lines.
var SectionHeaders = map[string][]string{
	"summary":    {"summary", "profile", "objective", "about", "about me", "professional summary"},
	"experience": {"experience", "work experience", "employment", "employment history", "work history", "professional experience", "career history"},
	"education":  {"education", "academic background", "qualifications", "academic history"},
	"skills":     {"skills", "technical skills", "core competencies", "technologies", "expertise"},
	"projects":   {"projects", "personal projects", "selected projects"},
	"awards":     {"awards", "honors", "achievements", "certifications", "certificates"},
	"languages":  {"languages"},
}

// MatchSectionHeader returns the canonical section name for a header line,
// or "" when the line is not a recognized header. Header lines are short,
// contain no sentence punctuation, and match the header vocabulary.
func MatchSectionHeader(line string) string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimRight(trimmed, ":")
	if trimmed == "" || len(trimmed) > 40 {
		return ""
	}
	lower := strings.ToLower(trimmed)
	for section, headers := range SectionHeaders {
		for _, h := range headers {
			if lower == h {
				return section
			}
		}
	}
	return ""
}

// skillVocabulary maps normalized skill tokens to their category. Unknown
// tokens found in a skills section default to technical.
var skillVocabulary = map[string]types.SkillCategory{
	// technical
	"go": types.SkillTechnical, "golang": types.SkillTechnical,
	"python": types.SkillTechnical, "java": types.SkillTechnical,
	"javascript": types.SkillTechnical, "typescript": types.SkillTechnical,
	"c++": types.SkillTechnical, "c#": types.SkillTechnical, "rust": types.SkillTechnical,
	"ruby": types.SkillTechnical, "php": types.SkillTechnical, "swift": types.SkillTechnical,
	"kotlin": types.SkillTechnical, "sql": types.SkillTechnical, "html": types.SkillTechnical,
	"css": types.SkillTechnical, "react": types.SkillTechnical, "angular": types.SkillTechnical,
	"vue": types.SkillTechnical, "node.js": types.SkillTechnical, "django": types.SkillTechnical,
	"docker": types.SkillTechnical, "kubernetes": types.SkillTechnical, "aws": types.SkillTechnical,
	"azure": types.SkillTechnical, "gcp": types.SkillTechnical, "terraform": types.SkillTechnical,
	"postgresql": types.SkillTechnical, "mysql": types.SkillTechnical,
	"mongodb": types.SkillTechnical, "redis": types.SkillTechnical, "git": types.SkillTechnical,
	"linux": types.SkillTechnical, "graphql": types.SkillTechnical, "rest": types.SkillTechnical,
	"microservices": types.SkillTechnical, "ci/cd": types.SkillTechnical,
	"machine learning": types.SkillTechnical, "data analysis": types.SkillTechnical,
	// soft
	"leadership": types.SkillSoft, "communication": types.SkillSoft,
	"teamwork": types.SkillSoft, "problem solving": types.SkillSoft,
	"time management": types.SkillSoft, "project management": types.SkillSoft,
	"mentoring": types.SkillSoft, "collaboration": types.SkillSoft,
	"public speaking": types.SkillSoft, "negotiation": types.SkillSoft,
	// language
	"english": types.SkillLanguage, "spanish": types.SkillLanguage,
	"french": types.SkillLanguage, "german": types.SkillLanguage,
	"mandarin": types.SkillLanguage, "cantonese": types.SkillLanguage,
	"japanese": types.SkillLanguage, "korean": types.SkillLanguage,
	"portuguese": types.SkillLanguage, "hindi": types.SkillLanguage,
	"arabic": types.SkillLanguage, "russian": types.SkillLanguage,
}

// skillCanonical maps common variants to canonical display names.
var skillCanonical = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"js":         "JavaScript",
	"javascript": "JavaScript",
	"ts":         "TypeScript",
	"typescript": "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"reactjs":    "React",
	"react.js":   "React",
	"vuejs":      "Vue",
	"vue.js":     "Vue",
	"nodejs":     "Node.js",
	"node":       "Node.js",
	"node.js":    "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
}

// SkillCategoryFor returns the category for a skill token, defaulting to
// technical when the token is not in the vocabulary.
func SkillCategoryFor(token string) types.SkillCategory {
	if cat, ok := skillVocabulary[NormalizeToken(token)]; ok {
		return cat
	}
	if canonical, ok := skillCanonical[NormalizeToken(token)]; ok {
		if cat, ok := skillVocabulary[NormalizeToken(canonical)]; ok {
			return cat
		}
	}
	return types.SkillTechnical
}

// KnownSkill reports whether a token is in the skill vocabulary, either
// directly or through a canonical variant.
func KnownSkill(token string) bool {
	key := NormalizeToken(token)
	if _, ok := skillVocabulary[key]; ok {
		return true
	}
	_, ok := skillCanonical[key]
	return ok
}

// CanonicalSkillName normalizes a skill token to its canonical display
// form: known variants map to their canonical name, single lowercase
// words are capitalized, everything else is kept as written.
func CanonicalSkillName(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := skillCanonical[NormalizeToken(trimmed)]; ok {
		return canonical
	}
	if trimmed == strings.ToLower(trimmed) && !strings.Contains(trimmed, " ") {
		return strings.ToUpper(trimmed[:1]) + trimmed[1:]
	}
	return trimmed
}
