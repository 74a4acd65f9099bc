// Package document renders formatted legal documents from a fixed set of
// text blueprints and caller-supplied fields.
package document

// Kind names one of the supported legal document blueprints.
type Kind string

const (
	KindComplaint Kind = "complaint"
	KindPetition  Kind = "petition"
	KindRTI       Kind = "rti"
)

// Template is one blueprint together with its field schema. Placeholders
// are exact-match, case-sensitive {name} tokens. RequiredScalars is ordered
// so that missing-field errors are deterministic.
type Template struct {
	Kind            Kind
	RequiredScalars []string
	ListFields      []string
	Text            string
}

// sectionHeaders carries the language-specific section headings injected
// into every template as defaulted header_* fields.
type sectionHeaders struct {
	Facts        string
	LegalBasis   string
	Prayers      string
	Verification string
}

// headersByLanguage holds the supported header translations. Unknown
// language tags fall back to English.
var headersByLanguage = map[string]sectionHeaders{
	"en": {
		Facts:        "FACTS OF THE CASE:",
		LegalBasis:   "LEGAL BASIS:",
		Prayers:      "PRAYERS:",
		Verification: "VERIFICATION:",
	},
	"hi": {
		Facts:        "मामले के तथ्य:",
		LegalBasis:   "कानूनी आधार:",
		Prayers:      "प्रार्थनाएँ:",
		Verification: "सत्यापन:",
	},
	"kn": {
		Facts:        "ಪ್ರಕರಣದ ಅಂಶಗಳು:",
		LegalBasis:   "ಕಾನೂನು ಆಧಾರ:",
		Prayers:      "ಪ್ರಾರ್ಥನೆಗಳು:",
		Verification: "ಪರಿಶೀಲನೆ:",
	},
}

const complaintTemplate = `To,
The {authority_designation},
{authority_name},
{authority_address}

Subject: {complaint_subject}

Respected Sir/Madam,

I, {user_name}, resident of {location}, wish to lodge a formal complaint
against {respondent_name}.

{header_facts}
{issue_summary}

{header_legal_basis}
{legal_insights}

{header_prayers}
{prayers}

Enclosed Documents:
{documents}

Date: {date}
Place: {location}

Yours faithfully,
{user_name}
{contact_details}`

const petitionTemplate = `IN THE MATTER OF A PETITION CONCERNING {petition_purpose}

{user_name}
{location}
                                                              Petitioner

VERSUS

{respondents}
                                                              Respondents

{header_facts}
{issue_summary}

{header_legal_basis}
{legal_insights}

{header_prayers}
{prayers}

{header_verification}
I, {user_name}, do hereby verify that the contents of this petition are
true to my knowledge and belief.

Date: {date}
Place: {location}

{user_name}
{contact_details}`

const rtiTemplate = `To,
The Public Information Officer,
{authority}

Subject: {subject}

Respected Sir/Madam,

{introduction}

Under the Right to Information Act, 2005, I request the following
information:

{info_requests}

{closing}

Date: {date}
Place: {user_address}

Yours faithfully,
{user_name}
{contact_details}`

// templates is the fixed registry of supported kinds.
var templates = map[Kind]Template{
	KindComplaint: {
		Kind: KindComplaint,
		RequiredScalars: []string{
			"authority_designation", "authority_name", "authority_address",
			"complaint_subject", "user_name", "location", "respondent_name",
			"issue_summary", "legal_insights", "date", "contact_details",
		},
		ListFields: []string{"prayers", "documents"},
		Text:       complaintTemplate,
	},
	KindPetition: {
		Kind: KindPetition,
		RequiredScalars: []string{
			"petition_purpose", "user_name", "location",
			"issue_summary", "legal_insights", "date", "contact_details",
		},
		ListFields: []string{"respondents", "prayers"},
		Text:       petitionTemplate,
	},
	KindRTI: {
		Kind: KindRTI,
		RequiredScalars: []string{
			"authority", "subject", "introduction", "closing",
			"user_name", "user_address", "date", "contact_details",
		},
		ListFields: []string{"info_requests"},
		Text:       rtiTemplate,
	},
}
