package poeditor

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayouts are the formats the service has been observed to use.
// Project timestamps come back like "2013-06-10T11:08:54+0000".
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z0700",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Timestamp is a time.Time that decodes the service's timestamp formats.
// Absent or empty values decode to the zero time.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.Format(timestampLayouts[0]))
}

// flexBool decodes the service's loose boolean encoding: the string "0" and
// any falsy value ("", 0, false, null) decode to false, everything else to
// true.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*b = false
	case bool:
		*b = flexBool(v)
	case string:
		*b = v != "" && v != "0"
	case float64:
		*b = v != 0
	default:
		*b = true
	}
	return nil
}

// Project describes one POEditor project. The list view carries only the
// always-present fields; Description, ReferenceLanguage and Terms are filled
// in by the detail view and stay at their zero value otherwise.
type Project struct {
	ID      int
	Name    string
	Open    bool
	Public  bool
	Created time.Time

	// Detail-view fields.
	Description       string
	ReferenceLanguage string
	Terms             int
}

func (p *Project) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID                json.Number `json:"id"`
		Name              string      `json:"name"`
		Open              flexBool    `json:"open"`
		Public            flexBool    `json:"public"`
		Created           Timestamp   `json:"created"`
		Description       string      `json:"description"`
		ReferenceLanguage string      `json:"reference_language"`
		Terms             int         `json:"terms"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	id, err := raw.ID.Int64()
	if err != nil {
		return fmt.Errorf("project id %q: %w", raw.ID.String(), err)
	}
	*p = Project{
		ID:                int(id),
		Name:              raw.Name,
		Open:              bool(raw.Open),
		Public:            bool(raw.Public),
		Created:           raw.Created.Time,
		Description:       raw.Description,
		ReferenceLanguage: raw.ReferenceLanguage,
		Terms:             raw.Terms,
	}
	return nil
}

// Language is one language entry as returned by languages/list or
// languages/available. The list endpoint adds translation progress and the
// last-change timestamp; languages/available carries only name and code.
type Language struct {
	Name         string     `json:"name"`
	Code         string     `json:"code"`
	Translations int        `json:"translations,omitempty"`
	Percentage   float64    `json:"percentage,omitempty"`
	Updated      *Timestamp `json:"updated,omitempty"`
}

// Term is the translatable unit: a source string plus its context. The same
// shape is used when sending terms to the service (only set fields are
// serialized) and when reading them back from terms/list. The client never
// validates term contents; the service is the source of truth.
type Term struct {
	Term        string       `json:"term"`
	Context     string       `json:"context,omitempty"`
	Reference   string       `json:"reference,omitempty"`
	Plural      string       `json:"plural,omitempty"`
	Comment     string       `json:"comment,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Translation *Translation `json:"translation,omitempty"`

	// Filled in by terms/list only.
	Created *Timestamp `json:"created,omitempty"`
	Updated *Timestamp `json:"updated,omitempty"`
}

// Translation is the rendering of a term in one target language. Fuzzy uses
// the service's 0/1 encoding: 1 marks the translation as needing review.
type Translation struct {
	Content string     `json:"content"`
	Fuzzy   int        `json:"fuzzy"`
	Updated *Timestamp `json:"updated,omitempty"`
}

// Contributor is one person with access to a project, together with the
// permissions the service reports for them.
type Contributor struct {
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	Permissions []ContributorPermission `json:"permissions,omitempty"`
}

// ContributorPermission describes a contributor's role on one project.
type ContributorPermission struct {
	Project     ProjectRef `json:"project"`
	Type        string     `json:"type"`
	Proofreader bool       `json:"proofreader,omitempty"`
	Languages   []string   `json:"languages,omitempty"`
}

// ProjectRef is the compact project reference embedded in contributor
// permissions. The service returns the id as a string here.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TermsCount reports how many terms an operation parsed and touched. Only
// the fields relevant to the operation are non-zero: terms/add fills Added,
// terms/delete Deleted, terms/add_comment WithAddedComment, projects/sync
// all of Added/Updated/Deleted.
type TermsCount struct {
	Parsed           int `json:"parsed"`
	Added            int `json:"added"`
	Updated          int `json:"updated"`
	Deleted          int `json:"deleted"`
	WithAddedComment int `json:"with_added_comment"`
}

// TranslationsCount reports how many translations an operation parsed and
// touched.
type TranslationsCount struct {
	Parsed  int `json:"parsed"`
	Added   int `json:"added"`
	Updated int `json:"updated"`
}

// UploadResult is the outcome of a file upload: term and translation counts,
// each zero-valued when the upload mode did not touch that side.
type UploadResult struct {
	Terms        TermsCount        `json:"terms"`
	Translations TranslationsCount `json:"translations"`
}
