package poeditor

import (
	"context"
	"net/url"
	"strconv"
)

// AvailableLanguages returns every language POEditor supports, name and code
// only.
func (c *Client) AvailableLanguages(ctx context.Context) ([]Language, error) {
	var res struct {
		Languages []Language `json:"languages"`
	}
	if err := c.postResult(ctx, "languages/available", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Languages, nil
}

// ListLanguages returns the project's languages with translation progress
// and the time of the last change. A project with no languages yet yields an
// empty slice, not an error.
func (c *Client) ListLanguages(ctx context.Context, projectID int) ([]Language, error) {
	fields := url.Values{}
	fields.Set("id", strconv.Itoa(projectID))

	var res struct {
		Languages []Language `json:"languages"`
	}
	if err := c.postResult(ctx, "languages/list", fields, nil, &res); err != nil {
		return nil, err
	}
	return res.Languages, nil
}

// AddLanguage adds a new language to the project.
func (c *Client) AddLanguage(ctx context.Context, projectID int, languageCode string) error {
	fields := url.Values{}
	fields.Set("id", strconv.Itoa(projectID))
	fields.Set("language", languageCode)
	return c.postResult(ctx, "languages/add", fields, nil, nil)
}

// DeleteLanguage removes an existing language, and its translations, from
// the project.
func (c *Client) DeleteLanguage(ctx context.Context, projectID int, languageCode string) error {
	fields := url.Values{}
	fields.Set("id", strconv.Itoa(projectID))
	fields.Set("language", languageCode)
	return c.postResult(ctx, "languages/delete", fields, nil, nil)
}

// UpdateLanguageRequest carries a batch of translations to insert or
// overwrite for one project language.
type UpdateLanguageRequest struct {
	ProjectID int
	Language  string

	// Entries pairs terms with their translation content for the target
	// language.
	Entries []Term

	// FuzzyTrigger, when set and true, marks the corresponding translations
	// in the project's other languages as fuzzy. Not transmitted when nil.
	FuzzyTrigger *bool
}

// UpdateLanguage inserts or overwrites translations for a language and
// returns the service's counts.
func (c *Client) UpdateLanguage(ctx context.Context, req UpdateLanguageRequest) (*TranslationsCount, error) {
	fields := url.Values{}
	fields.Set("id", strconv.Itoa(req.ProjectID))
	fields.Set("language", req.Language)
	if err := setJSON(fields, "data", req.Entries); err != nil {
		return nil, err
	}
	if req.FuzzyTrigger != nil {
		fields.Set("fuzzy_trigger", boolSentinel(*req.FuzzyTrigger))
	}

	var res struct {
		Translations TranslationsCount `json:"translations"`
	}
	if err := c.postResult(ctx, "languages/update", fields, nil, &res); err != nil {
		return nil, err
	}
	return &res.Translations, nil
}
