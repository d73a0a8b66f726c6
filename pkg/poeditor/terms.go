package poeditor

import (
	"context"
	"net/url"
	"strconv"
)

// ListTerms returns the project's terms. With a non-empty languageCode the
// service also fills in each term's translation for that language; with an
// empty one the language parameter is omitted from the request.
func (c *Client) ListTerms(ctx context.Context, projectID int, languageCode string) ([]Term, error) {
	fields := url.Values{}
	fields.Set("id", strconv.Itoa(projectID))
	setNonEmpty(fields, "language", languageCode)

	var res struct {
		Terms []Term `json:"terms"`
	}
	if err := c.postResult(ctx, "terms/list", fields, nil, &res); err != nil {
		return nil, err
	}
	return res.Terms, nil
}

// AddTerms adds terms to the project and returns the service's counts.
func (c *Client) AddTerms(ctx context.Context, projectID int, terms []Term) (*TermsCount, error) {
	return c.postTerms(ctx, "terms/add", projectID, terms)
}

// DeleteTerms deletes terms, and their translations in every language, from
// the project. Terms are matched by term text and context.
func (c *Client) DeleteTerms(ctx context.Context, projectID int, terms []Term) (*TermsCount, error) {
	return c.postTerms(ctx, "terms/delete", projectID, terms)
}

// AddComment appends comments to existing terms.
func (c *Client) AddComment(ctx context.Context, projectID int, terms []Term) (*TermsCount, error) {
	return c.postTerms(ctx, "terms/add_comment", projectID, terms)
}

// SyncTerms reconciles the project's term set to exactly match the given
// one: terms not present in the slice are deleted from the project along
// with their translations, and new ones are added. This is destructive and
// irreversible; sending the wrong data loses existing terms and
// translations. Use with caution.
func (c *Client) SyncTerms(ctx context.Context, projectID int, terms []Term) (*TermsCount, error) {
	return c.postTerms(ctx, "projects/sync", projectID, terms)
}

// postTerms handles the endpoints that take a JSON-encoded term list in the
// data field and answer with {"terms":{counts}}.
func (c *Client) postTerms(ctx context.Context, path string, projectID int, terms []Term) (*TermsCount, error) {
	fields := url.Values{}
	fields.Set("id", strconv.Itoa(projectID))
	if err := setJSON(fields, "data", terms); err != nil {
		return nil, err
	}

	var res struct {
		Terms TermsCount `json:"terms"`
	}
	if err := c.postResult(ctx, path, fields, nil, &res); err != nil {
		return nil, err
	}
	return &res.Terms, nil
}
