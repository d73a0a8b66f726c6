package poeditor

import (
	"context"
	"net/url"
	"strconv"
)

// ListContributors returns contributors, optionally narrowed to one project
// (projectID > 0) and one language (non-empty languageCode). With no filters
// it lists contributors across all of the account's projects.
func (c *Client) ListContributors(ctx context.Context, projectID int, languageCode string) ([]Contributor, error) {
	fields := url.Values{}
	if projectID > 0 {
		fields.Set("id", strconv.Itoa(projectID))
	}
	setNonEmpty(fields, "language", languageCode)

	var res struct {
		Contributors []Contributor `json:"contributors"`
	}
	if err := c.postResult(ctx, "contributors/list", fields, nil, &res); err != nil {
		return nil, err
	}
	return res.Contributors, nil
}

// AddContributor grants a person access to one project language. The service
// enforces uniqueness and permission rules.
func (c *Client) AddContributor(ctx context.Context, projectID int, name, email, languageCode string) error {
	fields := url.Values{}
	fields.Set("id", strconv.Itoa(projectID))
	fields.Set("name", name)
	fields.Set("email", email)
	fields.Set("language", languageCode)
	return c.postResult(ctx, "contributors/add", fields, nil, nil)
}

// AddAdministrator grants a person administrator access to a project. Same
// endpoint as AddContributor, with the admin flag set instead of a language.
func (c *Client) AddAdministrator(ctx context.Context, projectID int, name, email string) error {
	fields := url.Values{}
	fields.Set("id", strconv.Itoa(projectID))
	fields.Set("name", name)
	fields.Set("email", email)
	fields.Set("admin", "1")
	return c.postResult(ctx, "contributors/add", fields, nil, nil)
}

// RemoveContributor revokes a person's access. With a non-empty languageCode
// only that language is revoked; with an empty one the contributor is
// removed from the whole project.
func (c *Client) RemoveContributor(ctx context.Context, projectID int, email, languageCode string) error {
	fields := url.Values{}
	fields.Set("id", strconv.Itoa(projectID))
	fields.Set("email", email)
	setNonEmpty(fields, "language", languageCode)
	return c.postResult(ctx, "contributors/remove", fields, nil, nil)
}
