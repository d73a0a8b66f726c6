package poeditor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// String returns a pointer to s, for filling optional request fields.
func String(s string) *string { return &s }

// ListProjects returns the projects owned by the account, in list view
// (detail-only fields stay zero-valued).
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var res struct {
		Projects []Project `json:"projects"`
	}
	if err := c.postResult(ctx, "projects/list", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Projects, nil
}

// ViewProject returns one project's details, including description,
// reference language and term count.
func (c *Client) ViewProject(ctx context.Context, projectID int) (*Project, error) {
	fields := url.Values{}
	fields.Set("id", strconv.Itoa(projectID))

	var res struct {
		Project Project `json:"project"`
	}
	if err := c.postResult(ctx, "projects/view", fields, nil, &res); err != nil {
		return nil, err
	}
	return &res.Project, nil
}

// AddProject creates a new project and returns its id. The description is
// always transmitted, as an empty string when the caller has none.
func (c *Client) AddProject(ctx context.Context, name, description string) (int, error) {
	fields := url.Values{}
	fields.Set("name", name)
	fields.Set("description", description)
	return c.postProjectID(ctx, "projects/add", fields)
}

// UpdateProjectRequest selects which project settings to change. Nil fields
// are not transmitted, and the service leaves the corresponding settings
// untouched.
type UpdateProjectRequest struct {
	Name              *string
	Description       *string
	ReferenceLanguage *string
}

// UpdateProject updates project settings and returns the project id. Only
// the fields set in req are sent; everything else stays as it is on the
// server.
func (c *Client) UpdateProject(ctx context.Context, projectID int, req UpdateProjectRequest) (int, error) {
	fields := url.Values{}
	fields.Set("id", strconv.Itoa(projectID))
	if req.Name != nil {
		fields.Set("name", *req.Name)
	}
	if req.Description != nil {
		fields.Set("description", *req.Description)
	}
	if req.ReferenceLanguage != nil {
		fields.Set("reference_language", *req.ReferenceLanguage)
	}
	return c.postProjectID(ctx, "projects/update", fields)
}

// SetReferenceLanguage sets the project's reference language, leaving every
// other setting untouched. Convenience wrapper over UpdateProject.
func (c *Client) SetReferenceLanguage(ctx context.Context, projectID int, languageCode string) (int, error) {
	return c.UpdateProject(ctx, projectID, UpdateProjectRequest{
		ReferenceLanguage: String(languageCode),
	})
}

// DeleteProject deletes the project from the account. Only the project owner
// may do this.
func (c *Client) DeleteProject(ctx context.Context, projectID int) error {
	fields := url.Values{}
	fields.Set("id", strconv.Itoa(projectID))
	return c.postResult(ctx, "projects/delete", fields, nil, nil)
}

// postProjectID handles the endpoints whose result is {"project":{"id":...}}.
func (c *Client) postProjectID(ctx context.Context, path string, fields url.Values) (int, error) {
	var res struct {
		Project struct {
			ID json.Number `json:"id"`
		} `json:"project"`
	}
	if err := c.postResult(ctx, path, fields, nil, &res); err != nil {
		return 0, err
	}
	id, err := res.Project.ID.Int64()
	if err != nil {
		return 0, fmt.Errorf("poeditor: project id %q: %w", res.Project.ID.String(), err)
	}
	return int(id), nil
}
