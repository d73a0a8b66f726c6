package poeditor

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// UpdateMode selects what a file upload updates. The set is closed; Upload
// rejects anything else before touching the network.
type UpdateMode string

const (
	// UpdatingTerms imports terms only.
	UpdatingTerms UpdateMode = "terms"
	// UpdatingTermsTranslations imports terms together with their
	// translations for one language.
	UpdatingTermsTranslations UpdateMode = "terms_translations"
	// UpdatingTranslations imports translations only, for one language.
	UpdatingTranslations UpdateMode = "translations"
)

// Valid reports whether m is one of the recognized upload modes.
func (m UpdateMode) Valid() bool {
	switch m {
	case UpdatingTerms, UpdatingTermsTranslations, UpdatingTranslations:
		return true
	}
	return false
}

// UploadRequest describes one file upload.
type UploadRequest struct {
	ProjectID int
	Updating  UpdateMode

	// File is the local path of the file to upload. It is opened for binary
	// read and streamed as multipart content.
	File string

	// Language is required for UpdatingTermsTranslations and
	// UpdatingTranslations, unused for UpdatingTerms.
	Language string

	// Overwrite replaces existing translations with the uploaded ones.
	Overwrite bool

	// SyncTerms deletes project terms not present in the uploaded file.
	// Destructive; ignored for UpdatingTranslations.
	SyncTerms bool

	// Tags to attach to affected terms. Accepts the service's special keys
	// ("all", "new", "obsolete", "overwritten_translations") as well as
	// plain tag names. Ignored for UpdatingTranslations.
	Tags []string

	// FuzzyTrigger marks corresponding translations in the project's other
	// languages as fuzzy for the updated values.
	FuzzyTrigger bool
}

// Upload imports terms and/or translations from a local file and returns the
// service's added/updated/deleted counts.
//
// The service accepts at most one upload every 30 seconds per account. The
// client does not sleep or retry on its own; callers issuing uploads in a
// loop must throttle themselves, or opt in via WithUploadInterval.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	if !req.Updating.Valid() {
		return nil, newArgsError("updating mode %q must be one of %q, %q or %q",
			req.Updating, UpdatingTerms, UpdatingTermsTranslations, UpdatingTranslations)
	}
	if req.Language == "" &&
		(req.Updating == UpdatingTermsTranslations || req.Updating == UpdatingTranslations) {
		return nil, newArgsError("a language code is required when updating %q", req.Updating)
	}

	// Tags and term syncing have no meaning when only translations are
	// updated; the caller's values are dropped before serialization.
	if req.Updating == UpdatingTranslations {
		req.Tags = nil
		req.SyncTerms = false
	}

	// This endpoint's form parser is stricter than the others: every field
	// below is always transmitted, with empty strings for absent text fields
	// and "0"/"1" sentinels for booleans, never omitted.
	fields := url.Values{}
	fields.Set("id", strconv.Itoa(req.ProjectID))
	fields.Set("updating", string(req.Updating))
	fields.Set("language", req.Language)
	fields.Set("tags", strings.Join(req.Tags, ","))
	fields.Set("sync_terms", boolSentinel(req.SyncTerms))
	fields.Set("overwrite", boolSentinel(req.Overwrite))
	fields.Set("fuzzy_trigger", boolSentinel(req.FuzzyTrigger))

	f, err := os.Open(req.File)
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close()

	if c.uploadLimiter != nil {
		if err := c.uploadLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var res UploadResult
	file := &fileField{name: filepath.Base(req.File), reader: f}
	if err := c.postResult(ctx, "projects/upload", fields, file, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateTerms uploads a file in terms mode.
func (c *Client) UpdateTerms(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	req.Updating = UpdatingTerms
	return c.Upload(ctx, req)
}

// UpdateTermsTranslations uploads a file in terms_translations mode. The
// request must carry a language code.
func (c *Client) UpdateTermsTranslations(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	req.Updating = UpdatingTermsTranslations
	return c.Upload(ctx, req)
}

// UpdateTranslations uploads a file in translations mode. The request must
// carry a language code; tags and term syncing do not apply.
func (c *Client) UpdateTranslations(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	req.Updating = UpdatingTranslations
	return c.Upload(ctx, req)
}

// UpdateTermsDefinitions uploads a file in terms_translations mode.
//
// Deprecated: the operation was renamed; use UpdateTermsTranslations.
func (c *Client) UpdateTermsDefinitions(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	return c.UpdateTermsTranslations(ctx, req)
}

// UpdateDefinitions uploads a file in translations mode.
//
// Deprecated: the operation was renamed; use UpdateTranslations.
func (c *Client) UpdateDefinitions(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	return c.UpdateTranslations(ctx, req)
}

// boolSentinel encodes a flag the way the upload and languages/update
// endpoints expect: the literal strings "1" and "0".
func boolSentinel(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
