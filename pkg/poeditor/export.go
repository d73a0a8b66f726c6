package poeditor

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// FileType identifies an export file format. The set is closed; Export
// rejects anything else before touching the network.
type FileType string

const (
	FileTypePO             FileType = "po"
	FileTypePOT            FileType = "pot"
	FileTypeMO             FileType = "mo"
	FileTypeXLS            FileType = "xls"
	FileTypeCSV            FileType = "csv"
	FileTypeRESX           FileType = "resx"
	FileTypeRESW           FileType = "resw"
	FileTypeAndroidStrings FileType = "android_strings"
	FileTypeAppleStrings   FileType = "apple_strings"
	FileTypeXLIFF          FileType = "xliff"
	FileTypeProperties     FileType = "properties"
	FileTypeKeyValueJSON   FileType = "key_value_json"
	FileTypeJSON           FileType = "json"
	FileTypeXMB            FileType = "xmb"
	FileTypeXTB            FileType = "xtb"
)

var fileTypes = map[FileType]struct{}{
	FileTypePO: {}, FileTypePOT: {}, FileTypeMO: {}, FileTypeXLS: {},
	FileTypeCSV: {}, FileTypeRESX: {}, FileTypeRESW: {},
	FileTypeAndroidStrings: {}, FileTypeAppleStrings: {}, FileTypeXLIFF: {},
	FileTypeProperties: {}, FileTypeKeyValueJSON: {}, FileTypeJSON: {},
	FileTypeXMB: {}, FileTypeXTB: {},
}

// Valid reports whether f is one of the recognized export formats.
func (f FileType) Valid() bool {
	_, ok := fileTypes[f]
	return ok
}

// Filter narrows an export to translations in a given state. The set is
// closed; Export rejects anything else before touching the network.
type Filter string

const (
	FilterTranslated   Filter = "translated"
	FilterUntranslated Filter = "untranslated"
	FilterFuzzy        Filter = "fuzzy"
	FilterNotFuzzy     Filter = "not_fuzzy"
	FilterAutomatic    Filter = "automatic"
	FilterNotAutomatic Filter = "not_automatic"
	FilterProofread    Filter = "proofread"
	FilterNotProofread Filter = "not_proofread"
)

var filters = map[Filter]struct{}{
	FilterTranslated: {}, FilterUntranslated: {}, FilterFuzzy: {},
	FilterNotFuzzy: {}, FilterAutomatic: {}, FilterNotAutomatic: {},
	FilterProofread: {}, FilterNotProofread: {},
}

// Valid reports whether f is one of the recognized export filters.
func (f Filter) Valid() bool {
	_, ok := filters[f]
	return ok
}

// ExportRequest describes one export.
type ExportRequest struct {
	ProjectID int
	Language  string

	// FileType selects the export format. Defaults to FileTypePO.
	FileType FileType

	// Filters narrows the export to translations in the given states.
	Filters []Filter

	// Tags narrows the export to terms carrying any of the given tags.
	Tags []string

	// LocalFile is the path the exported content is written to. When empty a
	// fresh temporary file is created, named with the format's extension.
	LocalFile string
}

// Export asks the service to generate an export, then downloads it. The
// service answers the API call with a signed download URL that expires after
// ten minutes; Export immediately GETs it and streams the content into
// req.LocalFile or a new temporary file. It returns the signed URL and the
// local path written.
//
// Download failures are plain I/O errors, not *Error values: the download
// happens outside the service's JSON protocol.
func (c *Client) Export(ctx context.Context, req ExportRequest) (fileURL, localPath string, err error) {
	if req.FileType == "" {
		req.FileType = FileTypePO
	}
	if !req.FileType.Valid() {
		return "", "", newArgsError("file type %q is not one of the supported export formats", req.FileType)
	}
	for _, f := range req.Filters {
		if !f.Valid() {
			return "", "", newArgsError("filter %q is not one of the supported export filters", f)
		}
	}

	fields := url.Values{}
	fields.Set("id", strconv.Itoa(req.ProjectID))
	fields.Set("language", req.Language)
	fields.Set("type", string(req.FileType))
	for _, f := range req.Filters {
		fields.Add("filters", string(f))
	}
	for _, tag := range req.Tags {
		fields.Add("tags", tag)
	}

	var res struct {
		URL string `json:"url"`
	}
	if err := c.postResult(ctx, "projects/export", fields, nil, &res); err != nil {
		return "", "", err
	}

	localPath = req.LocalFile
	ownFile := false
	if localPath == "" {
		tmp, err := os.CreateTemp("", "poeditor-*."+string(req.FileType))
		if err != nil {
			return "", "", fmt.Errorf("create export file: %w", err)
		}
		localPath = tmp.Name()
		ownFile = true
		if err := tmp.Close(); err != nil {
			return "", "", fmt.Errorf("create export file: %w", err)
		}
	}

	if err := c.download(ctx, res.URL, localPath); err != nil {
		if ownFile {
			os.Remove(localPath)
		}
		return "", "", err
	}
	return res.URL, localPath, nil
}

// download streams the signed URL's content into the local file.
func (c *Client) download(ctx context.Context, fileURL, localPath string) error {
	resp, err := c.http.R().SetContext(ctx).SetOutput(localPath).Get(fileURL)
	if err != nil {
		return fmt.Errorf("download export: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("download export: unexpected status %s", resp.Status())
	}
	return nil
}
