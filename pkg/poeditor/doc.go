/*
Package poeditor provides a client for the POEditor translation management
API (https://poeditor.com/docs/api).

# Overview

The package maps each API endpoint to one method on Client. Every method
serializes its arguments into a form payload, issues a single HTTP POST
carrying the account's api_token, normalizes the service's response envelope
and reshapes the result into Go values. There is no state beyond the token
and the HTTP transport; a single Client is safe for concurrent use.

	client := poeditor.New("my-api-token")

	projects, err := client.ListProjects(ctx)

# The response envelope

Every API call answers with the same outer JSON object:

	{"response": {"status": ..., "code": ..., "message": ...}, "result": {...}}

A call succeeds only when response.status is "success". Any other status, a
non-2xx HTTP response, or a body the envelope cannot be parsed from, surfaces
as an *Error carrying the status, code and message verbatim. The client never
maps, interprets or retries specific error codes.

# Error handling

Two error kinds exhaust the taxonomy:

  - *ArgsError: invalid caller-supplied arguments (unknown export format or
    filter, unknown upload mode, missing required language code). Raised
    before any network I/O.
  - *Error: anything that went wrong after the request left the client, from
    transport failures to business errors the service reports.

Both work with errors.As:

	_, err := client.ViewProject(ctx, 12345)
	var apiErr *poeditor.Error
	if errors.As(err, &apiErr) {
		fmt.Println(apiErr.Code, apiErr.Message)
	}

# Terms and translations

Term batches are plain slices of Term; the client JSON-encodes them into the
single data form field the service expects and never validates their
contents:

	count, err := client.AddTerms(ctx, projectID, []poeditor.Term{
		{Term: "Add new list", Reference: "/projects"},
		{Term: "one project found", Plural: "%d projects found"},
	})

SyncTerms reconciles the remote term set to exactly match the given one and
deletes everything else. Read its warning before using it.

# Export and upload

Export performs two round trips: the API call, which returns a signed
download URL valid for ten minutes, and an immediate GET streaming the
content to disk:

	url, path, err := client.Export(ctx, poeditor.ExportRequest{
		ProjectID: projectID,
		Language:  "fr",
		FileType:  poeditor.FileTypePO,
		Filters:   []poeditor.Filter{poeditor.FilterTranslated},
	})

Upload streams a local file as multipart content:

	result, err := client.UpdateTermsTranslations(ctx, poeditor.UploadRequest{
		ProjectID: projectID,
		File:      "messages.po",
		Language:  "fr",
		Overwrite: true,
	})

The service accepts at most one upload every 30 seconds per account. The
client never sleeps or retries on its own; pace your calls, or opt in with

	client := poeditor.New(token, poeditor.WithUploadInterval(poeditor.MinUploadInterval))

# Timeouts and cancellation

Every method takes a context and honours its cancellation. The default
transport uses a 30 second timeout; override it with WithTimeout or supply
your own transport with WithHTTPClient.
*/
package poeditor
