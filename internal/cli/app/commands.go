package app

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/openlocalize/poeditor-go/pkg/poeditor"
)

func (a *Application) runProjects(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("projects: missing subcommand (list, view, add, delete, set-reference)")
	}

	switch args[0] {
	case "list":
		projects, err := a.client.ListProjects(ctx)
		if err != nil {
			return err
		}
		return printJSON(projects)

	case "view":
		fs := flag.NewFlagSet("projects view", flag.ContinueOnError)
		id := fs.Int("id", 0, "project id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		project, err := a.client.ViewProject(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(project)

	case "add":
		fs := flag.NewFlagSet("projects add", flag.ContinueOnError)
		name := fs.String("name", "", "project name")
		description := fs.String("description", "", "project description")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		id, err := a.client.AddProject(ctx, *name, *description)
		if err != nil {
			return err
		}
		a.logger.Info("project created", "id", id)
		return printJSON(map[string]int{"id": id})

	case "delete":
		fs := flag.NewFlagSet("projects delete", flag.ContinueOnError)
		id := fs.Int("id", 0, "project id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if err := a.client.DeleteProject(ctx, *id); err != nil {
			return err
		}
		a.logger.Info("project deleted", "id", *id)
		return nil

	case "set-reference":
		fs := flag.NewFlagSet("projects set-reference", flag.ContinueOnError)
		id := fs.Int("id", 0, "project id")
		language := fs.String("language", "", "reference language code")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if _, err := a.client.SetReferenceLanguage(ctx, *id, *language); err != nil {
			return err
		}
		a.logger.Info("reference language set", "id", *id, "language", *language)
		return nil

	default:
		return fmt.Errorf("projects: unknown subcommand %q", args[0])
	}
}

func (a *Application) runLanguages(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("languages: missing subcommand (available, list, add, delete)")
	}

	switch args[0] {
	case "available":
		languages, err := a.client.AvailableLanguages(ctx)
		if err != nil {
			return err
		}
		return printJSON(languages)

	case "list":
		fs := flag.NewFlagSet("languages list", flag.ContinueOnError)
		id := fs.Int("id", 0, "project id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		languages, err := a.client.ListLanguages(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(languages)

	case "add", "delete":
		fs := flag.NewFlagSet("languages "+args[0], flag.ContinueOnError)
		id := fs.Int("id", 0, "project id")
		language := fs.String("language", "", "language code")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		var err error
		msg := "language added"
		if args[0] == "add" {
			err = a.client.AddLanguage(ctx, *id, *language)
		} else {
			err = a.client.DeleteLanguage(ctx, *id, *language)
			msg = "language deleted"
		}
		if err != nil {
			return err
		}
		a.logger.Info(msg, "id", *id, "language", *language)
		return nil

	default:
		return fmt.Errorf("languages: unknown subcommand %q", args[0])
	}
}

func (a *Application) runTerms(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("terms: missing subcommand (list, add, sync)")
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("terms list", flag.ContinueOnError)
		id := fs.Int("id", 0, "project id")
		language := fs.String("language", "", "optional language code")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		terms, err := a.client.ListTerms(ctx, *id, *language)
		if err != nil {
			return err
		}
		return printJSON(terms)

	case "add":
		fs := flag.NewFlagSet("terms add", flag.ContinueOnError)
		id := fs.Int("id", 0, "project id")
		file := fs.String("file", "", "JSON file with the term list")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		terms, err := readTermsFile(*file)
		if err != nil {
			return err
		}
		count, err := a.client.AddTerms(ctx, *id, terms)
		if err != nil {
			return err
		}
		return printJSON(count)

	case "sync":
		fs := flag.NewFlagSet("terms sync", flag.ContinueOnError)
		id := fs.Int("id", 0, "project id")
		file := fs.String("file", "", "JSON file with the complete term list")
		force := fs.Bool("force", false, "confirm the destructive sync")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if !*force {
			return fmt.Errorf("terms sync deletes every term not in the file; re-run with -force to confirm")
		}
		terms, err := readTermsFile(*file)
		if err != nil {
			return err
		}
		count, err := a.client.SyncTerms(ctx, *id, terms)
		if err != nil {
			return err
		}
		a.logger.Info("terms synced",
			"added", count.Added, "updated", count.Updated, "deleted", count.Deleted)
		return printJSON(count)

	default:
		return fmt.Errorf("terms: unknown subcommand %q", args[0])
	}
}

func (a *Application) runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	id := fs.Int("id", 0, "project id")
	language := fs.String("language", "", "language code")
	fileType := fs.String("type", "po", "export format")
	filtersArg := fs.String("filters", "", "comma-separated translation state filters")
	tagsArg := fs.String("tags", "", "comma-separated tags")
	out := fs.String("out", "", "destination file (temp file when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := poeditor.ExportRequest{
		ProjectID: *id,
		Language:  *language,
		FileType:  poeditor.FileType(*fileType),
		Tags:      splitList(*tagsArg),
		LocalFile: *out,
	}
	for _, f := range splitList(*filtersArg) {
		req.Filters = append(req.Filters, poeditor.Filter(f))
	}

	url, path, err := a.client.Export(ctx, req)
	if err != nil {
		return err
	}
	a.logger.Info("export written", "path", path, "url", url)
	fmt.Println(path)
	return nil
}

func (a *Application) runUpload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	id := fs.Int("id", 0, "project id")
	updating := fs.String("updating", "", "terms, terms_translations or translations")
	file := fs.String("file", "", "file to upload")
	language := fs.String("language", "", "language code")
	overwrite := fs.Bool("overwrite", false, "overwrite existing translations")
	syncTerms := fs.Bool("sync-terms", false, "delete terms missing from the file (destructive)")
	tagsArg := fs.String("tags", "", "comma-separated tags for affected terms")
	fuzzyTrigger := fs.Bool("fuzzy-trigger", false, "mark other languages' translations fuzzy")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.client.Upload(ctx, poeditor.UploadRequest{
		ProjectID:    *id,
		Updating:     poeditor.UpdateMode(*updating),
		File:         *file,
		Language:     *language,
		Overwrite:    *overwrite,
		SyncTerms:    *syncTerms,
		Tags:         splitList(*tagsArg),
		FuzzyTrigger: *fuzzyTrigger,
	})
	if err != nil {
		return err
	}
	return printJSON(result)
}

func (a *Application) runContributors(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("contributors: missing subcommand (list, add, admin, remove)")
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("contributors list", flag.ContinueOnError)
		id := fs.Int("id", 0, "optional project id")
		language := fs.String("language", "", "optional language code")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		contributors, err := a.client.ListContributors(ctx, *id, *language)
		if err != nil {
			return err
		}
		return printJSON(contributors)

	case "add":
		fs := flag.NewFlagSet("contributors add", flag.ContinueOnError)
		id := fs.Int("id", 0, "project id")
		name := fs.String("name", "", "contributor name")
		email := fs.String("email", "", "contributor email")
		language := fs.String("language", "", "language code")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if err := a.client.AddContributor(ctx, *id, *name, *email, *language); err != nil {
			return err
		}
		a.logger.Info("contributor added", "email", *email, "language", *language)
		return nil

	case "admin":
		fs := flag.NewFlagSet("contributors admin", flag.ContinueOnError)
		id := fs.Int("id", 0, "project id")
		name := fs.String("name", "", "administrator name")
		email := fs.String("email", "", "administrator email")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if err := a.client.AddAdministrator(ctx, *id, *name, *email); err != nil {
			return err
		}
		a.logger.Info("administrator added", "email", *email)
		return nil

	case "remove":
		fs := flag.NewFlagSet("contributors remove", flag.ContinueOnError)
		id := fs.Int("id", 0, "project id")
		email := fs.String("email", "", "contributor email")
		language := fs.String("language", "", "optional language code")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if err := a.client.RemoveContributor(ctx, *id, *email, *language); err != nil {
			return err
		}
		a.logger.Info("contributor removed", "email", *email)
		return nil

	default:
		return fmt.Errorf("contributors: unknown subcommand %q", args[0])
	}
}

func readTermsFile(path string) ([]poeditor.Term, error) {
	if path == "" {
		return nil, fmt.Errorf("missing -file")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read terms file: %w", err)
	}
	var terms []poeditor.Term
	if err := json.Unmarshal(raw, &terms); err != nil {
		return nil, fmt.Errorf("parse terms file: %w", err)
	}
	return terms, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
