package main

import (
	"fmt"

	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/crawl"
	"github.com/fwojciec/scrape/fs"
)

// Run executes the docs list command.
func (c *DocsListCmd) Run(deps *Dependencies) error {
	filter := scrape.DocumentFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'scrape crawl' to collect some.")
		return nil
	}

	for i, doc := range docs {
		if c.Full {
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprint(deps.Stdout, fs.FormatDocument(doc))
		} else {
			title := doc.Title
			if title == "" {
				title = doc.URL
			}
			fmt.Fprintf(deps.Stdout, "%d. %s\n   %s\n", c.Offset+i+1, title, doc.URL)
			if doc.PublishDate != "" {
				fmt.Fprintf(deps.Stdout, "   published %s\n", doc.PublishDate)
			}
		}

		if c.Infos {
			if err := printInfos(deps, doc); err != nil {
				return err
			}
		}
	}
	return nil
}

func printInfos(deps *Dependencies, doc *scrape.Document) error {
	infos, err := deps.Infos.FindInfos(deps.Ctx, scrape.InfoFilter{DocumentID: &doc.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}
	for _, info := range infos {
		fmt.Fprintf(deps.Stdout, "   - %s\n", info.Content)
	}
	return nil
}

// Run executes the docs delete command.
func (c *DocsDeleteCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, scrape.DocumentFilter{URL: &c.URL, Limit: 1})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no document stored for %q\n", c.URL)
		return scrape.Errorf(scrape.ENOTFOUND, "document %q not found", c.URL)
	}

	if err := deps.Documents.DeleteDocument(deps.Ctx, docs[0].ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Deleted document %s\n", c.URL)
	return nil
}

// Run executes the docs export command.
func (c *DocsExportCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, scrape.DocumentFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	w := fs.NewWriter(c.Dir)
	var written, bytes int
	for _, doc := range docs {
		path, err := w.WriteDocument(deps.Ctx, doc)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", doc.URL, scrape.ErrorMessage(err))
			continue
		}
		written++
		bytes += len(doc.Content)
		if c.List {
			fmt.Fprintf(deps.Stdout, "  %s\n", path)
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d documents (%s) to %s\n", written, crawl.FormatBytes(bytes), c.Dir)
	return nil
}
