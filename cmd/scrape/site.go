package main

import (
	"fmt"

	"github.com/fwojciec/scrape"
)

// Run executes the site add command.
func (c *SiteAddCmd) Run(deps *Dependencies) error {
	site := &scrape.Site{URL: c.URL, Activated: !c.Disabled}
	if err := deps.Sites.CreateSite(deps.Ctx, site); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Added site %s (%s)\n", site.URL, site.ID)
	return nil
}

// Run executes the site list command.
func (c *SiteListCmd) Run(deps *Dependencies) error {
	var filter scrape.SiteFilter
	if c.Active {
		active := true
		filter.Activated = &active
	}

	sites, err := deps.Sites.FindSites(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	if len(sites) == 0 {
		fmt.Fprintln(deps.Stdout, "No sites found. Use 'scrape site add <url>' to register one.")
		return nil
	}

	for _, s := range sites {
		state := "active"
		if !s.Activated {
			state = "disabled"
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", s.URL, state)
	}
	return nil
}

// Run executes the site delete command.
func (c *SiteDeleteCmd) Run(deps *Dependencies) error {
	site, err := findSite(deps, c.URL)
	if err != nil {
		return err
	}
	if err := deps.Sites.DeleteSite(deps.Ctx, site.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Deleted site %s\n", site.URL)
	return nil
}

// Run executes the site disable command.
func (c *SiteDisableCmd) Run(deps *Dependencies) error {
	return setActivated(deps, c.URL, false)
}

// Run executes the site enable command.
func (c *SiteEnableCmd) Run(deps *Dependencies) error {
	return setActivated(deps, c.URL, true)
}

func setActivated(deps *Dependencies, url string, activated bool) error {
	site, err := findSite(deps, url)
	if err != nil {
		return err
	}
	if _, err := deps.Sites.UpdateSite(deps.Ctx, site.ID, scrape.SiteUpdate{Activated: &activated}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	verb := "Disabled"
	if activated {
		verb = "Enabled"
	}
	fmt.Fprintf(deps.Stdout, "%s site %s\n", verb, site.URL)
	return nil
}

func findSite(deps *Dependencies, url string) (*scrape.Site, error) {
	sites, err := deps.Sites.FindSites(deps.Ctx, scrape.SiteFilter{URL: &url})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return nil, err
	}
	if len(sites) == 0 {
		fmt.Fprintf(deps.Stderr, "error: site %q not found. Use 'scrape site list' to see registered sites.\n", url)
		return nil, scrape.Errorf(scrape.ENOTFOUND, "site %q not found", url)
	}
	return sites[0], nil
}
