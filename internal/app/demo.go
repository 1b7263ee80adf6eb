package app

import (
	"errors"
	"time"

	"notifier/internal/catalog"
	"notifier/internal/tracking"
)

// Demo builds a small catalog, attaches the App's observer to every entity
// and walks through field updates on each type before disposing of them all.
// Every notification the policy allows reaches the configured sinks.
func (a *App) Demo() (err error) {
	var sc tracking.Scope
	defer func() { err = errors.Join(err, sc.Close()) }()

	cat := a.cat
	now := time.Now().UTC().Truncate(time.Second)
	snippet := "Some snippet here"

	company := tracking.Track(&sc, cat.NewCompany(catalog.CompanyOpts{
		CrawlableOpts: catalog.CrawlableOpts{Link: "https://mycompany.com", Name: "Awesome company"},
		EmployeesMin:  10,
		EmployeesMax:  50,
	}))
	competitor := tracking.Track(&sc, cat.NewCompany(catalog.CompanyOpts{
		CrawlableOpts: catalog.CrawlableOpts{Link: "https://competitor.com", Name: "Competitor company"},
		EmployeesMin:  10,
		EmployeesMax:  500,
	}))
	event := tracking.Track(&sc, cat.NewEvent(catalog.EventOpts{
		CrawlableOpts: catalog.CrawlableOpts{Link: "https://mycompany.com/event", Name: "Awesome event"},
		StartDate:     now,
	}))
	webinar := tracking.Track(&sc, cat.NewWebinar(catalog.WebinarOpts{
		CrawlableOpts: catalog.CrawlableOpts{Link: "https://mycompany.com/webinar", Name: "Awesome webinar"},
		StartDate:     now,
	}))
	item := tracking.Track(&sc, cat.NewContentItem(catalog.ContentItemOpts{
		CrawlableOpts: catalog.CrawlableOpts{Link: "https://mycompany.com/blog", Name: "Awesome content"},
		Company:       company,
		Snippet:       &snippet,
	}))
	forEvent := tracking.Track(&sc, cat.NewCompanyForEvent(catalog.CompanyForEventOpts{Event: event, Company: company}))
	forWebinar := tracking.Track(&sc, cat.NewCompanyForWebinar(catalog.CompanyForWebinarOpts{Webinar: webinar, Company: company}))
	rival := tracking.Track(&sc, cat.NewCompanyCompetitor(catalog.CompanyCompetitorOpts{Company: company, Competitor: competitor}))

	for _, e := range []tracking.Entity{company, competitor, event, webinar, item, forEvent, forWebinar, rival} {
		if err := e.Attach(a.observer); err != nil {
			return err
		}
	}

	steps := []func() error{
		func() error { return company.SetIsDeleted(true) },
		func() error { return company.SetEmployeesMin(15) },
		func() error { return event.SetCrawlingStatus(catalog.Crawling) },
		func() error { return webinar.SetIsBlacklisted(true) },
		func() error { return item.SetIsDeleted(true) },
		func() error { return item.SetIsBlacklisted(true) },
		func() error { return item.SetCrawlingStatus(catalog.Crawling) },
		func() error { return forEvent.SetIsBlacklisted(true) },
		func() error { return forWebinar.SetIsDeleted(true) },
		func() error { return rival.SetIsDeleted(true) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	a.log.Debug().Int("entities", sc.Len()).Msg("demo finished, disposing entities")
	return nil
}
