package catalog

import (
	"time"

	"notifier/internal/tracking"
)

// CrawlingStatus is the crawl pipeline state of a crawlable entity.
type CrawlingStatus int

const (
	NotCrawled CrawlingStatus = iota
	ErrorRequestingLink
	UpdatingLink
	MarkedAsDuplicate
	UpdatedLink
	Crawling
	CrawlingFailed
	RescheduledLongCrawling
	CrawlingTooLong
	HasNoPages
	TextUploaded
	AwaitingCrawl
	IndexedByElastic
	TextAnalyzed
	DomainInvalid
	NoLinksInPage
	Uncrawlable
)

var crawlingStatusNames = [...]string{
	"NOT_CRAWLED",
	"ERROR_REQUESTING_LINK",
	"UPDATING_LINK",
	"MARKED_AS_DUPLICATE",
	"UPDATED_LINK",
	"CRAWLING",
	"CRAWLING_FAILED",
	"RESCHEDULED_LONG_CRAWLING",
	"CRAWLING_TOO_LONG",
	"HAS_NO_PAGES",
	"TEXT_UPLOADED",
	"AWAITING_CRAWL",
	"INDEXED_BY_ELASTIC",
	"TEXT_ANALYZED",
	"DOMAIN_INVALID",
	"NO_LINKS_IN_PAGE",
	"UNCRAWLABLE",
}

// Name returns the status constant name, e.g. CRAWLING. Messages render the
// numeric value, so CrawlingStatus deliberately has no String method.
func (s CrawlingStatus) Name() string {
	if s < 0 || int(s) >= len(crawlingStatusNames) {
		return "UNKNOWN"
	}
	return crawlingStatusNames[s]
}

// CrawlableOpts holds the initial values shared by crawlable entities.
type CrawlableOpts struct {
	Link           string
	Name           string
	CrawlingStatus CrawlingStatus
	IsDeleted      bool
	IsBlacklisted  bool
	LastCrawled    *time.Time
}

// crawlable is the tracked base of companies, events, webinars and content
// items.
type crawlable struct {
	tracking.Subject
	link           string
	name           string
	crawlingStatus CrawlingStatus
	isDeleted      bool
	isBlacklisted  bool
	lastCrawled    *time.Time
}

func (c *crawlable) init(o CrawlableOpts) {
	c.link = o.Link
	c.name = o.Name
	c.crawlingStatus = o.CrawlingStatus
	c.isDeleted = o.IsDeleted
	c.isBlacklisted = o.IsBlacklisted
	c.lastCrawled = cloneTime(o.LastCrawled)
}

// copyFrom copies src's field values into c and freezes c's Subject.
func (c *crawlable) copyFrom(src *crawlable) {
	c.link = src.link
	c.name = src.name
	c.crawlingStatus = src.crawlingStatus
	c.isDeleted = src.isDeleted
	c.isBlacklisted = src.isBlacklisted
	c.lastCrawled = cloneTime(src.lastCrawled)
	c.Freeze(&src.Subject)
}

func (c *crawlable) Link() string                   { return c.link }
func (c *crawlable) Name() string                   { return c.name }
func (c *crawlable) CrawlingStatus() CrawlingStatus { return c.crawlingStatus }
func (c *crawlable) IsDeleted() bool                { return c.isDeleted }
func (c *crawlable) IsBlacklisted() bool            { return c.isBlacklisted }
func (c *crawlable) LastCrawled() *time.Time        { return cloneTime(c.lastCrawled) }

func (c *crawlable) SetLink(v string) error {
	return tracking.Set(&c.Subject, FieldLink, &c.link, v)
}

func (c *crawlable) SetName(v string) error {
	return tracking.Set(&c.Subject, FieldName, &c.name, v)
}

func (c *crawlable) SetCrawlingStatus(v CrawlingStatus) error {
	return tracking.Set(&c.Subject, FieldCrawlingStatus, &c.crawlingStatus, v)
}

func (c *crawlable) SetIsDeleted(v bool) error {
	return tracking.Set(&c.Subject, FieldIsDeleted, &c.isDeleted, v)
}

func (c *crawlable) SetIsBlacklisted(v bool) error {
	return tracking.Set(&c.Subject, FieldIsBlacklisted, &c.isBlacklisted, v)
}

func (c *crawlable) SetLastCrawled(v *time.Time) error {
	return tracking.Set(&c.Subject, FieldLastCrawled, &c.lastCrawled, cloneTime(v))
}

// setField handles the shared fields for SetField. ok is false when name is
// not a crawlable field.
func (c *crawlable) setField(name string, value any) (ok bool, err error) {
	switch name {
	case FieldLink:
		return true, tracking.Assign(&c.Subject, name, &c.link, value)
	case FieldName:
		return true, tracking.Assign(&c.Subject, name, &c.name, value)
	case FieldCrawlingStatus:
		if n, isInt := value.(int); isInt {
			value = CrawlingStatus(n)
		}
		return true, tracking.Assign(&c.Subject, name, &c.crawlingStatus, value)
	case FieldIsDeleted:
		return true, tracking.Assign(&c.Subject, name, &c.isDeleted, value)
	case FieldIsBlacklisted:
		return true, tracking.Assign(&c.Subject, name, &c.isBlacklisted, value)
	case FieldLastCrawled:
		value = own(value)
		return true, tracking.Assign(&c.Subject, name, &c.lastCrawled, value)
	}
	return false, nil
}

func (c *crawlable) fields() map[string]any {
	return map[string]any{
		FieldLink:           c.link,
		FieldName:           c.name,
		FieldCrawlingStatus: c.crawlingStatus,
		FieldIsDeleted:      c.isDeleted,
		FieldIsBlacklisted:  c.isBlacklisted,
		FieldLastCrawled:    cloneTime(c.lastCrawled),
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// own copies the pointee of a by-name value so the entity never aliases
// caller memory. Other values pass through unchanged.
func own(value any) any {
	switch v := value.(type) {
	case *time.Time:
		return cloneTime(v)
	case *string:
		return cloneString(v)
	}
	return value
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
