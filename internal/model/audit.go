package model

// Severity levels assigned to audit issues.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Recommendation priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Category names, in the order issues are reported.
const (
	CategoryCrawlability = "crawlability"
	CategorySpeed        = "speed"
	CategoryMobile       = "mobile"
	CategorySecurity     = "security"
	CategoryStructure    = "structure"
	CategoryContent      = "content"
	CategoryUX           = "ux"
)

// AuditResult is the full outcome of a single technical audit run.
// It is assembled once per invocation and never mutated afterwards;
// persistence is the caller's concern.
type AuditResult struct {
	URL            string         `json:"url"`
	AuditRegion    string         `json:"auditRegion"`
	ServerLocation ServerLocation `json:"serverLocation"`

	OverallScore      int `json:"overallScore"`
	CrawlabilityScore int `json:"crawlabilityScore"`
	SpeedScore        int `json:"speedScore"`
	MobileScore       int `json:"mobileScore"`
	SecurityScore     int `json:"securityScore"`
	StructureScore    int `json:"structureScore"`
	ContentScore      int `json:"contentScore"`
	UXScore           int `json:"uxScore"`

	Crawlability CrawlabilityResult `json:"crawlability"`
	Speed        SpeedResult        `json:"speed"`
	Mobile       MobileResult       `json:"mobile"`
	Security     SecurityResult     `json:"security"`
	Structure    StructureResult    `json:"structure"`
	Content      ContentResult      `json:"content"`
	UX           UXResult           `json:"ux"`

	Issues          []Issue          `json:"issues"`
	Recommendations []Recommendation `json:"recommendations"`
}

// ServerLocation is the simulated location the audit was run against.
// Always fully populated; falls back to a United States record.
type ServerLocation struct {
	Country  string `json:"country"`
	Region   string `json:"region"`
	City     string `json:"city"`
	Timezone string `json:"timezone"`
}

// Issue is a single finding derived from one category's result.
type Issue struct {
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// Recommendation is an actionable suggestion ranked by priority.
type Recommendation struct {
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// RobotsTxtInfo summarizes the origin's robots.txt.
type RobotsTxtInfo struct {
	Found        bool     `json:"found"`
	SiteBlocked  bool     `json:"siteBlocked"`
	Minimal      bool     `json:"minimal"`
	BlockedPaths []string `json:"blockedPaths"`
}

// SitemapInfo summarizes the first sitemap found at the origin.
type SitemapInfo struct {
	Found    bool   `json:"found"`
	Location string `json:"location,omitempty"`
	URLCount int    `json:"urlCount"`
}

type CrawlabilityResult struct {
	RobotsTxt    RobotsTxtInfo `json:"robotsTxt"`
	Sitemap      SitemapInfo   `json:"sitemap"`
	MetaRobots   string        `json:"metaRobots"`
	Noindex      bool          `json:"noindex"`
	Nofollow     bool          `json:"nofollow"`
	Canonical    string        `json:"canonical"`
	HasCanonical bool          `json:"hasCanonical"`
	// OrphanPages requires a full-site crawl and is always empty.
	OrphanPages []string `json:"orphanPages"`
}

// WebVital is one synthetic Core Web Vital estimate.
type WebVital struct {
	Value  float64 `json:"value"`
	Rating string  `json:"rating"` // good | needs-improvement | poor
}

type SpeedResult struct {
	ScriptCount       int      `json:"scriptCount"`
	StylesheetCount   int      `json:"stylesheetCount"`
	ImageCount        int      `json:"imageCount"`
	FontCount         int      `json:"fontCount"`
	InlineStyleCount  int      `json:"inlineStyleCount"`
	EstimatedLoadTime float64  `json:"estimatedLoadTime"` // seconds
	LCP               WebVital `json:"lcp"`               // milliseconds
	FID               WebVital `json:"fid"`               // milliseconds
	CLS               WebVital `json:"cls"`
	Warnings          []string `json:"warnings"`
}

type MobileResult struct {
	HasViewport     bool     `json:"hasViewport"`
	ViewportContent string   `json:"viewportContent,omitempty"`
	Responsive      bool     `json:"responsive"`
	SmallFontCount  int      `json:"smallFontCount"`
	FixedWidthRisks []string `json:"fixedWidthRisks"`
}

// SecurityHeaders are best-effort placeholders; response-header
// inspection is not implemented, so all fields stay false.
type SecurityHeaders struct {
	StrictTransportSecurity bool `json:"strictTransportSecurity"`
	ContentSecurityPolicy   bool `json:"contentSecurityPolicy"`
	XFrameOptions           bool `json:"xFrameOptions"`
}

type SecurityResult struct {
	UsesHTTPS       bool            `json:"usesHttps"`
	SSLValid        bool            `json:"sslValid"` // approximated as "valid iff HTTPS"
	MixedContent    []string        `json:"mixedContent"`
	SecurityHeaders SecurityHeaders `json:"securityHeaders"`
}

type StructureResult struct {
	PathDepth        int     `json:"pathDepth"`
	HasQueryString   bool    `json:"hasQueryString"`
	HasUnderscores   bool    `json:"hasUnderscores"`
	HasSpaces        bool    `json:"hasSpaces"`
	InternalLinks    int     `json:"internalLinks"`
	ExternalLinks    int     `json:"externalLinks"`
	NofollowExternal int     `json:"nofollowExternal"`
	GoodAnchorRatio  float64 `json:"goodAnchorRatio"`
	GoodAnchorText   bool    `json:"goodAnchorText"`
	// Broken-link and redirect-chain detection need a crawl; always empty.
	BrokenLinks      []string `json:"brokenLinks"`
	HasRedirectChain bool     `json:"hasRedirectChain"`
}

// TagCheck is the validation outcome for the title or meta description.
type TagCheck struct {
	Text   string `json:"text"`
	Length int    `json:"length"`
	Status string `json:"status"` // missing | too_long | too_short | optimal
}

type StructuredDataInfo struct {
	Count  int      `json:"count"`
	Types  []string `json:"types"`
	Errors []string `json:"errors"`
}

type HeadingInfo struct {
	Counts    map[string]int `json:"counts"`
	Summaries []string       `json:"summaries"` // first 10 headings, "h2: text"
}

type ReadabilityInfo struct {
	Score     float64 `json:"score"`
	Grade     string  `json:"grade"`
	Words     int     `json:"words"`
	Sentences int     `json:"sentences"`
}

type ContentResult struct {
	Title                     TagCheck           `json:"title"`
	MetaDescription           TagCheck           `json:"metaDescription"`
	DuplicateTitles           bool               `json:"duplicateTitles"`
	DuplicateMetaDescriptions bool               `json:"duplicateMetaDescriptions"`
	HasCanonical              bool               `json:"hasCanonical"`
	StructuredData            StructuredDataInfo `json:"structuredData"`
	Headings                  HeadingInfo        `json:"headings"`
	Readability               ReadabilityInfo    `json:"readability"`
	WordCount                 int                `json:"wordCount"`
	ExternalLinks             int                `json:"externalLinks"`
}

type UXResult struct {
	HasMainNav      bool    `json:"hasMainNav"`
	NavLinkCount    int     `json:"navLinkCount"`
	HasFooterNav    bool    `json:"hasFooterNav"`
	HasBreadcrumbs  bool    `json:"hasBreadcrumbs"`
	HasSearchBox    bool    `json:"hasSearchBox"`
	HasSkipLink     bool    `json:"hasSkipLink"`
	ImagesTotal     int     `json:"imagesTotal"`
	ImagesWithAlt   int     `json:"imagesWithAlt"`
	AltTextCoverage float64 `json:"altTextCoverage"`
	HasAria         bool    `json:"hasAria"`
	// Heuristic constants; click depth and layout shift are not measured.
	ClickDepth   int  `json:"clickDepth"`
	LayoutStable bool `json:"layoutStable"`
}
