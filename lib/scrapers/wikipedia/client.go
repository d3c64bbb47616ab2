package wikipedia

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bachelorette-db/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

var tracer = otel.Tracer("scrapers/wikipedia")

const (
	DefaultUrlTemplate   = "https://en.wikipedia.org/wiki/The_Bachelorette_(American_season_%d)"
	DefaultTableSelector = "table.wikitable"
	DefaultUserAgent     = "bachelorette-db/1.0 (contestant roster scraper)"
)

var (
	ErrTableNotFound = errors.New("no table matching selector")
	ErrBadStatus     = errors.New("unexpected response status")
)

type ClientOptions struct {
	// fmt template taking the season number, defaults to DefaultUrlTemplate
	UrlTemplate string
	// css selector, the first match on the page is used
	TableSelector string
	UserAgent     string
	Timeout       time.Duration
	// zero means unlimited
	RequestsPerSecond float64
	// if set, every request/response pair is dumped to it
	Output restyutil.InstrumentOutput
}

type Client struct {
	Http          *resty.Client
	urlTemplate   string
	tableSelector string
	limiter       *rate.Limiter
}

func NewClient(opts ClientOptions) *Client {
	if opts.UrlTemplate == "" {
		opts.UrlTemplate = DefaultUrlTemplate
	}
	if opts.TableSelector == "" {
		opts.TableSelector = DefaultTableSelector
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)
	restyutil.InstrumentClient(client, "scrapers/wikipedia/http", opts.Output)

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	return &Client{
		Http:          client,
		urlTemplate:   opts.UrlTemplate,
		tableSelector: opts.TableSelector,
		limiter:       limiter,
	}
}

func (c *Client) SeasonUrl(season int) string {
	return fmt.Sprintf(c.urlTemplate, season)
}

// SeasonPage fetches and parses the page of a season.
func (c *Client) SeasonPage(ctx context.Context, season int) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "client:SeasonPage", trace.WithAttributes(
		attribute.Int("season", season),
	))
	defer span.End()

	err := c.limiter.Wait(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "rate limiter")
		return nil, err
	}

	link := c.SeasonUrl(season)
	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, fmt.Errorf("fetch season %d: %w", season, err)
	}
	if res.IsError() {
		span.SetStatus(codes.Error, res.Status())
		return nil, fmt.Errorf("fetch season %d (%s): %w: %s", season, link, ErrBadStatus, res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, fmt.Errorf("parse season %d: %w", season, err)
	}
	return doc, nil
}

// FirstTable returns the first element of `doc` matching `selector`.
func FirstTable(doc *goquery.Document, selector string) (*goquery.Selection, error) {
	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, strings.TrimSpace(selector))
	}
	return table, nil
}

// SeasonTable locates the roster table of a season.
func (c *Client) SeasonTable(ctx context.Context, season int) (*goquery.Selection, error) {
	doc, err := c.SeasonPage(ctx, season)
	if err != nil {
		return nil, err
	}
	table, err := FirstTable(doc, c.tableSelector)
	if err != nil {
		return nil, fmt.Errorf("season %d: %w", season, err)
	}
	return table, nil
}
