package connector

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-app-sheets-columns/credentials"
	"github.com/uhppoted/uhppoted-app-sheets-columns/log"
	"github.com/uhppoted/uhppoted-app-sheets-columns/table"
)

// Client fetches worksheet ranges on behalf of a single service account identity.
//
// By default every fetch opens a new connection. WithReuse(true) keeps the first connection
// for subsequent fetches.
type Client struct {
	identity *credentials.Identity
	ragged   RaggedRows
	reuse    bool
	debug    bool
	options  []option.ClientOption
	dial     func(ctx context.Context, opts ...option.ClientOption) (*sheets.Service, error)

	connection *Connection
	guard      sync.Mutex
}

// Connection is an open Sheets v4 session bound to one identity.
type Connection struct {
	google *sheets.Service
}

type Option func(*Client)

func WithRaggedRows(policy RaggedRows) Option {
	return func(c *Client) {
		c.ragged = policy
	}
}

func WithReuse(reuse bool) Option {
	return func(c *Client) {
		c.reuse = reuse
	}
}

func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithOptions appends Google API client options (endpoint, HTTP client, user agent, etc)
// to the options used to open a connection.
func WithOptions(opts ...option.ClientOption) Option {
	return func(c *Client) {
		c.options = append(c.options, opts...)
	}
}

func NewClient(identity *credentials.Identity, opts ...Option) *Client {
	c := Client{
		identity: identity,
		ragged:   Pad,
		dial:     sheets.NewService,
	}

	for _, opt := range opts {
		opt(&c)
	}

	return &c
}

// Connect opens a new connection to the Sheets v4 API.
func (c *Client) Connect(ctx context.Context) (*Connection, error) {
	if c.identity == nil {
		return nil, fetchError(ConnectionError, fmt.Errorf("missing identity"))
	}

	opts := []option.ClientOption{
		option.WithTokenSource(c.identity.TokenSource()),
	}

	opts = append(opts, c.options...)

	google, err := c.dial(ctx, opts...)
	if err != nil {
		return nil, fetchError(ConnectionError, fmt.Errorf("unable to create new Sheets client (%w)", err))
	}

	if c.debug {
		log.Debugf("opened Sheets connection for %v", c.identity)
	}

	return &Connection{
		google: google,
	}, nil
}

// FetchRange retrieves the range from the spreadsheet and returns the data rows keyed by
// the header labels in the first row.
func (c *Client) FetchRange(ctx context.Context, spreadsheet string, area string) (Columns, error) {
	_, columns, err := c.fetch(ctx, spreadsheet, area)

	return columns, err
}

// FetchTable is FetchRange followed by a conversion to a table, with the columns in worksheet
// order.
func (c *Client) FetchTable(ctx context.Context, spreadsheet string, area string) (*table.Table, error) {
	header, columns, err := c.fetch(ctx, spreadsheet, area)
	if err != nil {
		return nil, err
	}

	t, err := table.FromColumns(header, columns)
	if err != nil {
		return nil, fetchError(ShapeMismatchError, err)
	}

	return t, nil
}

func (c *Client) fetch(ctx context.Context, spreadsheet string, area string) ([]string, Columns, error) {
	connection, err := c.connect(ctx)
	if err != nil {
		return nil, nil, err
	}

	if c.debug {
		log.Debugf("Spreadsheet - ID:%s  range:%s", spreadsheet, area)
	}

	response, err := connection.google.Spreadsheets.Values.Get(spreadsheet, area).Context(ctx).Do()
	if err != nil {
		return nil, nil, fetchError(classify(err), fmt.Errorf("unable to retrieve data from sheet (%w)", err))
	}

	if c.debug {
		log.Debugf("retrieved %v rows from %v", len(response.Values), response.Range)
	}

	return reshape(response.Values, c.ragged)
}

func (c *Client) connect(ctx context.Context) (*Connection, error) {
	if !c.reuse {
		return c.Connect(ctx)
	}

	c.guard.Lock()
	defer c.guard.Unlock()

	if c.connection == nil {
		connection, err := c.Connect(ctx)
		if err != nil {
			return nil, err
		}

		c.connection = connection
	}

	return c.connection, nil
}

// Fetch loads the credentials, fetches the range and returns it as a table. Credential errors
// are returned as is, everything else is a FetchError.
func Fetch(ctx context.Context, descriptor credentials.Descriptor, spreadsheet string, area string, opts ...Option) (*table.Table, error) {
	identity, err := credentials.Load(ctx, descriptor)
	if err != nil {
		return nil, err
	}

	return NewClient(identity, opts...).FetchTable(ctx, spreadsheet, area)
}
