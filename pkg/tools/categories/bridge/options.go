package bridge

import (
	"net/http"

	"go.uber.org/zap"
)

// DefaultMaxContentChars is the protection limit used when none is given.
// Roughly 37k tokens.
const DefaultMaxContentChars = 150_000

type options struct {
	onlyAvailable   bool
	protect         bool
	maxContentChars int
	downloadPDF     bool
	httpClient      *http.Client
	logger          *zap.Logger
}

// Option configures how the bridge tools are built and registered
type Option func(*options)

// OnlyAvailable registers only the tools whose loader is installed at
// registration time
func OnlyAvailable() Option {
	return func(o *options) { o.onlyAvailable = true }
}

// WithProtection filters noise files from GitHub output and truncates any
// output longer than maxChars. A non-positive maxChars uses
// DefaultMaxContentChars.
func WithProtection(maxChars int) Option {
	return func(o *options) {
		o.protect = true
		if maxChars <= 0 {
			maxChars = DefaultMaxContentChars
		}
		o.maxContentChars = maxChars
	}
}

// WithRemotePDFDownload makes load_pdf fetch http(s) arguments to a temporary
// file before handing the local path to the loader. A nil client uses
// http.DefaultClient.
func WithRemotePDFDownload(client *http.Client) Option {
	return func(o *options) {
		o.downloadPDF = true
		if client == nil {
			client = http.DefaultClient
		}
		o.httpClient = client
	}
}

// WithLogger sets the logger used by the bridge
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		maxContentChars: DefaultMaxContentChars,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
