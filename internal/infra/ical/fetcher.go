package ical

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"

	"github.com/karlseguin/ccache/v3"
)

const maxCachedFeeds = 500

var (
	ErrFeedUnreachable = errs.Mark(errs.New("calendar feed unreachable"), errs.ErrUnavailable)
	ErrFeedTooLarge    = errs.Mark(errs.New("calendar feed exceeds size limit"), errs.ErrUnavailable)
	ErrBlockedHost     = errs.Mark(errs.New("calendar feed host is not publicly routable"), errs.ErrUnavailable)
)

var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

// FeedReader downloads and parses external calendars. Raw bodies are cached
// per url so repeated syncs inside the TTL do not hit the upstream again.
type FeedReader struct {
	client   *http.Client
	cache    *ccache.Cache[[]byte]
	ttl      time.Duration
	maxBytes int64
}

func NewFeedReader(cfg config.CalendarConfig) *FeedReader {
	return &FeedReader{
		client:   newFeedClient(cfg),
		cache:    ccache.New(ccache.Configure[[]byte]().MaxSize(maxCachedFeeds)),
		ttl:      cfg.FeedCacheTTL,
		maxBytes: cfg.MaxFeedBytes,
	}
}

// newFeedClient checks the resolved address at dial time, so a public name
// that resolves to an internal address is refused as well.
func newFeedClient(cfg config.CalendarConfig) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !cfg.AllowPrivateHosts {
		dialer := &net.Dialer{Timeout: cfg.FetchTimeout, Control: rejectNonPublic}
		transport.DialContext = dialer.DialContext
		transport.Proxy = nil
	}
	return &http.Client{Timeout: cfg.FetchTimeout, Transport: transport}
}

func rejectNonPublic(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return errs.Wrapf(ErrBlockedHost, "dial %s", address)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil || !isPublicAddr(addr) {
		return errs.Wrapf(ErrBlockedHost, "dial %s", host)
	}
	return nil
}

func isPublicAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	switch {
	case addr.IsLoopback(), addr.IsPrivate(), addr.IsUnspecified(),
		addr.IsLinkLocalUnicast(), addr.IsLinkLocalMulticast(),
		addr.IsInterfaceLocalMulticast(), addr.IsMulticast():
		return false
	case sharedAddressSpace.Contains(addr):
		return false
	}
	return true
}

func (f *FeedReader) Read(ctx context.Context, url string) ([]calendar.Event, error) {
	body, err := f.body(ctx, url)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(body))
}

func (f *FeedReader) body(ctx context.Context, url string) ([]byte, error) {
	if f.ttl > 0 {
		if item := f.cache.Get(url); item != nil && !item.Expired() {
			return item.Value(), nil
		}
	}

	body, err := f.download(ctx, url)
	if err != nil {
		return nil, err
	}
	if f.ttl > 0 {
		f.cache.Set(url, body, f.ttl)
	}
	return body, nil
}

func (f *FeedReader) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "build feed request"), ErrFeedUnreachable)
	}
	req.Header.Set("Accept", "text/calendar, */*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "fetch feed"), ErrFeedUnreachable)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("failed to close feed body", "url", url, "error", cerr.Error())
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.Mark(errs.Newf("feed responded with status %d", resp.StatusCode), ErrFeedUnreachable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read feed body"), ErrFeedUnreachable)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, ErrFeedTooLarge
	}
	return body, nil
}

func (f *FeedReader) Close() {
	f.cache.Stop()
}
