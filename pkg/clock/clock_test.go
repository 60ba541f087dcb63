package clock

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/codeGROOVE-dev/jdcal/pkg/julian"
)

func newTestHTTP(url string) *HTTP {
	h := NewHTTP(url, nil)
	h.Delay = time.Millisecond
	h.Attempts = 3
	return h
}

func TestHTTPNow(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method = %s, want HEAD", r.Method)
		}
		w.Header().Set("Date", "Sat, 01 Jan 2000 12:00:00 GMT")
	}))
	defer srv.Close()

	got, err := newTestHTTP(srv.URL).Now(context.Background())
	if err != nil {
		t.Fatalf("Now: %v", err)
	}
	want := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}

	jd, err := NowJD(context.Background(), newTestHTTP(srv.URL))
	if err != nil {
		t.Fatalf("NowJD: %v", err)
	}
	if jd != 2451545.0 {
		t.Errorf("NowJD() = %v, want 2451545", jd)
	}
}

func TestHTTPRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Date", "Thu, 29 Feb 2024 18:00:00 GMT")
	}))
	defer srv.Close()

	got, err := newTestHTTP(srv.URL).Now(context.Background())
	if err != nil {
		t.Fatalf("Now: %v", err)
	}
	if want := time.Date(2024, time.February, 29, 18, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("server called %d times, want 3", n)
	}
}

func TestHTTPGivesUp(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := newTestHTTP(srv.URL).Now(context.Background()); err == nil {
		t.Fatal("Now succeeded, want error")
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("server called %d times, want 3", n)
	}
}

func TestHTTPMissingDateIsPermanent(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		// A nil value suppresses the header the server would add.
		w.Header()["Date"] = nil
	}))
	defer srv.Close()

	_, err := newTestHTTP(srv.URL).Now(context.Background())
	if !errors.Is(err, ErrNoDate) {
		t.Fatalf("Now error = %v, want ErrNoDate", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("server called %d times, want 1", n)
	}
}

func TestHTTPCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newTestHTTP(srv.URL).Now(ctx); err == nil {
		t.Fatal("Now succeeded with canceled context")
	}
}

func TestSystem(t *testing.T) {
	t.Parallel()

	before := julian.FromTime(time.Now())
	jd, err := NowJD(context.Background(), System{})
	if err != nil {
		t.Fatalf("NowJD: %v", err)
	}
	if math.Abs(jd-before) > 1.0/86400*5 {
		t.Errorf("NowJD(System) = %v, want about %v", jd, before)
	}
}
