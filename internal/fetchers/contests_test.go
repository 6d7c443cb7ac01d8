package fetchers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const contestFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Contest Calendar</title>
	<item>
		<title>CQ World Wide DX Contest</title>
		<link>https://example.org/cqww</link>
		<description>48 hour phone contest</description>
		<pubDate>Fri, 30 Jan 2026 00:00:00 GMT</pubDate>
	</item>
	<item>
		<title>Undated Sprint</title>
		<link>https://example.org/sprint</link>
		<description>No schedule information</description>
	</item>
</channel>
</rss>`

func TestContestEventsMapsFeedItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(contestFeed))
	}))
	defer server.Close()

	cf := NewContestFetcher(NewFetcher(2*time.Second), server.URL, time.Hour, nil)
	events := cf.Events(context.Background())

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1 (undated entry skipped)", len(events))
	}
	if events[0].Title != "CQ World Wide DX Contest" {
		t.Errorf("title = %q", events[0].Title)
	}
	if events[0].Link != "https://example.org/cqww" {
		t.Errorf("link = %q", events[0].Link)
	}
	want := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)
	if !events[0].StartTime.Equal(want) {
		t.Errorf("startTime = %v, want %v", events[0].StartTime, want)
	}
}

func TestContestEventsServesCacheWhileFresh(t *testing.T) {
	var fetches int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
		w.Write([]byte(contestFeed))
	}))
	defer server.Close()

	cf := NewContestFetcher(NewFetcher(2*time.Second), server.URL, time.Hour, nil)

	cf.Events(context.Background())
	cf.Events(context.Background())
	cf.Events(context.Background())

	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Errorf("feed fetched %d times within TTL, want 1", n)
	}
}

func TestContestEventsFailureServesStale(t *testing.T) {
	var failing atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(contestFeed))
	}))
	defer server.Close()

	// Zero TTL forces a refresh on every call
	cf := NewContestFetcher(NewFetcher(2*time.Second), server.URL, 0, nil)

	first := cf.Events(context.Background())
	if len(first) != 1 {
		t.Fatalf("seed fetch got %d events, want 1", len(first))
	}

	failing.Store(true)
	stale := cf.Events(context.Background())
	if len(stale) != 1 || stale[0].Title != first[0].Title {
		t.Errorf("stale serve got %+v, want the cached event", stale)
	}
}

func TestContestEventsNeverFetchedReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cf := NewContestFetcher(NewFetcher(2*time.Second), server.URL, time.Hour, nil)
	events := cf.Events(context.Background())

	if events == nil {
		t.Fatal("got nil, want empty slice")
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}
