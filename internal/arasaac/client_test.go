package arasaac

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestSearchDecodesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pictograms/en/search/breakfast" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `[{"_id":4625,"keywords":[{"keyword":"breakfast","locale":"en"},{"keyword":"frukost","locale":"sv"}]}]`)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURLs(srv.URL, srv.URL))
	results, err := c.Search(context.Background(), "breakfast", "en")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 || results[0].ID != 4625 {
		t.Fatalf("results = %+v", results)
	}
	if got := results[0].BestKeyword("sv"); got != "frukost" {
		t.Errorf("BestKeyword(sv) = %q", got)
	}
	if got := results[0].BestKeyword("fr"); got != "breakfast" {
		t.Errorf("BestKeyword fallback = %q", got)
	}
}

func TestSearchNotFoundIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURLs(srv.URL, srv.URL))
	results, err := c.Search(context.Background(), "zzzz", "en")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSearchCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[")
		for i := 0; i < 80; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"_id":%d}`, i+1)
		}
		fmt.Fprint(w, "]")
	}))
	defer srv.Close()

	c := NewClient(WithBaseURLs(srv.URL, srv.URL))
	results, err := c.Search(context.Background(), "a", "en")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != MaxResults {
		t.Errorf("got %d results, want %d", len(results), MaxResults)
	}
}

func TestSearchUsesDictionaryForItsLanguage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("network hit for dictionary language")
	}))
	defer srv.Close()

	dict := NewDictionary("sv", map[string][]int{"frukost": {4625}})
	c := NewClient(WithBaseURLs(srv.URL, srv.URL), WithDictionary(dict))

	results, err := c.Search(context.Background(), "Frukost", "sv")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].ID != 4625 {
		t.Errorf("results = %+v", results)
	}
}

func TestDownloadImageCachesFile(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/4625/4625_500.png" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := NewClient(WithBaseURLs(srv.URL, srv.URL))

	name, err := c.DownloadImage(context.Background(), 4625, dir)
	if err != nil {
		t.Fatalf("DownloadImage() error = %v", err)
	}
	if name != "arasaac_4625.png" {
		t.Errorf("filename = %q", name)
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil || string(data) != "png-bytes" {
		t.Fatalf("cached file wrong: %q, %v", data, err)
	}

	// Second call short-circuits on the cache.
	if _, err := c.DownloadImage(context.Background(), 4625, dir); err != nil {
		t.Fatal(err)
	}
	if hits != 1 {
		t.Errorf("expected 1 network hit, got %d", hits)
	}
}

func TestDownloadImageErrorLeavesNoFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := NewClient(WithBaseURLs(srv.URL, srv.URL))
	if _, err := c.DownloadImage(context.Background(), 99, dir); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(filepath.Join(dir, CacheFilename(99))); !os.IsNotExist(err) {
		t.Error("failed download left a cache file")
	}
}

func TestDictionaryExactBeatsPrefix(t *testing.T) {
	dict := NewDictionary("sv", map[string][]int{
		"sova":   {6027},
		"sovrum": {111},
		"middag": {4592},
	})

	exact := dict.Lookup("sova")
	if len(exact) != 1 || exact[0].ID != 6027 {
		t.Errorf("exact lookup = %+v", exact)
	}

	prefix := dict.Lookup("sov")
	if len(prefix) != 2 {
		t.Errorf("prefix lookup = %+v", prefix)
	}

	if got := dict.Lookup(""); got != nil {
		t.Errorf("empty lookup = %+v", got)
	}
	if got := dict.Lookup("xyz"); len(got) != 0 {
		t.Errorf("miss lookup = %+v", got)
	}
}

func TestResolveAllReportsEachRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/99/99_500.png" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("png"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := NewClient(WithBaseURLs(srv.URL, srv.URL))

	results := ResolveAll(context.Background(), c, dir, []Request{
		{ItemID: "a", PictogramID: 8988},
		{ItemID: "b", PictogramID: 99},
	})
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Err != nil || results[0].Filename != CacheFilename(8988) {
		t.Errorf("first result = %+v", results[0])
	}
	if results[1].Err == nil {
		t.Error("expected error for missing pictogram")
	}
}

func TestResolverCloseRunsOffCallerThread(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte("png"))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURLs(srv.URL, srv.URL))
	r := NewResolver(c, t.TempDir())
	r.Enqueue(context.Background(), []Request{{ItemID: "a", PictogramID: 1}})

	// The caller hands Close to a goroutine and moves on; Close must not
	// return while the download is still in flight.
	closed := make(chan struct{})
	go func() {
		r.Close()
		close(closed)
	}()
	select {
	case <-closed:
		t.Fatal("Close() returned before the download finished")
	default:
	}

	close(release)
	<-closed

	var got []ImageResolved
	for res := range r.Results() {
		got = append(got, res)
	}
	if len(got) != 1 || got[0].Err != nil || got[0].Filename != CacheFilename(1) {
		t.Errorf("results after background close = %+v", got)
	}
}

func TestResolverDeliversOverChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("png"))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURLs(srv.URL, srv.URL))
	r := NewResolver(c, t.TempDir())

	r.Enqueue(context.Background(), []Request{
		{ItemID: "a", PictogramID: 1},
		{ItemID: "b", PictogramID: 2},
	})
	go r.Close()

	got := map[string]string{}
	for res := range r.Results() {
		if res.Err != nil {
			t.Errorf("unexpected error: %v", res.Err)
		}
		got[res.ItemID] = res.Filename
	}
	if len(got) != 2 || got["a"] != CacheFilename(1) || got["b"] != CacheFilename(2) {
		t.Errorf("results = %v", got)
	}
}
