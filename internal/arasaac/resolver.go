package arasaac

import (
	"context"
	"sync"
)

// Request asks the resolver to fetch one pictogram image for a schedule item.
type Request struct {
	ItemID      string
	PictogramID int
}

// ImageResolved reports the outcome of one request. A failed download
// carries the error; the item is simply left without an image.
type ImageResolved struct {
	ItemID   string
	Filename string
	Err      error
}

// Resolver downloads pictogram images in the background and delivers the
// outcomes over a channel. It never mutates schedule state itself; the owner
// of the schedule reads Results and applies the filenames.
type Resolver struct {
	client   *Client
	destDir  string
	results  chan ImageResolved
	wg       sync.WaitGroup
	closeOne sync.Once
}

// NewResolver creates a resolver writing images into destDir.
func NewResolver(client *Client, destDir string) *Resolver {
	return &Resolver{
		client:  client,
		destDir: destDir,
		results: make(chan ImageResolved, 16),
	}
}

// Enqueue starts fetching the requested images. Each outcome arrives on
// Results exactly once, in completion order.
func (r *Resolver) Enqueue(ctx context.Context, reqs []Request) {
	for _, req := range reqs {
		r.wg.Add(1)
		go func(req Request) {
			defer r.wg.Done()
			filename, err := r.client.DownloadImage(ctx, req.PictogramID, r.destDir)
			select {
			case r.results <- ImageResolved{ItemID: req.ItemID, Filename: filename, Err: err}:
			case <-ctx.Done():
			}
		}(req)
	}
}

// Results is the channel outcomes arrive on.
func (r *Resolver) Results() <-chan ImageResolved {
	return r.results
}

// Close waits for in-flight downloads and closes the results channel.
func (r *Resolver) Close() {
	r.closeOne.Do(func() {
		r.wg.Wait()
		close(r.results)
	})
}

// ResolveAll fetches all requested images synchronously and returns the
// outcomes. Used by one-shot command invocations that have no event loop to
// drain a channel.
func ResolveAll(ctx context.Context, client *Client, destDir string, reqs []Request) []ImageResolved {
	out := make([]ImageResolved, 0, len(reqs))
	for _, req := range reqs {
		filename, err := client.DownloadImage(ctx, req.PictogramID, destDir)
		out = append(out, ImageResolved{ItemID: req.ItemID, Filename: filename, Err: err})
	}
	return out
}
